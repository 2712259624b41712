package store

import (
	"context"
	"iter"

	slug "github.com/goliatone/go-slug"
)

// Service exposes read access to an immutable article collection. All methods
// are safe for concurrent use; the backing collection never changes after
// construction.
type Service interface {
	// Get returns the article with the given identifier. A miss yields a
	// *NotFoundError wrapping ErrNotFound.
	Get(ctx context.Context, id string) (*Article, error)
	// List returns articles ordered by publish timestamp, descending. Options
	// narrow the result; without options every non-draft article is returned.
	List(ctx context.Context, opts ...ListOption) ([]*Article, error)
	// All yields the same sequence as List lazily. The returned iterator is
	// finite and restartable.
	All(opts ...ListOption) iter.Seq[*Article]
	// Categories returns the sorted union of category tags across the store.
	Categories(ctx context.Context) ([]string, error)
	// Len reports how many articles the store holds, drafts included.
	Len() int
}

// ListOptions captures the filters applied by List and All.
type ListOptions struct {
	// Category keeps only articles whose tag set contains the exact value.
	Category string
	// IncludeDrafts widens results to draft articles.
	IncludeDrafts bool
	// Limit caps the number of results when positive.
	Limit int
}

// ListOption mutates ListOptions.
type ListOption func(*ListOptions)

// WithCategory filters results by exact tag match.
func WithCategory(category string) ListOption {
	return func(o *ListOptions) {
		o.Category = category
	}
}

// WithDrafts includes draft articles in results.
func WithDrafts() ListOption {
	return func(o *ListOptions) {
		o.IncludeDrafts = true
	}
}

// WithLimit caps the number of returned articles.
func WithLimit(n int) ListOption {
	return func(o *ListOptions) {
		o.Limit = n
	}
}

// ResolveListOptions folds the supplied options into a ListOptions value.
func ResolveListOptions(opts ...ListOption) ListOptions {
	var resolved ListOptions
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}
	return resolved
}

// SlugNormalizer exposes the slug normalizer interface used for identifiers.
type SlugNormalizer = slug.Normalizer

// DefaultSlugNormalizer returns the default slug normalizer.
func DefaultSlugNormalizer() SlugNormalizer {
	return slug.Default()
}

// NormalizeID applies the default slug normalization rules to an identifier.
func NormalizeID(value string) (string, error) {
	return slug.Normalize(value)
}

// IsValidID reports whether the identifier matches the default slug rules.
func IsValidID(value string) bool {
	return slug.IsValid(value)
}
