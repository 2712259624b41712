// Package store holds the immutable in-memory article collection built from
// parsed documents at load time.
package store

import (
	"context"
	"iter"
	"sort"
	"strings"

	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

// Store is the in-memory implementation of store.Service. Contents are fixed
// at construction and survive unchanged for the process lifetime, so every
// method is safe for concurrent use without locking.
type Store struct {
	byID map[string]*store.Article
	// ordered holds the articles sorted by publish timestamp, descending;
	// ties break on identifier for deterministic listings.
	ordered []*store.Article
	logger  interfaces.Logger
}

var _ store.Service = (*Store)(nil)

// Config carries construction options for the store.
type Config struct {
	Logger interfaces.Logger
}

// New builds a store from parsed documents. Each document becomes exactly one
// article; a duplicate identifier fails construction with
// *store.DuplicateIdentifierError so the invariant never degrades silently.
func New(docs []*interfaces.Document, cfg Config) (*Store, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	s := &Store{
		byID:    make(map[string]*store.Article, len(docs)),
		ordered: make([]*store.Article, 0, len(docs)),
		logger:  logger,
	}

	for _, doc := range docs {
		article, err := FromDocument(doc)
		if err != nil {
			return nil, err
		}
		if existing, ok := s.byID[article.ID]; ok {
			return nil, &store.DuplicateIdentifierError{
				ID:           article.ID,
				Path:         article.SourcePath,
				ExistingPath: existing.SourcePath,
			}
		}
		s.byID[article.ID] = article
		s.ordered = append(s.ordered, article)
	}

	sort.SliceStable(s.ordered, func(i, j int) bool {
		if s.ordered[i].Published.Equal(s.ordered[j].Published) {
			return s.ordered[i].ID < s.ordered[j].ID
		}
		return s.ordered[i].Published.After(s.ordered[j].Published)
	})

	logger.Info("store.loaded", "count", len(s.ordered))
	return s, nil
}

// Get returns the article with the given identifier.
func (s *Store) Get(ctx context.Context, id string) (*store.Article, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	article, ok := s.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, &store.NotFoundError{ID: id}
	}
	return article, nil
}

// List materialises the filtered sequence ordered by publish timestamp,
// descending.
func (s *Store) List(ctx context.Context, opts ...store.ListOption) ([]*store.Article, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	var out []*store.Article
	for article := range s.All(opts...) {
		out = append(out, article)
	}
	return out, nil
}

// All yields the filtered sequence lazily. The iterator is finite and can be
// ranged over any number of times; each range restarts from the newest
// article.
func (s *Store) All(opts ...store.ListOption) iter.Seq[*store.Article] {
	resolved := store.ResolveListOptions(opts...)

	return func(yield func(*store.Article) bool) {
		matched := 0
		for _, article := range s.ordered {
			if article.Draft && !resolved.IncludeDrafts {
				continue
			}
			if resolved.Category != "" && !article.HasCategory(resolved.Category) {
				continue
			}
			if resolved.Limit > 0 && matched >= resolved.Limit {
				return
			}
			if !yield(article) {
				return
			}
			matched++
		}
	}
}

// Categories returns the sorted union of category tags across the store,
// drafts included.
func (s *Store) Categories(ctx context.Context) ([]string, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	seen := map[string]struct{}{}
	for _, article := range s.ordered {
		for _, tag := range article.Categories {
			seen[tag] = struct{}{}
		}
	}

	out := make([]string, 0, len(seen))
	for tag := range seen {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out, nil
}

// Len reports how many articles the store holds, drafts included.
func (s *Store) Len() int {
	return len(s.ordered)
}
