package store

import (
	"sort"
	"strings"
	"time"
)

// Article is the canonical in-memory record for a loaded document. Articles
// are built once at load time and never mutated afterwards, so callers can
// share them freely across goroutines without locking.
type Article struct {
	// ID uniquely identifies the article within a store. It comes from the
	// front-matter slug when present, otherwise it is derived from the file name.
	ID string `json:"id"`
	// Title is the required front-matter title.
	Title string `json:"title"`
	// Published is the required front-matter date. It is assigned at load time
	// and immutable for the lifetime of the store.
	Published time.Time `json:"published"`
	// Categories carries the front-matter category tags with set semantics:
	// deduplicated, trimmed, and sorted.
	Categories []string `json:"categories,omitempty"`
	Summary    string   `json:"summary,omitempty"`
	Author     string   `json:"author,omitempty"`
	// Draft articles load normally but are excluded from listings and builds
	// unless explicitly requested.
	Draft bool `json:"draft"`
	// Custom holds front-matter keys outside the canonical set.
	Custom map[string]any `json:"custom,omitempty"`
	// Body is the ordered block sequence exactly as authored.
	Body []Block `json:"body"`
	// SourcePath records where the article was loaded from, relative to the
	// content root.
	SourcePath string `json:"source_path,omitempty"`
	// Checksum stores a SHA-256 digest of the original source bytes.
	Checksum []byte `json:"checksum,omitempty"`
}

// HasCategory reports whether the article carries the given tag. Matching is
// exact after trimming surrounding whitespace.
func (a *Article) HasCategory(category string) bool {
	if a == nil {
		return false
	}
	category = strings.TrimSpace(category)
	for _, tag := range a.Categories {
		if tag == category {
			return true
		}
	}
	return false
}

// BlockKind discriminates the concrete block types in an article body.
type BlockKind string

const (
	BlockKindProse BlockKind = "prose"
	BlockKindCode  BlockKind = "code"
)

// Block is one contiguous unit of an article body. The interface is sealed:
// the only implementations are ProseBlock and CodeBlock.
type Block interface {
	Kind() BlockKind

	sealed()
}

// ProseBlock holds formatted prose text in its source Markdown form.
type ProseBlock struct {
	Text string `json:"text"`
}

func (ProseBlock) Kind() BlockKind { return BlockKindProse }
func (ProseBlock) sealed()         {}

// CodeBlock holds a fenced code sample. The literal is preserved verbatim and
// is never executed or validated.
type CodeBlock struct {
	Language string `json:"language,omitempty"`
	Literal  string `json:"literal"`
}

func (CodeBlock) Kind() BlockKind { return BlockKindCode }
func (CodeBlock) sealed()         {}

// NormalizeCategories applies the tag-set semantics used by Article.Categories:
// trim, drop empties, deduplicate, sort.
func NormalizeCategories(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) == 0 {
		return nil
	}
	sort.Strings(out)
	return out
}
