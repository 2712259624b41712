package interfaces

import (
	"context"
	"time"

	"github.com/goliatone/go-articles/store"
)

// MarkdownParser defines how raw Markdown bytes are converted into HTML.
// Implementations should be reusable across documents so hosts can share a
// single configured instance.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown parsing behaviour, keeping option names
// readable for configuration unmarshalling and CLI flags.
type ParseOptions struct {
	Extensions []string
	Sanitize   bool
	HardWraps  bool
	SafeMode   bool
}

// MarkdownService exposes the file workflows used to populate the article
// store: loading documents from the content root, rendering Markdown into
// HTML, and re-encoding documents back into source form.
type MarkdownService interface {
	Load(ctx context.Context, path string, opts LoadOptions) (*Document, error)
	LoadDirectory(ctx context.Context, dir string, opts LoadOptions) ([]*Document, error)
	Render(ctx context.Context, markdown []byte, opts ParseOptions) ([]byte, error)
	RenderDocument(ctx context.Context, doc *Document, opts ParseOptions) ([]byte, error)
	Encode(doc *Document) ([]byte, error)
}

// Document represents a Markdown file with parsed metadata and content. The
// struct is shared between the interfaces package and internal implementations
// so consumers can depend on a stable contract.
type Document struct {
	FilePath    string
	FrontMatter FrontMatter
	// Body is the raw Markdown body without the front-matter header.
	Body []byte
	// Blocks is the body split into prose and fenced code units, preserving
	// authored order exactly.
	Blocks       []store.Block
	BodyHTML     []byte
	LastModified time.Time
	// Checksum stores a SHA-256 digest of the original file content so builds
	// can detect changes without re-reading unchanged files.
	Checksum []byte
}

// FrontMatter models metadata extracted from Markdown files. Title and Date
// are required; everything else is optional and flows through Custom when it
// falls outside the canonical set.
type FrontMatter struct {
	Title      string         `yaml:"title" json:"title"`
	Slug       string         `yaml:"slug" json:"slug"`
	Summary    string         `yaml:"summary" json:"summary"`
	Categories []string       `yaml:"categories" json:"categories"`
	Author     string         `yaml:"author" json:"author"`
	Date       time.Time      `yaml:"date" json:"date"`
	Draft      bool           `yaml:"draft" json:"draft"`
	Custom     map[string]any `yaml:",inline" json:"custom"`
	Raw        map[string]any `yaml:"-" json:"raw"`
}

// LoadOptions fine-tunes how documents are discovered and parsed from disk.
type LoadOptions struct {
	Recursive *bool
	Pattern   string
	Parser    ParseOptions
	// RenderHTML populates Document.BodyHTML during load. Off by default so
	// callers can render lazily.
	RenderHTML bool
}
