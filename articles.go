// Package articles provides an embeddable, immutable article store: Markdown
// sources with front-matter metadata are loaded once at construction, then
// served through lookup, listing, and static build services.
package articles

import (
	"github.com/goliatone/go-articles/internal/di"
	"github.com/goliatone/go-articles/internal/generator"
	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

// StoreService exports the article store contract for consumers of the
// articles package.
type StoreService = store.Service

// Article exports the immutable article record.
type Article = store.Article

// Block exports the sealed body block contract.
type Block = store.Block

// ProseBlock exports the prose body block.
type ProseBlock = store.ProseBlock

// CodeBlock exports the verbatim code body block.
type CodeBlock = store.CodeBlock

// MarkdownService exports the markdown workflow contract.
type MarkdownService = interfaces.MarkdownService

// Document is the parsed form of a single markdown source file.
type Document = interfaces.Document

// LoadOptions controls how markdown sources are read and parsed.
type LoadOptions = interfaces.LoadOptions

// GeneratorService exports the static build contract.
type GeneratorService = generator.Service

// BuildOptions exports the static build options.
type BuildOptions = generator.BuildOptions

// BuildResult exports the static build summary.
type BuildResult = generator.BuildResult

// Module represents the top level articles runtime façade. Construction loads
// the full corpus; every accessor afterwards is read-only.
type Module struct {
	container *di.Container
}

// New constructs an articles module using the provided configuration and
// optional DI overrides.
func New(cfg Config, opts ...di.Option) (*Module, error) {
	container, err := di.NewContainer(cfg, opts...)
	if err != nil {
		return nil, err
	}
	return &Module{container: container}, nil
}

// Container exposes the underlying DI container for advanced integrations.
func (m *Module) Container() *di.Container {
	return m.container
}

// Store returns the configured article store service.
func (m *Module) Store() StoreService {
	return m.container.Store()
}

// Markdown returns the configured markdown service.
func (m *Module) Markdown() MarkdownService {
	return m.container.Markdown()
}

// Generator returns the static build service when configured.
func (m *Module) Generator() GeneratorService {
	if m == nil || m.container == nil {
		return nil
	}
	return m.container.Generator()
}
