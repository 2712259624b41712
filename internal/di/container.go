// Package di wires the article store runtime: logging provider, markdown
// service, the immutable store itself, and the optional static generator.
package di

import (
	"context"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/goliatone/go-articles/internal/generator"
	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/internal/logging/console"
	"github.com/goliatone/go-articles/internal/logging/gologger"
	"github.com/goliatone/go-articles/internal/markdown"
	internalstore "github.com/goliatone/go-articles/internal/store"
	"github.com/goliatone/go-articles/internal/runtimeconfig"
	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

// Container holds the constructed services. Articles are loaded exactly once
// during construction; afterwards the container only hands out read access.
type Container struct {
	cfg            runtimeconfig.Config
	loggerProvider interfaces.LoggerProvider
	markdown       *markdown.Service
	store          *internalstore.Store
	generator      generator.Service
}

type options struct {
	loggerProvider interfaces.LoggerProvider
	parser         interfaces.MarkdownParser
	filesystem     fs.FS
	output         generator.Output
	clock          func() time.Time
}

// Option overrides a container dependency.
type Option func(*options)

// WithLoggerProvider injects a custom logging provider.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *options) { o.loggerProvider = provider }
}

// WithParser injects a custom Markdown parser.
func WithParser(parser interfaces.MarkdownParser) Option {
	return func(o *options) { o.parser = parser }
}

// WithFilesystem overrides the content filesystem, typically with an
// fstest.MapFS in tests.
func WithFilesystem(filesystem fs.FS) Option {
	return func(o *options) { o.filesystem = filesystem }
}

// WithOutput overrides where generator artifacts land.
func WithOutput(output generator.Output) Option {
	return func(o *options) { o.output = output }
}

// WithClock overrides the build timestamp source.
func WithClock(clock func() time.Time) Option {
	return func(o *options) { o.clock = clock }
}

// NewContainer validates the configuration, loads every article synchronously,
// and wires the services. A parse failure in any source document fails
// construction; there is no partial load.
func NewContainer(cfg runtimeconfig.Config, opts ...Option) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var resolved options
	for _, opt := range opts {
		if opt != nil {
			opt(&resolved)
		}
	}

	provider := resolved.loggerProvider
	if provider == nil {
		built, err := buildLoggerProvider(cfg)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	markdownService, err := markdown.NewService(markdown.Config{
		BasePath:  cfg.Content.Dir,
		Pattern:   cfg.Content.Pattern,
		Recursive: cfg.Content.Recursive,
		Parser: interfaces.ParseOptions{
			Extensions: cfg.Content.Parser.Extensions,
			Sanitize:   cfg.Content.Parser.Sanitize,
			HardWraps:  cfg.Content.Parser.HardWraps,
			SafeMode:   cfg.Content.Parser.SafeMode,
		},
		Filesystem: resolved.filesystem,
		Logger:     logging.MarkdownLogger(provider),
	}, resolved.parser)
	if err != nil {
		return nil, err
	}

	docs, err := markdownService.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{})
	if err != nil {
		return nil, err
	}

	articleStore, err := internalstore.New(docs, internalstore.Config{
		Logger: logging.StoreLogger(provider),
	})
	if err != nil {
		return nil, err
	}

	container := &Container{
		cfg:            cfg,
		loggerProvider: provider,
		markdown:       markdownService,
		store:          articleStore,
	}

	if cfg.Generator.Enabled {
		generatorService, err := generator.NewService(cfg.Generator, generator.Dependencies{
			Store:    articleStore,
			Markdown: markdownService,
			Output:   resolved.output,
			Logger:   logging.GeneratorLogger(provider),
			Clock:    resolved.clock,
		})
		if err != nil {
			return nil, err
		}
		container.generator = generatorService
	}

	return container, nil
}

// Store returns the article store service.
func (c *Container) Store() store.Service {
	return c.store
}

// Markdown returns the markdown service.
func (c *Container) Markdown() interfaces.MarkdownService {
	return c.markdown
}

// Generator returns the static build service, nil when disabled.
func (c *Container) Generator() generator.Service {
	return c.generator
}

// LoggerProvider returns the configured provider, nil when logging is disabled.
func (c *Container) LoggerProvider() interfaces.LoggerProvider {
	return c.loggerProvider
}

func buildLoggerProvider(cfg runtimeconfig.Config) (interfaces.LoggerProvider, error) {
	if !cfg.Features.Logger {
		return nil, nil
	}

	switch strings.ToLower(strings.TrimSpace(cfg.Logging.Provider)) {
	case "console":
		level := consoleLevel(cfg.Logging.Level)
		return console.NewProvider(console.Options{MinLevel: &level}), nil
	case "gologger":
		return gologger.NewProvider(gologger.Config{
			Level:     cfg.Logging.Level,
			Format:    cfg.Logging.Format,
			AddSource: cfg.Logging.AddSource,
			Focus:     cfg.Logging.Focus,
		})
	default:
		return nil, fmt.Errorf("%w: %s", runtimeconfig.ErrLoggingProviderUnknown, cfg.Logging.Provider)
	}
}

func consoleLevel(level string) console.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return console.LevelTrace
	case "debug":
		return console.LevelDebug
	case "", "info":
		return console.LevelInfo
	case "warn", "warning":
		return console.LevelWarn
	case "error":
		return console.LevelError
	case "fatal":
		return console.LevelFatal
	default:
		return console.LevelInfo
	}
}
