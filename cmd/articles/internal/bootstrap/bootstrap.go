package bootstrap

import (
	"fmt"
	"strings"

	articles "github.com/goliatone/go-articles"
	"github.com/goliatone/go-articles/internal/di"
	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/pkg/interfaces"
)

// Options captures configuration for the articles CLI bootstraps.
type Options struct {
	ContentDir     string
	Pattern        string
	Recursive      bool
	Generator      bool
	OutputDir      string
	BaseURL        string
	SiteTitle      string
	IncludeDrafts  bool
	CleanBuild     bool
	LogLevel       string
	LoggerProvider interfaces.LoggerProvider
}

// Module wraps the articles module plus the services the CLIs operate on.
type Module struct {
	Module    *articles.Module
	Store     articles.StoreService
	Markdown  articles.MarkdownService
	Generator articles.GeneratorService
	Logger    interfaces.Logger
}

// BuildModule constructs an articles module configured from CLI flags.
func BuildModule(opts Options) (*Module, error) {
	cfg := articles.DefaultConfig()
	cfg.Content.Dir = strings.TrimSpace(opts.ContentDir)
	if cfg.Content.Dir == "" {
		cfg.Content.Dir = "content"
	}
	if trimmed := strings.TrimSpace(opts.Pattern); trimmed != "" {
		cfg.Content.Pattern = trimmed
	}
	cfg.Content.Recursive = opts.Recursive

	if opts.Generator {
		cfg.Features.Generator = true
		cfg.Generator.Enabled = true
		if trimmed := strings.TrimSpace(opts.OutputDir); trimmed != "" {
			cfg.Generator.OutputDir = trimmed
		}
		cfg.Generator.BaseURL = strings.TrimSpace(opts.BaseURL)
		if trimmed := strings.TrimSpace(opts.SiteTitle); trimmed != "" {
			cfg.Generator.SiteTitle = trimmed
		}
		cfg.Generator.IncludeDrafts = opts.IncludeDrafts
		cfg.Generator.CleanBuild = opts.CleanBuild
	}

	cfg.Features.Logger = true
	if trimmed := strings.TrimSpace(opts.LogLevel); trimmed != "" {
		cfg.Logging.Level = trimmed
	}

	diOpts := []di.Option{}
	if opts.LoggerProvider != nil {
		diOpts = append(diOpts, di.WithLoggerProvider(opts.LoggerProvider))
	}

	module, err := articles.New(cfg, diOpts...)
	if err != nil {
		return nil, fmt.Errorf("initialise articles module: %w", err)
	}

	logger := logging.ModuleLogger(module.Container().LoggerProvider(), "")

	return &Module{
		Module:    module,
		Store:     module.Store(),
		Markdown:  module.Markdown(),
		Generator: module.Generator(),
		Logger:    logger,
	}, nil
}
