// Package generator renders the article store into a static HTML site:
// one page per article, a listing index, and optional feed and manifest
// artifacts.
package generator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/goliatone/go-articles/internal/logging"
	"github.com/goliatone/go-articles/internal/runtimeconfig"
	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

// Service exposes the static build contract.
type Service interface {
	Build(ctx context.Context, opts BuildOptions) (*BuildResult, error)
}

// BuildOptions carries per-invocation overrides on top of the configured
// generator behaviour.
type BuildOptions struct {
	// IncludeDrafts overrides the configured draft handling when non-nil.
	IncludeDrafts *bool
}

// BuildResult summarises one completed build.
type BuildResult struct {
	BuildID     uuid.UUID
	GeneratedAt time.Time
	Articles    int
	// Pages lists every output path written, relative to the output root.
	Pages []string
}

// Dependencies bundles the collaborators the generator needs.
type Dependencies struct {
	Store    store.Service
	Markdown interfaces.MarkdownService
	Output   Output
	Logger   interfaces.Logger
	// Clock supplies the manifest timestamp; defaults to time.Now.
	Clock func() time.Time
}

type service struct {
	cfg      runtimeconfig.GeneratorConfig
	store    store.Service
	markdown interfaces.MarkdownService
	output   Output
	renderer *templateRenderer
	logger   interfaces.Logger
	clock    func() time.Time
}

// NewService wires a generator service from configuration and dependencies.
func NewService(cfg runtimeconfig.GeneratorConfig, deps Dependencies) (Service, error) {
	if deps.Store == nil {
		return nil, fmt.Errorf("generator: store service is required")
	}
	if deps.Markdown == nil {
		return nil, fmt.Errorf("generator: markdown service is required")
	}

	output := deps.Output
	if output == nil {
		output = NewDirOutput(cfg.OutputDir)
	}

	logger := deps.Logger
	if logger == nil {
		logger = logging.NoOp()
	}

	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}

	renderer, err := newTemplateRenderer(cfg.SiteTitle, cfg.BaseURL)
	if err != nil {
		return nil, err
	}

	return &service{
		cfg:      cfg,
		store:    deps.Store,
		markdown: deps.Markdown,
		output:   output,
		renderer: renderer,
		logger:   logger,
		clock:    clock,
	}, nil
}

// Build renders every listed article plus the index, feed, and manifest.
func (s *service) Build(ctx context.Context, opts BuildOptions) (*BuildResult, error) {
	includeDrafts := s.cfg.IncludeDrafts
	if opts.IncludeDrafts != nil {
		includeDrafts = *opts.IncludeDrafts
	}

	if s.cfg.CleanBuild {
		if err := s.output.Clean(); err != nil {
			return nil, fmt.Errorf("generator clean output: %w", err)
		}
	}

	listOpts := []store.ListOption{}
	if includeDrafts {
		listOpts = append(listOpts, store.WithDrafts())
	}

	articles, err := s.store.List(ctx, listOpts...)
	if err != nil {
		return nil, fmt.Errorf("generator list articles: %w", err)
	}

	result := &BuildResult{
		BuildID:     uuid.New(),
		GeneratedAt: s.clock().UTC(),
	}
	logger := logging.WithFields(s.logger, map[string]any{"build_id": result.BuildID.String()})

	for _, article := range articles {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page, err := s.renderArticle(ctx, article)
		if err != nil {
			return nil, err
		}

		path := ArticlePath(article.ID)
		if err := s.output.WriteFile(path, page); err != nil {
			return nil, fmt.Errorf("generator write %s: %w", path, err)
		}
		result.Pages = append(result.Pages, path)
		result.Articles++

		logging.WithArticleContext(logger, article.SourcePath, article.ID, "render").
			Debug("generator.article_rendered")
	}

	index, err := s.renderer.RenderIndex(articles, result.GeneratedAt)
	if err != nil {
		return nil, fmt.Errorf("generator render index: %w", err)
	}
	if err := s.output.WriteFile(IndexPath, index); err != nil {
		return nil, fmt.Errorf("generator write %s: %w", IndexPath, err)
	}
	result.Pages = append(result.Pages, IndexPath)

	if s.cfg.GenerateFeed {
		feed, err := renderFeed(s.cfg.SiteTitle, s.cfg.BaseURL, articles, result.GeneratedAt)
		if err != nil {
			return nil, fmt.Errorf("generator render feed: %w", err)
		}
		if err := s.output.WriteFile(FeedPath, feed); err != nil {
			return nil, fmt.Errorf("generator write %s: %w", FeedPath, err)
		}
		result.Pages = append(result.Pages, FeedPath)
	}

	if s.cfg.GenerateManifest {
		manifest, err := renderManifest(result, articles)
		if err != nil {
			return nil, fmt.Errorf("generator render manifest: %w", err)
		}
		if err := s.output.WriteFile(ManifestPath, manifest); err != nil {
			return nil, fmt.Errorf("generator write %s: %w", ManifestPath, err)
		}
		result.Pages = append(result.Pages, ManifestPath)
	}

	logger.Info("generator.build_complete", "articles", result.Articles, "pages", len(result.Pages))
	return result, nil
}

func (s *service) renderArticle(ctx context.Context, article *store.Article) ([]byte, error) {
	body, err := renderBlocks(ctx, s.markdown, article.Body)
	if err != nil {
		return nil, fmt.Errorf("generator render article %s: %w", article.ID, err)
	}
	return s.renderer.RenderArticle(article, body)
}
