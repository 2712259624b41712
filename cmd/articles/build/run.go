package main

import (
	"context"
	"fmt"

	articles "github.com/goliatone/go-articles"
	"github.com/goliatone/go-articles/cmd/articles/internal/bootstrap"
)

var moduleBuilder = bootstrap.BuildModule

func run(opts runOptions) error {
	module, err := moduleBuilder(bootstrap.Options{
		ContentDir:    opts.ContentDir,
		Pattern:       opts.Pattern,
		Recursive:     opts.Recursive,
		Generator:     true,
		OutputDir:     opts.OutputDir,
		BaseURL:       opts.BaseURL,
		SiteTitle:     opts.SiteTitle,
		IncludeDrafts: opts.IncludeDrafts,
		CleanBuild:    opts.CleanBuild,
		LogLevel:      opts.LogLevel,
	})
	if err != nil {
		return err
	}

	if module.Generator == nil {
		return fmt.Errorf("generator not configured; ensure Features.Generator is enabled")
	}

	result, err := module.Generator.Build(context.Background(), articles.BuildOptions{})
	if err != nil {
		return fmt.Errorf("generate site: %w", err)
	}

	module.Logger.Info("site build complete",
		"build_id", result.BuildID.String(),
		"articles", result.Articles,
		"pages", len(result.Pages),
	)

	return nil
}
