package articles_test

import (
	"context"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	articles "github.com/goliatone/go-articles"
	"github.com/goliatone/go-articles/internal/di"
	"github.com/goliatone/go-articles/internal/generator"
	"github.com/goliatone/go-articles/store"
)

func contentFS() fstest.MapFS {
	return fstest.MapFS{
		"nullness.md": &fstest.MapFile{
			Data: []byte(`---
title: Null Annotations in Practice
slug: null-annotations
date: 2024-07-25
categories: [java, tooling]
author: Morgan Reyes
---

Annotate the boundaries.

` + "```java\n@NullMarked\npackage com.example.billing;\n```\n"),
		},
		"problem-details.md": &fstest.MapFile{
			Data: []byte(`---
title: Problem Details for HTTP APIs
date: 2024-08-02
categories: [spring, http]
---

Return a typed problem body instead of ad hoc error maps.
`),
		},
	}
}

func newModule(t *testing.T, fsys fstest.MapFS, mutate func(*articles.Config), opts ...di.Option) *articles.Module {
	t.Helper()

	cfg := articles.DefaultConfig()
	if mutate != nil {
		mutate(&cfg)
	}

	module, err := articles.New(cfg, append([]di.Option{di.WithFilesystem(fsys)}, opts...)...)
	require.NoError(t, err)
	return module
}

func TestModuleLoadsAndServesArticles(t *testing.T) {
	module := newModule(t, contentFS(), nil)
	ctx := context.Background()

	svc := module.Store()
	require.Equal(t, 2, svc.Len())

	article, err := svc.Get(ctx, "null-annotations")
	require.NoError(t, err)
	assert.Equal(t, "Null Annotations in Practice", article.Title)
	assert.True(t, article.Published.Equal(time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, []string{"java", "tooling"}, article.Categories)

	require.Len(t, article.Body, 2)
	assert.Equal(t, store.BlockKindProse, article.Body[0].Kind())
	assert.Equal(t, store.BlockKindCode, article.Body[1].Kind())

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestModuleListsByCategoryAndDate(t *testing.T) {
	module := newModule(t, contentFS(), nil)
	ctx := context.Background()

	all, err := module.Store().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "problem-details", all[0].ID, "newest first")

	spring, err := module.Store().List(ctx, store.WithCategory("spring"))
	require.NoError(t, err)
	require.Len(t, spring, 1)
	assert.Equal(t, "problem-details", spring[0].ID)
}

func TestModuleFailsOnMalformedFrontMatter(t *testing.T) {
	fsys := contentFS()
	fsys["broken.md"] = &fstest.MapFile{Data: []byte("---\ncategories: [java]\n---\n\nno title\n")}

	cfg := articles.DefaultConfig()
	_, err := articles.New(cfg, di.WithFilesystem(fsys))
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrFrontMatterInvalid)
}

func TestModuleGeneratorBuildsSite(t *testing.T) {
	output := generator.NewMemoryOutput()
	module := newModule(t, contentFS(), func(cfg *articles.Config) {
		cfg.Features.Generator = true
		cfg.Generator.Enabled = true
		cfg.Generator.SiteTitle = "Engineering Notes"
	}, di.WithOutput(output))

	result, err := module.Generator().Build(context.Background(), articles.BuildOptions{})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Articles)

	page, ok := output.File("articles/null-annotations.html")
	require.True(t, ok, "wrote %v", output.Paths())
	assert.Contains(t, string(page), "@NullMarked")

	_, ok = output.File("index.html")
	assert.True(t, ok)
}

func TestModuleEncodeRoundTrip(t *testing.T) {
	module := newModule(t, contentFS(), nil)
	ctx := context.Background()

	doc, err := module.Markdown().Load(ctx, "nullness.md", articles.LoadOptions{})
	require.NoError(t, err)

	encoded, err := module.Markdown().Encode(doc)
	require.NoError(t, err)

	fsys := contentFS()
	fsys["nullness.md"] = &fstest.MapFile{Data: encoded}
	reloaded := newModule(t, fsys, nil)

	article, err := reloaded.Store().Get(ctx, "null-annotations")
	require.NoError(t, err)
	assert.Equal(t, "Null Annotations in Practice", article.Title)
	assert.Equal(t, []string{"java", "tooling"}, article.Categories)
	require.Len(t, article.Body, 2)
}
