package store_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalstore "github.com/goliatone/go-articles/internal/store"
	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

func doc(path, slug, title string, published time.Time, categories []string, draft bool) *interfaces.Document {
	return &interfaces.Document{
		FilePath: path,
		FrontMatter: interfaces.FrontMatter{
			Title:      title,
			Slug:       slug,
			Date:       published,
			Categories: categories,
			Draft:      draft,
		},
		Body:   []byte(title),
		Blocks: []store.Block{store.ProseBlock{Text: title}},
	}
}

func newStore(t *testing.T, docs ...*interfaces.Document) *internalstore.Store {
	t.Helper()
	s, err := internalstore.New(docs, internalstore.Config{})
	require.NoError(t, err)
	return s
}

func fixtureStore(t *testing.T) *internalstore.Store {
	t.Helper()
	return newStore(t,
		doc("posts/oldest.md", "", "Oldest", time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC), []string{"java"}, false),
		doc("posts/newest.md", "", "Newest", time.Date(2024, 8, 2, 0, 0, 0, 0, time.UTC), []string{"spring", "http"}, false),
		doc("posts/middle.md", "", "Middle", time.Date(2024, 7, 25, 0, 0, 0, 0, time.UTC), []string{"java", "spring"}, false),
		doc("posts/wip.md", "", "WIP", time.Date(2024, 8, 10, 0, 0, 0, 0, time.UTC), []string{"java"}, true),
	)
}

func TestStoreGet(t *testing.T) {
	s := fixtureStore(t)

	article, err := s.Get(context.Background(), "newest")
	require.NoError(t, err)
	assert.Equal(t, "Newest", article.Title)
}

func TestStoreGet_Miss(t *testing.T) {
	s := fixtureStore(t)

	_, err := s.Get(context.Background(), "no-such-article")
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrNotFound)

	var notFound *store.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "no-such-article", notFound.ID)
}

func TestStoreList_OrdersByPublishedDescending(t *testing.T) {
	s := fixtureStore(t)

	articles, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, articles, 3, "drafts stay out of default listings")

	assert.Equal(t, "newest", articles[0].ID)
	assert.Equal(t, "middle", articles[1].ID)
	assert.Equal(t, "oldest", articles[2].ID)
}

func TestStoreList_CategoryFilter(t *testing.T) {
	s := fixtureStore(t)

	articles, err := s.List(context.Background(), store.WithCategory("java"))
	require.NoError(t, err)
	require.Len(t, articles, 2)
	for _, article := range articles {
		assert.True(t, article.HasCategory("java"))
	}
}

func TestStoreList_IncludeDraftsAndLimit(t *testing.T) {
	s := fixtureStore(t)

	articles, err := s.List(context.Background(), store.WithDrafts(), store.WithLimit(2))
	require.NoError(t, err)
	require.Len(t, articles, 2)
	assert.Equal(t, "wip", articles[0].ID, "draft is the newest entry")
}

func TestStoreAll_IsRestartable(t *testing.T) {
	s := fixtureStore(t)

	seq := s.All(store.WithCategory("spring"))

	var first, second []string
	for article := range seq {
		first = append(first, article.ID)
	}
	for article := range seq {
		second = append(second, article.ID)
	}

	require.Equal(t, []string{"newest", "middle"}, first)
	assert.Equal(t, first, second, "iterating twice yields the same sequence")
}

func TestStoreAll_EarlyBreak(t *testing.T) {
	s := fixtureStore(t)

	for range s.All() {
		break
	}
	// A second full range still sees everything after an interrupted one.
	count := 0
	for range s.All() {
		count++
	}
	assert.Equal(t, 3, count)
}

func TestStoreCategories(t *testing.T) {
	s := fixtureStore(t)

	categories, err := s.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"http", "java", "spring"}, categories)
}

func TestStoreNew_RejectsDuplicateIdentifiers(t *testing.T) {
	_, err := internalstore.New([]*interfaces.Document{
		doc("posts/a.md", "same-slug", "A", time.Now(), nil, false),
		doc("posts/b.md", "same-slug", "B", time.Now(), nil, false),
	}, internalstore.Config{})

	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrDuplicateIdentifier)

	var dup *store.DuplicateIdentifierError
	require.ErrorAs(t, err, &dup)
	assert.Equal(t, "same-slug", dup.ID)
}

func TestStoreNew_DerivesIdentifierFromPath(t *testing.T) {
	s := newStore(t, doc("posts/Hello World.md", "", "Hello", time.Now(), nil, false))

	article, err := s.Get(context.Background(), "hello-world")
	require.NoError(t, err)
	assert.Equal(t, "posts/Hello World.md", article.SourcePath)
}

func TestStoreGet_HonoursCancelledContext(t *testing.T) {
	s := fixtureStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Get(ctx, "newest")
	assert.True(t, errors.Is(err, context.Canceled))
}
