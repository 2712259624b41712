package markdown

import (
	"context"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"posts/nullness.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Nullness\ndate: 2024-07-25\ncategories: [java]\n---\n\nBody **text**.\n"),
		},
		"posts/problem-details.md": &fstest.MapFile{
			Data: []byte("---\ntitle: Problem Details\ndate: 2024-08-02\ncategories: [spring, http]\n---\n\nIntro.\n\n```json\n{\"status\": 404}\n```\n"),
		},
		"posts/notes.txt": &fstest.MapFile{
			Data: []byte("not markdown"),
		},
	}
}

func newTestService(t *testing.T, fsys fstest.MapFS) *Service {
	t.Helper()
	svc, err := NewService(Config{Filesystem: fsys, Recursive: true}, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceLoadDirectory(t *testing.T) {
	svc := newTestService(t, testFS())

	docs, err := svc.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("expected 2 markdown documents, got %d", len(docs))
	}
	if docs[0].FilePath != "posts/nullness.md" {
		t.Fatalf("expected path ordering, got %q", docs[0].FilePath)
	}
	if len(docs[0].Checksum) == 0 {
		t.Fatalf("expected checksum to be populated")
	}
}

func TestServiceLoad_RenderHTML(t *testing.T) {
	svc := newTestService(t, testFS())

	doc, err := svc.Load(context.Background(), "posts/nullness.md", interfaces.LoadOptions{RenderHTML: true})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !strings.Contains(string(doc.BodyHTML), "<strong>text</strong>") {
		t.Fatalf("expected rendered HTML, got %q", string(doc.BodyHTML))
	}
}

func TestServiceLoad_ParseErrorExcludesDocument(t *testing.T) {
	fsys := testFS()
	fsys["posts/broken.md"] = &fstest.MapFile{
		Data: []byte("---\ncategories: [java]\n---\n\nno required fields\n"),
	}
	svc := newTestService(t, fsys)

	_, err := svc.Load(context.Background(), "posts/broken.md", interfaces.LoadOptions{})
	var parseErr *store.ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected *store.ParseError, got %v", err)
	}
}

func TestServiceLoadDirectory_RespectsPattern(t *testing.T) {
	svc := newTestService(t, testFS())

	docs, err := svc.LoadDirectory(context.Background(), ".", interfaces.LoadOptions{Pattern: "problem-*.md"})
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if len(docs) != 1 || docs[0].FrontMatter.Title != "Problem Details" {
		t.Fatalf("expected pattern to narrow results, got %#v", docs)
	}
}

func TestServiceLoadDirectory_HonoursCancelledContext(t *testing.T) {
	svc := newTestService(t, testFS())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.LoadDirectory(ctx, ".", interfaces.LoadOptions{}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestServiceEncode_RoundTrip(t *testing.T) {
	svc := newTestService(t, testFS())
	ctx := context.Background()

	doc, err := svc.Load(ctx, "posts/problem-details.md", interfaces.LoadOptions{})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	encoded, err := svc.Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	reloaded, err := BuildDocument(doc.FilePath, encoded, time.Now())
	if err != nil {
		t.Fatalf("BuildDocument(encoded): %v", err)
	}

	if reloaded.FrontMatter.Title != doc.FrontMatter.Title {
		t.Fatalf("title mismatch after round trip: %q vs %q", reloaded.FrontMatter.Title, doc.FrontMatter.Title)
	}
	if !reloaded.FrontMatter.Date.Equal(doc.FrontMatter.Date) {
		t.Fatalf("date mismatch after round trip: %v vs %v", reloaded.FrontMatter.Date, doc.FrontMatter.Date)
	}
	if len(reloaded.FrontMatter.Categories) != len(doc.FrontMatter.Categories) {
		t.Fatalf("categories mismatch after round trip: %#v vs %#v", reloaded.FrontMatter.Categories, doc.FrontMatter.Categories)
	}
	if len(reloaded.Blocks) != len(doc.Blocks) {
		t.Fatalf("block count mismatch after round trip: %d vs %d", len(reloaded.Blocks), len(doc.Blocks))
	}
	for i := range doc.Blocks {
		if reloaded.Blocks[i].Kind() != doc.Blocks[i].Kind() {
			t.Fatalf("block %d kind mismatch: %s vs %s", i, reloaded.Blocks[i].Kind(), doc.Blocks[i].Kind())
		}
	}
}
