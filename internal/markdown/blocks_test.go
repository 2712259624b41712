package markdown

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-articles/store"
)

func TestSplitBlocks_ProseCodeProse(t *testing.T) {
	body := []byte("Intro paragraph.\n\n```go\nfmt.Println(\"hi\")\n```\n\nOutro paragraph.\n")

	blocks := SplitBlocks(body)
	if len(blocks) != 3 {
		t.Fatalf("expected 3 blocks, got %d: %#v", len(blocks), blocks)
	}

	prose, ok := blocks[0].(store.ProseBlock)
	if !ok || prose.Text != "Intro paragraph." {
		t.Fatalf("unexpected first block: %#v", blocks[0])
	}

	code, ok := blocks[1].(store.CodeBlock)
	if !ok {
		t.Fatalf("expected code block, got %T", blocks[1])
	}
	if code.Language != "go" {
		t.Fatalf("expected go language, got %q", code.Language)
	}
	if code.Literal != "fmt.Println(\"hi\")\n" {
		t.Fatalf("expected verbatim literal, got %q", code.Literal)
	}

	if _, ok := blocks[2].(store.ProseBlock); !ok {
		t.Fatalf("expected trailing prose, got %T", blocks[2])
	}
}

func TestSplitBlocks_TildeFenceAndInfoString(t *testing.T) {
	body := []byte("~~~java title=Example\nrecord Point(int x) {}\n~~~\n")

	blocks := SplitBlocks(body)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	code := blocks[0].(store.CodeBlock)
	if code.Language != "java" {
		t.Fatalf("expected language from info string, got %q", code.Language)
	}
	if code.Literal != "record Point(int x) {}\n" {
		t.Fatalf("unexpected literal: %q", code.Literal)
	}
}

func TestSplitBlocks_UnclosedFenceRunsToEnd(t *testing.T) {
	body := []byte("before\n\n```\nline one\nline two")

	blocks := SplitBlocks(body)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	code := blocks[1].(store.CodeBlock)
	if code.Literal != "line one\nline two\n" {
		t.Fatalf("unexpected literal: %q", code.Literal)
	}
}

func TestSplitBlocks_PreservesOrder(t *testing.T) {
	body := []byte("a\n\n```x\n1\n```\n\nb\n\n```y\n2\n```\n")

	blocks := SplitBlocks(body)
	kinds := make([]store.BlockKind, 0, len(blocks))
	for _, block := range blocks {
		kinds = append(kinds, block.Kind())
	}
	want := []store.BlockKind{
		store.BlockKindProse,
		store.BlockKindCode,
		store.BlockKindProse,
		store.BlockKindCode,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Fatalf("expected %v, got %v", want, kinds)
	}
}

func TestEncodeBlocks_RoundTrip(t *testing.T) {
	original := []store.Block{
		store.ProseBlock{Text: "Before the sample."},
		store.CodeBlock{Language: "java", Literal: "@Nullable String name;\n"},
		store.ProseBlock{Text: "After the sample.\n\nSecond paragraph."},
	}

	decoded := SplitBlocks(EncodeBlocks(original))
	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("round trip mismatch:\noriginal: %#v\ndecoded:  %#v", original, decoded)
	}
}

func TestEncodeBlocks_WidensFenceForBacktickLiterals(t *testing.T) {
	original := []store.Block{
		store.CodeBlock{Language: "markdown", Literal: "```go\ncode\n```\n"},
	}

	encoded := EncodeBlocks(original)
	decoded := SplitBlocks(encoded)
	if !reflect.DeepEqual(decoded, original) {
		t.Fatalf("expected literal fences to survive, got %q -> %#v", encoded, decoded)
	}
}
