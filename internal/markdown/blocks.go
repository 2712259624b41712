package markdown

import (
	"strings"

	"github.com/goliatone/go-articles/store"
)

// SplitBlocks divides a Markdown body into an ordered sequence of prose and
// fenced code blocks. Authored order is preserved exactly; code literals are
// captured verbatim and never interpreted. Whitespace-only prose between
// blocks is dropped since EncodeBlocks reintroduces block separators.
func SplitBlocks(body []byte) []store.Block {
	lines := strings.Split(string(body), "\n")

	var blocks []store.Block
	var prose []string

	flushProse := func() {
		if len(prose) == 0 {
			return
		}
		text := strings.Trim(strings.Join(prose, "\n"), "\n")
		prose = nil
		if strings.TrimSpace(text) == "" {
			return
		}
		blocks = append(blocks, store.ProseBlock{Text: text})
	}

	for i := 0; i < len(lines); i++ {
		marker, info, ok := openingFence(lines[i])
		if !ok {
			prose = append(prose, lines[i])
			continue
		}

		flushProse()

		var literal []string
		closed := false
		for i++; i < len(lines); i++ {
			if closingFence(lines[i], marker) {
				closed = true
				break
			}
			literal = append(literal, lines[i])
		}
		// An unclosed fence runs to the end of the document, matching
		// CommonMark semantics.
		_ = closed

		text := strings.Join(literal, "\n")
		if text != "" {
			text += "\n"
		}
		blocks = append(blocks, store.CodeBlock{
			Language: fenceLanguage(info),
			Literal:  text,
		})
	}

	flushProse()
	return blocks
}

// EncodeBlocks renders a block sequence back into a Markdown body. Fences are
// normalised to backticks, widened as needed so literals containing backtick
// runs stay intact.
func EncodeBlocks(blocks []store.Block) []byte {
	var builder strings.Builder

	for i, block := range blocks {
		if i > 0 {
			builder.WriteString("\n\n")
		}
		switch v := block.(type) {
		case store.ProseBlock:
			builder.WriteString(strings.Trim(v.Text, "\n"))
		case store.CodeBlock:
			fence := fenceFor(v.Literal)
			builder.WriteString(fence)
			builder.WriteString(v.Language)
			builder.WriteByte('\n')
			builder.WriteString(v.Literal)
			if v.Literal != "" && !strings.HasSuffix(v.Literal, "\n") {
				builder.WriteByte('\n')
			}
			builder.WriteString(fence)
		}
	}

	if builder.Len() > 0 {
		builder.WriteByte('\n')
	}
	return []byte(builder.String())
}

func openingFence(line string) (marker string, info string, ok bool) {
	trimmed := strings.TrimLeft(line, " ")
	// CommonMark allows up to three spaces of indentation before a fence.
	if len(line)-len(trimmed) > 3 {
		return "", "", false
	}

	for _, ch := range []byte{'`', '~'} {
		run := runLength(trimmed, ch)
		if run < 3 {
			continue
		}
		info = strings.TrimSpace(trimmed[run:])
		// Info strings on backtick fences cannot contain backticks.
		if ch == '`' && strings.Contains(info, "`") {
			return "", "", false
		}
		return trimmed[:run], info, true
	}
	return "", "", false
}

func closingFence(line, marker string) bool {
	trimmed := strings.TrimSpace(line)
	if len(trimmed) < len(marker) {
		return false
	}
	return runLength(trimmed, marker[0]) == len(trimmed)
}

func runLength(s string, ch byte) int {
	n := 0
	for n < len(s) && s[n] == ch {
		n++
	}
	return n
}

func fenceLanguage(info string) string {
	if info == "" {
		return ""
	}
	if idx := strings.IndexAny(info, " \t"); idx >= 0 {
		return info[:idx]
	}
	return info
}

func fenceFor(literal string) string {
	longest := 0
	for _, line := range strings.Split(literal, "\n") {
		if run := runLength(strings.TrimLeft(line, " "), '`'); run > longest {
			longest = run
		}
	}
	if longest < 3 {
		longest = 2
	}
	return strings.Repeat("`", longest+1)
}
