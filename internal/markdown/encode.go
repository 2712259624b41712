package markdown

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-articles/pkg/interfaces"
)

const frontMatterDelimiter = "---"

// encodeEnvelope mirrors frontMatterEnvelope for serialization. Title and date
// always appear; optional fields are omitted when empty so encoded documents
// stay close to their authored form.
type encodeEnvelope struct {
	Title      string         `yaml:"title"`
	Slug       string         `yaml:"slug,omitempty"`
	Summary    string         `yaml:"summary,omitempty"`
	Categories []string       `yaml:"categories,omitempty"`
	Author     string         `yaml:"author,omitempty"`
	Date       time.Time      `yaml:"date"`
	Draft      bool           `yaml:"draft,omitempty"`
	Custom     map[string]any `yaml:",inline"`
}

// EncodeDocument serialises a document back into front-matter plus Markdown
// body. Loading the result again yields the same title, date, categories, and
// block sequence.
func EncodeDocument(doc *interfaces.Document) ([]byte, error) {
	if doc == nil {
		return nil, fmt.Errorf("markdown encode: document is nil")
	}

	env := encodeEnvelope{
		Title:      doc.FrontMatter.Title,
		Slug:       doc.FrontMatter.Slug,
		Summary:    doc.FrontMatter.Summary,
		Categories: doc.FrontMatter.Categories,
		Author:     doc.FrontMatter.Author,
		Date:       doc.FrontMatter.Date,
		Draft:      doc.FrontMatter.Draft,
		Custom:     doc.FrontMatter.Custom,
	}

	meta, err := yaml.Marshal(&env)
	if err != nil {
		return nil, fmt.Errorf("markdown encode %s: %w", doc.FilePath, err)
	}

	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')
	buf.Write(meta)
	buf.WriteString(frontMatterDelimiter)
	buf.WriteByte('\n')

	body := doc.Body
	if len(doc.Blocks) > 0 {
		body = EncodeBlocks(doc.Blocks)
	}
	if len(body) > 0 {
		buf.WriteByte('\n')
		buf.Write(body)
	}

	return buf.Bytes(), nil
}
