package markdown

import (
	"bytes"
	"fmt"
	"time"

	"github.com/adrg/frontmatter"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

// ParseFrontMatter extracts metadata and Markdown body content from the
// provided source bytes. It returns the structured frontmatter, the Markdown
// body without delimiters, and any error encountered. Title and date are
// required; their absence is a validation failure, not a silent default.
func ParseFrontMatter(source []byte) (interfaces.FrontMatter, []byte, error) {
	var meta frontMatterEnvelope

	reader := bytes.NewReader(source)
	body, err := frontmatter.Parse(reader, &meta)
	if err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}

	if err := meta.Validate(); err != nil {
		return interfaces.FrontMatter{}, nil, fmt.Errorf("%w: %v", store.ErrFrontMatterInvalid, err)
	}

	return envelopeToFrontMatter(meta), body, nil
}

// BuildDocument assembles an interfaces.Document from the supplied file path,
// raw content, and modification time. BodyHTML is intentionally left empty so
// callers can render lazily. Failures are reported as *store.ParseError and
// exclude the document entirely.
func BuildDocument(path string, source []byte, modified time.Time) (*interfaces.Document, error) {
	meta, body, err := ParseFrontMatter(source)
	if err != nil {
		return nil, &store.ParseError{Path: path, Err: err}
	}

	return &interfaces.Document{
		FilePath:     path,
		FrontMatter:  meta,
		Body:         body,
		Blocks:       SplitBlocks(body),
		LastModified: modified,
	}, nil
}

type frontMatterEnvelope struct {
	Title      string         `yaml:"title"`
	Slug       string         `yaml:"slug"`
	Summary    string         `yaml:"summary"`
	Categories []string       `yaml:"categories"`
	Author     string         `yaml:"author"`
	Date       time.Time      `yaml:"date"`
	Draft      bool           `yaml:"draft"`
	Custom     map[string]any `yaml:",inline"`
}

// Validate enforces the required metadata contract for article sources.
func (env frontMatterEnvelope) Validate() error {
	return validation.ValidateStruct(&env,
		validation.Field(&env.Title, validation.Required.Error("title is required")),
		validation.Field(&env.Date, validation.By(func(any) error {
			if env.Date.IsZero() {
				return validation.NewError("articles.frontmatter.date_required", "date is required")
			}
			return nil
		})),
	)
}

func envelopeToFrontMatter(env frontMatterEnvelope) interfaces.FrontMatter {
	if env.Custom == nil {
		env.Custom = map[string]any{}
	}

	raw := make(map[string]any, len(env.Custom)+7)
	for key, value := range env.Custom {
		raw[key] = value
	}

	raw["title"] = env.Title
	raw["date"] = env.Date
	if env.Slug != "" {
		raw["slug"] = env.Slug
	}
	if env.Summary != "" {
		raw["summary"] = env.Summary
	}
	if len(env.Categories) > 0 {
		raw["categories"] = append([]string(nil), env.Categories...)
	}
	if env.Author != "" {
		raw["author"] = env.Author
	}
	raw["draft"] = env.Draft

	return interfaces.FrontMatter{
		Title:      env.Title,
		Slug:       env.Slug,
		Summary:    env.Summary,
		Categories: append([]string(nil), env.Categories...),
		Author:     env.Author,
		Date:       env.Date,
		Draft:      env.Draft,
		Custom:     cloneMap(env.Custom),
		Raw:        raw,
	}
}

func cloneMap(input map[string]any) map[string]any {
	if input == nil {
		return map[string]any{}
	}

	out := make(map[string]any, len(input))
	for key, value := range input {
		out[key] = value
	}
	return out
}
