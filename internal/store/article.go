package store

import (
	"path"
	"strings"

	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

// FromDocument converts a parsed document into its immutable article form.
// The identifier comes from the front-matter slug when present; otherwise it
// is derived from the source file name. Either way it is normalised through
// the slug rules so identifiers stay URL-safe.
func FromDocument(doc *interfaces.Document) (*store.Article, error) {
	if doc == nil {
		return nil, &store.ParseError{Err: store.ErrFrontMatterInvalid}
	}

	id, err := deriveID(doc)
	if err != nil {
		return nil, &store.ParseError{Path: doc.FilePath, Err: err}
	}

	blocks := doc.Blocks
	if blocks == nil {
		blocks = []store.Block{}
	}

	return &store.Article{
		ID:         id,
		Title:      doc.FrontMatter.Title,
		Published:  doc.FrontMatter.Date,
		Categories: store.NormalizeCategories(doc.FrontMatter.Categories),
		Summary:    doc.FrontMatter.Summary,
		Author:     doc.FrontMatter.Author,
		Draft:      doc.FrontMatter.Draft,
		Custom:     doc.FrontMatter.Custom,
		Body:       blocks,
		SourcePath: doc.FilePath,
		Checksum:   doc.Checksum,
	}, nil
}

func deriveID(doc *interfaces.Document) (string, error) {
	candidate := strings.TrimSpace(doc.FrontMatter.Slug)
	if candidate == "" {
		base := path.Base(doc.FilePath)
		candidate = strings.TrimSuffix(base, path.Ext(base))
	}
	if candidate == "" || candidate == "." {
		return "", store.ErrIdentifierRequired
	}

	id, err := store.NormalizeID(candidate)
	if err != nil || id == "" {
		return "", store.ErrIdentifierCharacters
	}
	return id, nil
}
