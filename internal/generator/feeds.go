package generator

import (
	"encoding/xml"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-articles/store"
)

type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	XMLNS   string      `xml:"xmlns,attr"`
	Title   string      `xml:"title"`
	ID      string      `xml:"id"`
	Updated string      `xml:"updated"`
	Links   []atomLink  `xml:"link"`
	Entries []atomEntry `xml:"entry"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr,omitempty"`
}

type atomEntry struct {
	Title      string         `xml:"title"`
	ID         string         `xml:"id"`
	Updated    string         `xml:"updated"`
	Summary    string         `xml:"summary,omitempty"`
	Author     *atomAuthor    `xml:"author,omitempty"`
	Link       atomLink       `xml:"link"`
	Categories []atomCategory `xml:"category"`
}

type atomAuthor struct {
	Name string `xml:"name"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// renderFeed produces an Atom feed over the supplied articles, newest first.
// Articles arrive pre-sorted from the store.
func renderFeed(siteTitle, baseURL string, articles []*store.Article, generatedAt time.Time) ([]byte, error) {
	base := strings.TrimRight(baseURL, "/")

	feed := atomFeed{
		XMLNS:   "http://www.w3.org/2005/Atom",
		Title:   siteTitle,
		ID:      base + "/",
		Updated: generatedAt.Format(time.RFC3339),
		Links: []atomLink{
			{Href: base + "/" + FeedPath, Rel: "self"},
			{Href: base + "/"},
		},
	}

	for _, article := range articles {
		entry := atomEntry{
			Title:   article.Title,
			ID:      base + "/" + ArticlePath(article.ID),
			Updated: article.Published.Format(time.RFC3339),
			Summary: article.Summary,
			Link:    atomLink{Href: base + "/" + ArticlePath(article.ID)},
		}
		if article.Author != "" {
			entry.Author = &atomAuthor{Name: article.Author}
		}
		for _, category := range article.Categories {
			entry.Categories = append(entry.Categories, atomCategory{Term: category})
		}
		feed.Entries = append(feed.Entries, entry)
	}

	data, err := xml.MarshalIndent(feed, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal feed: %w", err)
	}
	return append([]byte(xml.Header), data...), nil
}
