package generator

import "fmt"

const (
	// IndexPath is where the listing page lands relative to the output root.
	IndexPath = "index.html"
	// FeedPath is where the Atom feed lands when feeds are enabled.
	FeedPath = "feed.xml"
	// ManifestPath is where the build manifest lands when enabled.
	ManifestPath = "manifest.json"
)

// ArticlePath maps an article identifier to its output location.
func ArticlePath(id string) string {
	return fmt.Sprintf("articles/%s.html", id)
}
