package generator

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/goliatone/go-articles/store"
)

// Manifest records what a build produced so downstream deploys can diff
// outputs without re-reading every page.
type Manifest struct {
	BuildID     string          `json:"build_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Articles    []ManifestEntry `json:"articles"`
}

// ManifestEntry describes one rendered article.
type ManifestEntry struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Published  time.Time `json:"published"`
	Categories []string  `json:"categories,omitempty"`
	Path       string    `json:"path"`
	Checksum   string    `json:"checksum,omitempty"`
}

func renderManifest(result *BuildResult, articles []*store.Article) ([]byte, error) {
	manifest := Manifest{
		BuildID:     result.BuildID.String(),
		GeneratedAt: result.GeneratedAt,
		Articles:    make([]ManifestEntry, 0, len(articles)),
	}

	for _, article := range articles {
		entry := ManifestEntry{
			ID:         article.ID,
			Title:      article.Title,
			Published:  article.Published,
			Categories: article.Categories,
			Path:       ArticlePath(article.ID),
		}
		if len(article.Checksum) > 0 {
			entry.Checksum = hex.EncodeToString(article.Checksum)
		}
		manifest.Articles = append(manifest.Articles, entry)
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}
