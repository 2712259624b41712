package main

import (
	"flag"
	"log"
)

func main() {
	var (
		contentDir    = flag.String("content-dir", "content", "Path to the markdown content root")
		pattern       = flag.String("pattern", "*.md", "Glob pattern applied when discovering markdown files")
		recursive     = flag.Bool("recursive", true, "Descend into subdirectories of the content root")
		outputDir     = flag.String("output-dir", "dist", "Directory the generated site is written to")
		baseURL       = flag.String("base-url", "", "Absolute base URL used in the feed and manifest")
		siteTitle     = flag.String("site-title", "", "Title rendered on the index page and feed")
		includeDrafts = flag.Bool("include-drafts", false, "Include draft articles in the generated site")
		cleanBuild    = flag.Bool("clean", false, "Remove the output directory before writing")
		logLevel      = flag.String("log-level", "info", "Minimum log level (trace, debug, info, warn, error, fatal)")
	)

	flag.Parse()

	if err := run(runOptions{
		ContentDir:    *contentDir,
		Pattern:       *pattern,
		Recursive:     *recursive,
		OutputDir:     *outputDir,
		BaseURL:       *baseURL,
		SiteTitle:     *siteTitle,
		IncludeDrafts: *includeDrafts,
		CleanBuild:    *cleanBuild,
		LogLevel:      *logLevel,
	}); err != nil {
		log.Fatalf("build site: %v", err)
	}
}

type runOptions struct {
	ContentDir    string
	Pattern       string
	Recursive     bool
	OutputDir     string
	BaseURL       string
	SiteTitle     string
	IncludeDrafts bool
	CleanBuild    bool
	LogLevel      string
}
