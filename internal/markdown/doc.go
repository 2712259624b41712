// Package markdown loads article sources from the filesystem, extracting
// front-matter metadata, splitting bodies into prose and code blocks, and
// rendering Markdown into HTML.
package markdown
