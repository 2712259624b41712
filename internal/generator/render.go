package generator

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/goliatone/go-articles/pkg/interfaces"
	"github.com/goliatone/go-articles/store"
)

// renderBlocks converts an article body into HTML block by block: prose runs
// through the Markdown renderer, code blocks are emitted verbatim inside an
// escaped pre/code pair so samples are never interpreted.
func renderBlocks(ctx context.Context, markdown interfaces.MarkdownService, blocks []store.Block) (template.HTML, error) {
	var builder strings.Builder

	for _, block := range blocks {
		switch v := block.(type) {
		case store.ProseBlock:
			html, err := markdown.Render(ctx, []byte(v.Text), interfaces.ParseOptions{})
			if err != nil {
				return "", err
			}
			builder.Write(html)
		case store.CodeBlock:
			builder.WriteString(`<pre><code`)
			if v.Language != "" {
				fmt.Fprintf(&builder, ` class="language-%s"`, template.HTMLEscapeString(v.Language))
			}
			builder.WriteString(">")
			builder.WriteString(template.HTMLEscapeString(v.Literal))
			builder.WriteString("</code></pre>\n")
		}
	}

	return template.HTML(builder.String()), nil
}

const articleTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Article.Title}} — {{.SiteTitle}}</title>
</head>
<body>
<article>
<header>
<h1>{{.Article.Title}}</h1>
<p class="meta">
<time datetime="{{.Article.Published.Format "2006-01-02"}}">{{.Article.Published.Format "January 2, 2006"}}</time>
{{- if .Article.Author}} · {{.Article.Author}}{{end}}
{{- range .Article.Categories}} · <span class="category">{{.}}</span>{{end}}
</p>
{{- if .Article.Summary}}
<p class="summary">{{.Article.Summary}}</p>
{{- end}}
</header>
{{.Body}}
</article>
</body>
</html>
`

const indexTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.SiteTitle}}</title>
</head>
<body>
<h1>{{.SiteTitle}}</h1>
<ul class="articles">
{{- range .Articles}}
<li>
<a href="{{articlePath .ID}}">{{.Title}}</a>
<time datetime="{{.Published.Format "2006-01-02"}}">{{.Published.Format "2006-01-02"}}</time>
{{- range .Categories}} <span class="category">{{.}}</span>{{end}}
</li>
{{- end}}
</ul>
</body>
</html>
`

type templateRenderer struct {
	siteTitle string
	baseURL   string
	article   *template.Template
	index     *template.Template
}

func newTemplateRenderer(siteTitle, baseURL string) (*templateRenderer, error) {
	article, err := template.New("article").Parse(articleTemplate)
	if err != nil {
		return nil, fmt.Errorf("generator parse article template: %w", err)
	}

	index, err := template.New("index").Funcs(template.FuncMap{
		"articlePath": ArticlePath,
	}).Parse(indexTemplate)
	if err != nil {
		return nil, fmt.Errorf("generator parse index template: %w", err)
	}

	return &templateRenderer{
		siteTitle: siteTitle,
		baseURL:   strings.TrimRight(baseURL, "/"),
		article:   article,
		index:     index,
	}, nil
}

func (r *templateRenderer) RenderArticle(article *store.Article, body template.HTML) ([]byte, error) {
	var buf bytes.Buffer
	err := r.article.Execute(&buf, struct {
		SiteTitle string
		Article   *store.Article
		Body      template.HTML
	}{
		SiteTitle: r.siteTitle,
		Article:   article,
		Body:      body,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (r *templateRenderer) RenderIndex(articles []*store.Article, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	err := r.index.Execute(&buf, struct {
		SiteTitle   string
		Articles    []*store.Article
		GeneratedAt time.Time
	}{
		SiteTitle:   r.siteTitle,
		Articles:    articles,
		GeneratedAt: generatedAt,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
