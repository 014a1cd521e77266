package web

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	mdRenderer = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	mdSanitizer = bluemonday.UGCPolicy()
)

// renderMarkdown converts user-written markdown to sanitized HTML safe to
// inline in templates.
func renderMarkdown(source string) template.HTML {
	var buf bytes.Buffer
	if err := mdRenderer.Convert([]byte(source), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(source))
	}
	return template.HTML(mdSanitizer.SanitizeBytes(buf.Bytes()))
}
