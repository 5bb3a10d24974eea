package content

import (
	"bytes"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(
		goldmark.WithExtensions(extension.GFM),
	)
	policy = bluemonday.UGCPolicy()
)

// HTML renders an authored markdown snippet to sanitized HTML. Inputs are
// literals from this package, so a conversion failure falls back to the
// escaped source rather than an error path.
func HTML(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(src))
	}
	return template.HTML(policy.SanitizeBytes(buf.Bytes()))
}

// Inline renders markdown and strips the wrapping <p> tags, for snippets
// embedded inside table cells and card bodies.
func Inline(src string) template.HTML {
	out := []byte(HTML(src))
	out = bytes.TrimSpace(out)
	out = bytes.TrimPrefix(out, []byte("<p>"))
	out = bytes.TrimSuffix(out, []byte("</p>"))
	return template.HTML(out)
}
