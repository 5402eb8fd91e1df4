package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// Raw HTML in fetched READMEs stays escaped; only the markdown itself is
// converted.
var markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))

// Markdown converts fetched README text to HTML for the detail page.
// Conversion failures degrade to no README rather than an error page.
func Markdown(src string) (template.HTML, bool) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", false
	}
	return template.HTML(buf.String()), true
}
