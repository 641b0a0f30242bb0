// Package markdown converts authored markup (descriptions, notes, article
// bodies) into HTML fragments for page templates.
package markdown

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/text"
)

// Renderer converts markup to HTML. The zero value is not usable; use NewRenderer.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a Renderer with GitHub-flavoured extensions. Raw HTML in
// sources is passed through: records are trusted repository content.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// ToHTML renders src as block-level HTML.
func (r *Renderer) ToHTML(src string) (template.HTML, error) {
	return r.render(src, false)
}

// ToInlineHTML renders src and, when the result is a single paragraph, strips
// the outer <p> wrapper so it can be embedded in table cells and list items.
func (r *Renderer) ToInlineHTML(src string) (template.HTML, error) {
	return r.render(src, true)
}

func (r *Renderer) render(src string, inline bool) (template.HTML, error) {
	if strings.TrimSpace(src) == "" {
		return "", nil
	}
	source := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(source))
	if inline {
		unwrapSingleParagraph(doc)
	}
	var buf bytes.Buffer
	if err := r.md.Renderer().Render(&buf, source, doc); err != nil {
		return "", err
	}
	// #nosec G203 -- output of the markup renderer for trusted repository content.
	return template.HTML(strings.TrimSpace(buf.String())), nil
}

// unwrapSingleParagraph replaces a lone top-level paragraph with a text block,
// which renders its inline children without a wrapper element.
func unwrapSingleParagraph(doc gmast.Node) {
	if doc.ChildCount() != 1 {
		return
	}
	para, ok := doc.FirstChild().(*gmast.Paragraph)
	if !ok {
		return
	}
	tb := gmast.NewTextBlock()
	tb.SetLines(para.Lines())
	for c := para.FirstChild(); c != nil; {
		next := c.NextSibling()
		tb.AppendChild(tb, c)
		c = next
	}
	doc.ReplaceChild(doc, para, tb)
}
