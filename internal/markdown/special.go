package markdown

import (
	"bytes"
	"html/template"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var specialPattern = regexp.MustCompile(`\$\$special:([A-Za-z0-9_]+)\$\$`)

// SpecialFunc produces the HTML substituted for a $$special:<kind>$$ placeholder.
type SpecialFunc func() (template.HTML, error)

// Specials returns the distinct placeholder kinds referenced in content, in
// order of first appearance.
func Specials(content template.HTML) []string {
	var kinds []string
	seen := map[string]bool{}
	for _, m := range specialPattern.FindAllStringSubmatch(string(content), -1) {
		if !seen[m[1]] {
			seen[m[1]] = true
			kinds = append(kinds, m[1])
		}
	}
	return kinds
}

// ExpandSpecials substitutes every placeholder whose kind has a producer.
// Placeholders of unknown kinds are left as written.
func ExpandSpecials(content template.HTML, producers map[string]SpecialFunc) (template.HTML, error) {
	out := string(content)
	for _, kind := range Specials(content) {
		produce, ok := producers[kind]
		if !ok {
			continue
		}
		replacement, err := produce()
		if err != nil {
			return "", err
		}
		out = strings.ReplaceAll(out, "$$special:"+kind+"$$", string(replacement))
	}
	// #nosec G203 -- content and replacements are renderer output.
	return template.HTML(out), nil
}

// Link is one entry of a generated link list.
type Link struct {
	Title string
	Href  string
}

// LinkList renders links as an unordered list of anchors. Titles and hrefs are
// escaped by the HTML serializer.
func LinkList(links []Link) (template.HTML, error) {
	ul := &html.Node{Type: html.ElementNode, Data: "ul", DataAtom: atom.Ul}
	for _, l := range links {
		li := &html.Node{Type: html.ElementNode, Data: "li", DataAtom: atom.Li}
		a := &html.Node{
			Type:     html.ElementNode,
			Data:     "a",
			DataAtom: atom.A,
			Attr:     []html.Attribute{{Key: "href", Val: l.Href}},
		}
		a.AppendChild(&html.Node{Type: html.TextNode, Data: l.Title})
		li.AppendChild(a)
		ul.AppendChild(li)
	}
	var buf bytes.Buffer
	if err := html.Render(&buf, ul); err != nil {
		return "", err
	}
	// #nosec G203 -- serialized from a node tree with escaped text.
	return template.HTML(buf.String()), nil
}
