// Package content loads the narrative parts of the wiki: articles and
// element descriptions.
package content

import (
	"html/template"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"git.home.luguber.info/inful/wikigen/internal/category"
	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/function"
	"git.home.luguber.info/inful/wikigen/internal/markdown"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// IntroductionArticle is served at the site root.
const IntroductionArticle = "introduction"

// Markup renders long-form text.
type Markup interface {
	ToHTML(src string) (template.HTML, error)
}

// Article is a loaded article. Name is the directory holding its record.
type Article struct {
	Name        string
	Title       string
	RealPath    string
	ContentHTML template.HTML
}

// Dir is the directory of the article record.
func (a *Article) Dir() string { return filepath.Dir(a.RealPath) }

// PathHTML is the site path of the article page.
func (a *Article) PathHTML() string {
	if a.Name == IntroductionArticle {
		return "/"
	}
	return "/" + a.Name + "/"
}

// Element is a loaded element description.
type Element struct {
	Name            string
	RealPath        string
	DescriptionHTML template.HTML
}

// PathHTML is the site path of the element page.
func (e *Element) PathHTML() string { return "/" + e.Name + "/" }

var titleCaser = cases.Title(language.Und)

// DisplayName is the element name as shown in headings and lists.
func (e *Element) DisplayName() string { return titleCaser.String(e.Name) }

// Loader builds articles and elements from their records.
type Loader struct {
	records *record.Loader
	markup  Markup
	root    string
}

// NewLoader creates a Loader. root anchors "/"-prefixed content references.
func NewLoader(records *record.Loader, markup Markup, root string) *Loader {
	return &Loader{records: records, markup: markup, root: root}
}

// Article loads the article record at path and renders its content file.
func (l *Loader) Article(path string) (*Article, error) {
	rec, err := l.records.LoadArticle(path)
	if err != nil {
		return nil, err
	}
	contentPath := function.ResolvePath(l.root, filepath.Dir(path), rec.Content)
	src, err := os.ReadFile(contentPath)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryReference, "article content not found").
			Fatal().WithContext("file", path).WithContext("path", contentPath).Build()
	}
	html, err := l.markup.ToHTML(string(src))
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to render article").
			Fatal().WithContext("file", path).Build()
	}
	return &Article{
		Name:        filepath.Base(filepath.Dir(path)),
		Title:       rec.Title,
		RealPath:    path,
		ContentHTML: html,
	}, nil
}

// Element loads the element record at path.
func (l *Loader) Element(path string) (*Element, error) {
	rec, err := l.records.LoadElement(path)
	if err != nil {
		return nil, err
	}
	html, err := l.markup.ToHTML(rec.Description)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to render element description").
			Fatal().WithContext("file", path).Build()
	}
	return &Element{Name: rec.Name, RealPath: path, DescriptionHTML: html}, nil
}

// ElementLinks lists elements as links for the elements_list placeholder.
func ElementLinks(elements []*Element) []markdown.Link {
	links := make([]markdown.Link, 0, len(elements))
	for _, e := range elements {
		links = append(links, markdown.Link{Title: e.DisplayName(), Href: e.PathHTML()})
	}
	return links
}

// Lister lists the immediate subdirectories of a directory.
type Lister interface {
	Subdirectories(dir string) ([]string, error)
}

// Articles is the ordered set of loaded articles.
type Articles struct {
	root  string
	dirs  Lister
	items []*Article
}

// NewArticles creates an empty set for articles stored below root.
func NewArticles(root string, dirs Lister) *Articles {
	return &Articles{root: root, dirs: dirs}
}

// Add appends a loaded article.
func (a *Articles) Add(article *Article) { a.items = append(a.items, article) }

// All returns the articles in load order.
func (a *Articles) All() []*Article { return a.items }

// SelectArticles implements category.ArticleSelector: every subdirectory of
// folder holding a loaded article becomes a member. Subdirectories without
// an article record are skipped.
func (a *Articles) SelectArticles(folder string) ([]category.Member, error) {
	dirs, err := a.dirs.Subdirectories(filepath.Join(a.root, filepath.FromSlash(folder)))
	if err != nil {
		return nil, err
	}
	var members []category.Member
	for _, dir := range dirs {
		for _, article := range a.items {
			if filepath.Clean(article.Dir()) == filepath.Clean(dir) {
				members = append(members, category.Member{Title: article.Title, Path: article.PathHTML()})
			}
		}
	}
	return members, nil
}
