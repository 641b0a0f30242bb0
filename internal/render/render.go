// Package render turns resolved models into HTML pages. Every page is a
// content template wrapped in the shared layout.
package render

import (
	"bytes"
	"embed"
	"errors"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/wikigen/internal/category"
	"git.home.luguber.info/inful/wikigen/internal/content"
	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/function"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// Template names. A file with the same name in the resources directory
// replaces the embedded default.
const (
	TemplateLayout   = "layout.html"
	TemplateArticle  = "article.html"
	TemplateFunction = "function.html"
	TemplateElement  = "element.html"
	TemplateCategory = "category.html"
	TemplateNotFound = "404.html"
)

var templateNames = []string{
	TemplateLayout, TemplateArticle, TemplateFunction,
	TemplateElement, TemplateCategory, TemplateNotFound,
}

//go:embed templates/*.html
var embeddedTemplates embed.FS

// Source tells where a template body came from.
type Source string

const (
	SourceEmbedded Source = "embedded"
	SourceFile     Source = "file"
)

// Layout is the data every page is wrapped with.
type Layout struct {
	WikiVersion string
	PreviewMode bool
	Year        int
	Title       string
	Navigation  []record.NavigationEntry
	Content     template.HTML
}

// CategoryPage is the data of a category page.
type CategoryPage struct {
	Name    string
	Members []category.Member
}

// SyntaxView is one function signature together with the function name.
type SyntaxView struct {
	Name      string
	Arguments function.Arguments
	Returns   function.ReturnsView
}

// Renderer executes page templates.
type Renderer struct {
	templates map[string]*template.Template
	sources   map[string]Source
}

// New parses all page templates, preferring overrides found in resourcesDir.
func New(resourcesDir string) (*Renderer, error) {
	r := &Renderer{
		templates: make(map[string]*template.Template, len(templateNames)),
		sources:   make(map[string]Source, len(templateNames)),
	}
	for _, name := range templateNames {
		body, src, err := loadTemplate(resourcesDir, name)
		if err != nil {
			return nil, err
		}
		tmpl, err := template.New(name).Funcs(funcMap).Parse(body)
		if err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryRender, "failed to parse template").
				Fatal().WithContext("template", name).WithContext("source", string(src)).Build()
		}
		r.templates[name] = tmpl
		r.sources[name] = src
	}
	return r, nil
}

func loadTemplate(resourcesDir, name string) (string, Source, error) {
	if resourcesDir != "" {
		p := filepath.Join(resourcesDir, name)
		// #nosec G304 -- fixed template names below the configured resources directory.
		b, err := os.ReadFile(p)
		switch {
		case err == nil:
			slog.Debug("Loaded template override", slog.String("template", name), logfields.Path(p))
			return string(b), SourceFile, nil
		case !errors.Is(err, fs.ErrNotExist):
			return "", "", ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to read template").
				Fatal().WithContext("path", p).Build()
		}
	}
	b, err := embeddedTemplates.ReadFile("templates/" + name)
	if err != nil {
		return "", "", ferrors.WrapError(err, ferrors.CategoryInternal, "embedded template missing").
			Fatal().WithContext("template", name).Build()
	}
	return string(b), SourceEmbedded, nil
}

var funcMap = template.FuncMap{
	"articlePath": func(name string) string {
		return (&content.Article{Name: name}).PathHTML()
	},
	"syntaxOf": func(name string, s *function.Syntax) SyntaxView {
		return SyntaxView{Name: name, Arguments: s.Arguments, Returns: s.Returns}
	},
}

// Sources reports, per template name, whether the embedded default or an override is in use.
func (r *Renderer) Sources() map[string]Source {
	out := make(map[string]Source, len(r.sources))
	for k, v := range r.sources {
		out[k] = v
	}
	return out
}

// Page executes the content template name with data and wraps the result in
// the layout. layout.Content is overwritten.
func (r *Renderer) Page(name string, data any, layout Layout) ([]byte, error) {
	var body bytes.Buffer
	if err := r.execute(name, &body, data); err != nil {
		return nil, err
	}
	// #nosec G203 -- produced by html/template above.
	layout.Content = template.HTML(body.String())
	var page bytes.Buffer
	if err := r.execute(TemplateLayout, &page, layout); err != nil {
		return nil, err
	}
	return page.Bytes(), nil
}

func (r *Renderer) execute(name string, buf *bytes.Buffer, data any) error {
	tmpl, ok := r.templates[name]
	if !ok {
		return ferrors.InternalError("unknown template").WithContext("template", name).Build()
	}
	if err := tmpl.Execute(buf, data); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryRender, "failed to execute template").
			Fatal().WithContext("template", name).Build()
	}
	return nil
}
