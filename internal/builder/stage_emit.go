package builder

import (
	"context"
	"html/template"
	"log/slog"

	"git.home.luguber.info/inful/wikigen/internal/content"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/markdown"
	"git.home.luguber.info/inful/wikigen/internal/render"
)

// SpecialElementsList is the placeholder kind replaced by a list of element links.
const SpecialElementsList = "elements_list"

func stageEmitPages(ctx context.Context, s *Session) error {
	links := content.ElementLinks(s.Elements)
	specials := map[string]markdown.SpecialFunc{
		SpecialElementsList: func() (template.HTML, error) { return markdown.LinkList(links) },
	}

	for _, a := range s.Articles.All() {
		expanded, err := markdown.ExpandSpecials(a.ContentHTML, specials)
		if err != nil {
			return err
		}
		a.ContentHTML = expanded
		if err := s.emitPage(PageArticle, a.PathHTML(), render.TemplateArticle, a.Title, a, logfields.Article(a.Name)); err != nil {
			return err
		}
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	for _, fn := range s.Functions.All() {
		if err := s.emitPage(PageFunction, fn.PathHTML(), render.TemplateFunction, fn.Name, fn, logfields.Function(fn.Name)); err != nil {
			return err
		}
	}
	for _, e := range s.Elements {
		if err := s.emitPage(PageElement, e.PathHTML(), render.TemplateElement, e.DisplayName(), e, logfields.Element(e.Name)); err != nil {
			return err
		}
	}
	return s.emitNotFound()
}

// emitPage renders data with tmpl inside the layout and writes it as the
// index page of sitePath.
func (s *Session) emitPage(kind PageKind, sitePath, tmpl, title string, data any, attrs ...any) error {
	page, err := s.pages.Page(tmpl, data, s.layout(title))
	if err != nil {
		return err
	}
	target, err := s.writer.WritePage(sitePath, page)
	if err != nil {
		return err
	}
	s.Report.Pages[kind]++
	slog.Info("Generated page", append([]any{logfields.Path(target), slog.String("kind", string(kind))}, attrs...)...)
	return nil
}

func (s *Session) emitNotFound() error {
	page, err := s.pages.Page(render.TemplateNotFound, nil, s.layout("Page not found"))
	if err != nil {
		return err
	}
	target, err := s.writer.WriteFile("/404.html", page)
	if err != nil {
		return err
	}
	s.Report.Pages[PageNotFound]++
	slog.Info("Generated page", logfields.Path(target), slog.String("kind", string(PageNotFound)))
	return nil
}
