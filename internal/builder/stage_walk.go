package builder

import (
	"context"

	"git.home.luguber.info/inful/wikigen/internal/category"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/render"
)

// categoryEmitter writes category pages while the tree is walked.
type categoryEmitter struct{ s *Session }

func (e categoryEmitter) EmitCategory(path, name string, members []category.Member) error {
	return e.s.emitPage(PageCategory, path, render.TemplateCategory, name,
		render.CategoryPage{Name: name, Members: members}, logfields.Category(name))
}

func stageWalkCategories(_ context.Context, s *Session) error {
	s.Index = category.NewIndex()
	w := category.NewWalker(s.Index, s.Functions, s.Articles, categoryEmitter{s: s})
	if err := w.Walk(s.Navigation); err != nil {
		return err
	}
	for _, name := range s.Index.Replaced() {
		s.Report.addOmission(OmissionDuplicateCategory, name, "members replaced by a later node")
	}
	s.Report.Categories = s.Index.Len()
	return nil
}
