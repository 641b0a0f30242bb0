package category

import (
	"log/slog"
	"strings"

	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// FunctionsRoot is the fixed path prefix of function-backed categories.
const FunctionsRoot = "/lua/functions"

// FunctionSelector lists the functions belonging to a category.
type FunctionSelector interface {
	// SelectFunctions returns, in load order, the functions stored in folder
	// whose dominant context is ctx, and assigns them to category.
	SelectFunctions(folder string, ctx record.Context, category string) []Member
}

// ArticleSelector lists the articles stored below a folder.
type ArticleSelector interface {
	SelectArticles(folder string) ([]Member, error)
}

// PageEmitter writes a category page.
type PageEmitter interface {
	EmitCategory(path, name string, members []Member) error
}

// Walker expands navigation category trees into the Index and emits one page
// per category node.
type Walker struct {
	index     *Index
	functions FunctionSelector
	articles  ArticleSelector
	emitter   PageEmitter
}

// NewWalker creates a Walker registering into index.
func NewWalker(index *Index, functions FunctionSelector, articles ArticleSelector, emitter PageEmitter) *Walker {
	return &Walker{index: index, functions: functions, articles: articles, emitter: emitter}
}

// Walk visits every category reachable from the navigation entries in
// document order, descending into subitems.
func (w *Walker) Walk(entries []record.NavigationEntry) error {
	for i := range entries {
		entry := &entries[i]
		if entry.Category != nil {
			if err := w.walkNode(entry.PathHTML, entry.Category); err != nil {
				return err
			}
		}
		if err := w.Walk(entry.Subitems); err != nil {
			return err
		}
	}
	return nil
}

// walkNode registers subcategories before the node itself, so a node sharing
// its name with one of its descendants ends up holding its own members.
func (w *Walker) walkNode(path string, node *record.CategoryNode) error {
	for i := range node.Subcategories {
		sub := &node.Subcategories[i]
		if err := w.walkNode(ChildPath(path, sub), sub); err != nil {
			return err
		}
	}

	members, err := w.members(path, node)
	if err != nil {
		return err
	}
	if w.index.InsertOrReplace(node.Name, members) {
		slog.Debug("Category name registered twice, keeping latest members",
			logfields.Category(node.Name), logfields.Path(path), logfields.Reason("duplicate_category"))
	}
	if w.emitter == nil {
		return nil
	}
	return w.emitter.EmitCategory(path, node.Name, members)
}

func (w *Walker) members(path string, node *record.CategoryNode) ([]Member, error) {
	switch {
	case node.Functions != nil:
		return w.functions.SelectFunctions(node.Functions.Path, node.Functions.Type, node.Name), nil
	case node.Articles != nil:
		return w.articles.SelectArticles(node.Articles.Path)
	}
	members := make([]Member, 0, len(node.Subcategories))
	for i := range node.Subcategories {
		sub := &node.Subcategories[i]
		members = append(members, Member{Title: sub.Name, Path: ChildPath(path, sub)})
	}
	return members, nil
}

// ChildPath derives the path of a subcategory from its parent's path.
// Article-backed subcategories nest below the parent, function-backed ones
// live at a fixed location and all others share the parent's path.
func ChildPath(parent string, sub *record.CategoryNode) string {
	switch {
	case sub.Functions != nil:
		return FunctionPath(sub.Functions.Type, sub.Functions.Path)
	case sub.Articles != nil:
		return strings.TrimSuffix(parent, "/") + "/" + strings.Trim(sub.Articles.Path, "/")
	}
	return parent
}

// FunctionPath is the category path for functions of ctx stored in folder.
func FunctionPath(ctx record.Context, folder string) string {
	return FunctionsRoot + "/" + string(ctx) + "/" + strings.Trim(folder, "/")
}
