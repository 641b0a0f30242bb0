package builder

import (
	"time"

	"git.home.luguber.info/inful/wikigen/internal/category"
	"git.home.luguber.info/inful/wikigen/internal/config"
	"git.home.luguber.info/inful/wikigen/internal/content"
	"git.home.luguber.info/inful/wikigen/internal/function"
	"git.home.luguber.info/inful/wikigen/internal/markdown"
	"git.home.luguber.info/inful/wikigen/internal/record"
	"git.home.luguber.info/inful/wikigen/internal/render"
	"git.home.luguber.info/inful/wikigen/internal/site"
)

// functionRecord is a loaded function record awaiting resolution.
type functionRecord struct {
	path     string
	variants *record.Variants
}

// Session is the state of one build. Each stage writes only its own part:
// loading fills the records, resolution the catalog, the walk the index and
// the relation pass the functions' related lists.
type Session struct {
	ID     string
	Config *config.Config
	Report *BuildReport
	Now    time.Time

	records   *record.Loader
	discovery *record.Discovery
	markup    *markdown.Renderer
	pages     *render.Renderer
	writer    *site.Writer
	assets    *function.AssetResolver

	functionRecords []functionRecord
	Functions       *function.Catalog
	Articles        *content.Articles
	Elements        []*content.Element
	Navigation      []record.NavigationEntry
	Index           *category.Index
	WikiVersion     string
}

// layout returns the page frame for a page titled title.
func (s *Session) layout(title string) render.Layout {
	return render.Layout{
		WikiVersion: s.WikiVersion,
		PreviewMode: s.Config.Preview,
		Year:        s.Now.Year(),
		Title:       title,
		Navigation:  s.Navigation,
	}
}
