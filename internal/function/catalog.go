package function

import (
	"git.home.luguber.info/inful/wikigen/internal/category"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// Catalog is the ordered set of resolved functions of one build.
type Catalog struct {
	items []*Function
}

// NewCatalog creates an empty Catalog.
func NewCatalog() *Catalog {
	return &Catalog{}
}

// Add appends fn. Load order is preserved.
func (c *Catalog) Add(fn *Function) {
	c.items = append(c.items, fn)
}

// All returns the functions in load order.
func (c *Catalog) All() []*Function {
	return c.items
}

// Len returns the number of functions.
func (c *Catalog) Len() int { return len(c.items) }

// SelectFunctions implements category.FunctionSelector. A function selected
// by several categories keeps the last one.
func (c *Catalog) SelectFunctions(folder string, ctx record.Context, categoryName string) []category.Member {
	var members []category.Member
	for _, fn := range c.items {
		if fn.Context != ctx || fn.Folder != folder {
			continue
		}
		fn.Category = categoryName
		members = append(members, category.Member{Title: fn.Name, Path: fn.PathHTML()})
	}
	return members
}
