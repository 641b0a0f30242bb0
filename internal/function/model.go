// Package function turns validated function records into the resolved model
// used by page templates: deduplicated variants, syntaxes, inlined examples
// and copied preview images.
package function

import (
	"html/template"

	"git.home.luguber.info/inful/wikigen/internal/category"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// Markup renders authored text. Block mode is used for long-form
// descriptions, inline mode for text embedded in lists and tables.
type Markup interface {
	ToHTML(src string) (template.HTML, error)
	ToInlineHTML(src string) (template.HTML, error)
}

// Function is the resolved model of one function record. It is created by
// Resolver.Resolve, completed by the category walker (Category) and the
// cross-reference pass (Related), and read-only afterwards.
type Function struct {
	// RealPath is the record file the function was loaded from.
	RealPath string
	// Folder is the name of the directory holding the record.
	Folder string
	Name   string
	// Context is the dominant (first populated) context.
	Context  record.Context
	Variants *record.Variants

	Contexts   []*ContextView
	HasExample bool
	HasIssue   bool
	Disabled   record.Disabled
	Syntaxes   Syntaxes

	Category string
	Related  []category.Related
}

// PathHTML is the site path of the function page.
func (f *Function) PathHTML() string {
	return "/" + f.Name + "/"
}

// View returns the rendered view of context c, or nil when c is not populated.
func (f *Function) View(c record.Context) *ContextView {
	for _, v := range f.Contexts {
		if v.Context == c {
			return v
		}
	}
	return nil
}

// ContextView is the rendered content of one populated context.
type ContextView struct {
	Context         record.Context
	Pretty          string
	DescriptionHTML template.HTML
	Examples        []ExampleView
	Issues          []IssueView
	Notes           []template.HTML
	PreviewImages   []PreviewImageView
}

// ExampleView is an example with its source inlined. Number is unique across
// all contexts of a function.
type ExampleView struct {
	Number          int
	Path            string
	Description     string
	DescriptionHTML template.HTML
	Code            string
}

// IssueView is a rendered issue reference.
type IssueView struct {
	ID              int
	DescriptionHTML template.HTML
}

// PreviewImageView is a preview image after it was copied to the image directory.
type PreviewImageView struct {
	RealPath        string
	PathHTML        string
	Description     string
	DescriptionHTML template.HTML
}

// Syntaxes holds either one unified syntax or a client/server pair.
type Syntaxes struct {
	Single *Syntax
	Client *Syntax
	Server *Syntax
}

// IsSplit reports whether the function documents separate client and server syntaxes.
func (s Syntaxes) IsSplit() bool {
	return s.Single == nil && (s.Client != nil || s.Server != nil)
}

// Syntax is one call signature.
type Syntax struct {
	Arguments Arguments
	Returns   ReturnsView
}

// Arguments splits parameters by whether callers may omit them.
type Arguments struct {
	Required []ParamView
	Optional []ParamView
}

// ParamView is a rendered parameter.
type ParamView struct {
	Name            string
	Type            string
	DescriptionHTML template.HTML
	Default         any
}

// ReturnsView describes returned values. ValuesType is the type of the first
// value and is empty when nothing is returned.
type ReturnsView struct {
	ValuesType      string
	DescriptionHTML template.HTML
	Values          []record.ReturnValue
}
