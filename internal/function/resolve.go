package function

import (
	"log/slog"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// Resolver builds Function models from loaded records.
type Resolver struct {
	markup Markup
	assets *AssetResolver
}

// NewResolver creates a Resolver.
func NewResolver(markup Markup, assets *AssetResolver) *Resolver {
	return &Resolver{markup: markup, assets: assets}
}

// Resolve builds the model of the record loaded from recordPath. v is
// mutated: definitions repeating the shared one are removed first.
func (r *Resolver) Resolve(recordPath string, v *record.Variants) (*Function, error) {
	RemoveRepeatedDefinitions(v)

	dominant, ok := v.Dominant().Get()
	if !ok {
		return nil, ferrors.ModelError("function has no populated context").
			WithContext("file", recordPath).Build()
	}
	name := v.Lookup(dominant).Unwrap().Name
	if name == "" {
		return nil, ferrors.ModelError("function has no name").
			WithContext("file", recordPath).WithContext("context", string(dominant)).Build()
	}

	fn := &Function{
		RealPath: recordPath,
		Folder:   filepath.Base(filepath.Dir(recordPath)),
		Name:     name,
		Context:  dominant,
		Variants: v,
	}

	examples, err := r.assets.Examples(recordPath, v, r.markup)
	if err != nil {
		return nil, err
	}
	images, err := r.assets.PreviewImages(recordPath, v, r.markup)
	if err != nil {
		return nil, err
	}

	for _, c := range v.Populated() {
		info := v.Get(c)
		view, err := r.contextView(c, info)
		if err != nil {
			return nil, withFunction(err, recordPath, name)
		}
		view.Examples = examples[c]
		view.PreviewImages = images[c]
		fn.Contexts = append(fn.Contexts, view)

		fn.HasExample = fn.HasExample || len(view.Examples) > 0
		fn.HasIssue = fn.HasIssue || len(view.Issues) > 0
		// The last populated context decides, including one that says nothing.
		fn.Disabled = record.Disabled{}
		if info.Disabled != nil {
			fn.Disabled = *info.Disabled
		}
	}

	syntaxes, err := ResolveSyntaxes(v, r.markup)
	if err != nil {
		return nil, withFunction(err, recordPath, name)
	}
	fn.Syntaxes = syntaxes

	slog.Debug("Resolved function",
		logfields.Function(name),
		logfields.Context(string(dominant)),
		logfields.File(recordPath),
		slog.Bool("split_syntax", syntaxes.IsSplit()))
	return fn, nil
}

func (r *Resolver) contextView(c record.Context, info *record.ContextInfo) (*ContextView, error) {
	view := &ContextView{Context: c, Pretty: c.Pretty()}
	var err error
	if view.DescriptionHTML, err = r.markup.ToHTML(info.Description); err != nil {
		return nil, renderError(err, "description").Build()
	}
	for _, issue := range info.Issues {
		desc, err := r.markup.ToInlineHTML(issue.Description)
		if err != nil {
			return nil, renderError(err, "issue description").Build()
		}
		view.Issues = append(view.Issues, IssueView{ID: issue.ID, DescriptionHTML: desc})
	}
	for _, note := range info.Notes {
		html, err := r.markup.ToInlineHTML(note)
		if err != nil {
			return nil, renderError(err, "note").Build()
		}
		view.Notes = append(view.Notes, html)
	}
	return view, nil
}

// withFunction attaches the record location to classified errors raised
// while resolving one function.
func withFunction(err error, recordPath, name string) error {
	ce, ok := ferrors.AsClassified(err)
	if !ok {
		return err
	}
	if _, set := ce.Context().Get("file"); set {
		return err
	}
	b := ferrors.WrapError(ce.Cause(), ce.Category(), ce.Message()).WithSeverity(ce.Severity())
	for k, v := range ce.Context() {
		b = b.WithContext(k, v)
	}
	return b.WithContext("file", recordPath).WithContext("function", name).Build()
}
