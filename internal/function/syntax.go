package function

import (
	"slices"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// IsSplitSyntax reports whether v needs separate client and server syntaxes.
// Without a shared definition a function always has a single syntax. With
// one, the syntax splits when more than one context defines parameters or
// returns, or when a side drops shared parameters via ignore_parameters.
func IsSplitSyntax(v *record.Variants) bool {
	if v.Lookup(record.Shared).IsNone() {
		return false
	}
	var last record.Context
	for _, c := range record.Precedence {
		info, ok := v.Lookup(c).Get()
		if !ok || !definesSignature(info) {
			continue
		}
		if last != "" && last != c {
			return true
		}
		last = c
	}
	for _, side := range record.Sides {
		if info, ok := v.Lookup(side).Get(); ok && len(info.IgnoreParameters) > 0 {
			return true
		}
	}
	return false
}

func definesSignature(info *record.ContextInfo) bool {
	return len(info.Parameters) > 0 || info.Returns != nil
}

// ResolveSyntaxes builds the call signatures of v. Redundant definitions must
// already be removed, otherwise a side repeating the shared parameters is
// treated as defining its own.
func ResolveSyntaxes(v *record.Variants, md Markup) (Syntaxes, error) {
	if !IsSplitSyntax(v) {
		dominant, ok := v.Dominant().Get()
		if !ok {
			return Syntaxes{}, ferrors.ModelError("function has no populated context").Build()
		}
		info := v.Lookup(dominant).Unwrap()
		single, err := buildSyntax(info.Parameters, info.Returns, md)
		if err != nil {
			return Syntaxes{}, err
		}
		return Syntaxes{Single: single}, nil
	}

	shared := v.Shared
	var out Syntaxes
	for _, side := range record.Sides {
		params, returns := shared.Parameters, shared.Returns
		if info := v.Get(side); info != nil {
			if len(info.Parameters) > 0 {
				params = info.Parameters
			}
			if info.Returns != nil {
				returns = info.Returns
			}
			params = withoutIgnored(params, info.IgnoreParameters)
		}
		syntax, err := buildSyntax(params, returns, md)
		if err != nil {
			return Syntaxes{}, err
		}
		if side == record.Client {
			out.Client = syntax
		} else {
			out.Server = syntax
		}
	}
	return out, nil
}

func withoutIgnored(params []record.Parameter, ignored []string) []record.Parameter {
	if len(ignored) == 0 {
		return params
	}
	out := make([]record.Parameter, 0, len(params))
	for _, p := range params {
		if !slices.Contains(ignored, p.Name) {
			out = append(out, p)
		}
	}
	return out
}

func buildSyntax(params []record.Parameter, returns *record.Returns, md Markup) (*Syntax, error) {
	s := &Syntax{}
	for _, p := range params {
		desc, err := md.ToInlineHTML(p.Description)
		if err != nil {
			return nil, renderError(err, "parameter description").WithContext("parameter", p.Name).Build()
		}
		view := ParamView{Name: p.Name, Type: p.Type, DescriptionHTML: desc, Default: p.Default}
		if truthy(p.Default) {
			s.Arguments.Optional = append(s.Arguments.Optional, view)
		} else {
			s.Arguments.Required = append(s.Arguments.Required, view)
		}
	}
	if returns == nil {
		return s, nil
	}
	if len(returns.Values) == 0 {
		return nil, ferrors.ModelError("returns declared without values").Build()
	}
	desc, err := md.ToInlineHTML(returns.Description)
	if err != nil {
		return nil, renderError(err, "returns description").Build()
	}
	s.Returns = ReturnsView{
		ValuesType:      returns.Values[0].Type,
		DescriptionHTML: desc,
		Values:          slices.Clone(returns.Values),
	}
	return s, nil
}

func renderError(err error, what string) *ferrors.ErrorBuilder {
	return ferrors.WrapError(err, ferrors.CategoryRender, "failed to render "+what).Fatal()
}
