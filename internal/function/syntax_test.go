package function

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

func params(names ...string) []record.Parameter {
	out := make([]record.Parameter, 0, len(names))
	for _, n := range names {
		out = append(out, record.Parameter{Name: n, Type: "int", Description: n + " desc"})
	}
	return out
}

func argNames(views []ParamView) []string {
	out := make([]string, 0, len(views))
	for _, v := range views {
		out = append(out, v.Name)
	}
	return out
}

func TestSingleSyntaxWhenOnlySharedIsPopulated(t *testing.T) {
	v := &record.Variants{Shared: &record.ContextInfo{Name: "f", Parameters: params("a", "b")}}

	s, err := ResolveSyntaxes(v, fakeMarkup{})
	require.NoError(t, err)
	require.NotNil(t, s.Single)
	assert.Nil(t, s.Client)
	assert.Nil(t, s.Server)
	assert.False(t, s.IsSplit())
	assert.Equal(t, []string{"a", "b"}, argNames(s.Single.Arguments.Required))
	assert.Equal(t, "a desc", string(s.Single.Arguments.Required[0].DescriptionHTML))
}

func TestSingleSyntaxWithoutShared(t *testing.T) {
	// Without a shared definition a function never splits, even when both
	// sides declare parameters; the dominant context wins.
	v := &record.Variants{
		Client: &record.ContextInfo{Name: "f", Parameters: params("c")},
		Server: &record.ContextInfo{Name: "f", Parameters: params("s"), IgnoreParameters: []string{"x"}},
	}

	s, err := ResolveSyntaxes(v, fakeMarkup{})
	require.NoError(t, err)
	require.NotNil(t, s.Single)
	assert.Nil(t, s.Client)
	assert.Nil(t, s.Server)
	assert.Equal(t, []string{"c"}, argNames(s.Single.Arguments.Required))
}

func TestSplitSyntaxWhenSharedAndClientDefineParameters(t *testing.T) {
	v := &record.Variants{
		Shared: &record.ContextInfo{Name: "f", Parameters: params("a")},
		Client: &record.ContextInfo{Parameters: params("x", "y")},
	}
	require.True(t, IsSplitSyntax(v))

	s, err := ResolveSyntaxes(v, fakeMarkup{})
	require.NoError(t, err)
	assert.Nil(t, s.Single)
	require.NotNil(t, s.Client)
	require.NotNil(t, s.Server)
	assert.True(t, s.IsSplit())
	assert.Equal(t, []string{"x", "y"}, argNames(s.Client.Arguments.Required), "client uses its own parameters")
	assert.Equal(t, []string{"a"}, argNames(s.Server.Arguments.Required), "absent server side inherits shared")
}

func TestSplitSyntaxReturnsFallBackToShared(t *testing.T) {
	shared := &record.Returns{Values: []record.ReturnValue{{Type: "bool"}}}
	v := &record.Variants{
		Shared: &record.ContextInfo{Name: "f", Returns: shared},
		Server: &record.ContextInfo{Returns: &record.Returns{
			Description: "the element",
			Values:      []record.ReturnValue{{Type: "element"}, {Type: "bool"}},
		}},
	}

	s, err := ResolveSyntaxes(v, fakeMarkup{})
	require.NoError(t, err)
	require.True(t, s.IsSplit())
	assert.Equal(t, "bool", s.Client.Returns.ValuesType)
	assert.Equal(t, "element", s.Server.Returns.ValuesType)
	assert.Equal(t, "the element", string(s.Server.Returns.DescriptionHTML))
	assert.Len(t, s.Server.Returns.Values, 2)
}

func TestIgnoreParametersFilter(t *testing.T) {
	v := &record.Variants{
		Shared: &record.ContextInfo{Name: "f", Parameters: params("a", "b", "c")},
		Server: &record.ContextInfo{IgnoreParameters: []string{"b"}},
	}
	require.True(t, IsSplitSyntax(v), "ignore_parameters forces a split")

	s, err := ResolveSyntaxes(v, fakeMarkup{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, argNames(s.Server.Arguments.Required))
	assert.Equal(t, []string{"a", "b", "c"}, argNames(s.Client.Arguments.Required))
}

func TestRequiredOptionalClassification(t *testing.T) {
	v := &record.Variants{Shared: &record.ContextInfo{Name: "f", Parameters: []record.Parameter{
		{Name: "zero", Type: "int", Default: 0},
		{Name: "one", Type: "int", Default: 1},
		{Name: "off", Type: "bool", Default: false},
		{Name: "on", Type: "bool", Default: true},
		{Name: "empty", Type: "string", Default: ""},
		{Name: "text", Type: "string", Default: "hello"},
		{Name: "none", Type: "element"},
	}}}

	s, err := ResolveSyntaxes(v, fakeMarkup{})
	require.NoError(t, err)
	// Falsy defaults are listed as required.
	assert.Equal(t, []string{"zero", "off", "empty", "none"}, argNames(s.Single.Arguments.Required))
	assert.Equal(t, []string{"one", "on", "text"}, argNames(s.Single.Arguments.Optional))
	assert.Equal(t, 0, s.Single.Arguments.Required[0].Default)
}

func TestReturnsWithoutValuesIsModelError(t *testing.T) {
	v := &record.Variants{Shared: &record.ContextInfo{Name: "f", Returns: &record.Returns{Description: "nothing"}}}

	_, err := ResolveSyntaxes(v, fakeMarkup{})
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryModel))
}

func TestRepeatedDefinitionsDoNotSplit(t *testing.T) {
	v := &record.Variants{
		Shared: &record.ContextInfo{Name: "f", Parameters: params("a")},
		Client: &record.ContextInfo{Name: "f", Parameters: params("a"), Description: "client"},
	}
	assert.True(t, IsSplitSyntax(v), "before elimination both contexts define parameters")

	RemoveRepeatedDefinitions(v)
	assert.False(t, IsSplitSyntax(v))
}

func TestTruthy(t *testing.T) {
	cases := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{0, false},
		{0.0, false},
		{"", false},
		{false, false},
		{[]any{}, false},
		{map[string]any{}, false},
		{1, true},
		{-1, true},
		{0.5, true},
		{"0", true},
		{true, true},
		{[]any{1}, true},
		{map[string]any{"k": 1}, true},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, truthy(tc.in), "%#v", tc.in)
	}
}
