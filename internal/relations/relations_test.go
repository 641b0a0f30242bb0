package relations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/wikigen/internal/category"
	"git.home.luguber.info/inful/wikigen/internal/function"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

func testIndex() *category.Index {
	idx := category.NewIndex()
	idx.InsertOrReplace("Element", []category.Member{{Title: "createElement", Path: "/createElement/"}})
	idx.InsertOrReplace("Cursor functions", []category.Member{{Title: "showCursor", Path: "/showCursor/"}})
	idx.InsertOrReplace("Empty", nil)
	return idx
}

func TestResolveTag(t *testing.T) {
	idx := testIndex()
	cases := []struct {
		tag  string
		want Status
	}{
		{"category:Element", Resolved},
		{"category:Empty", Resolved},
		{"function:foo", SkippedUnsupportedKind},
		{"category", SkippedMalformed},
		{"category:a:b", SkippedMalformed},
		{"category:Nope", SkippedUnknownCategory},
	}
	for _, tc := range cases {
		t.Run(tc.tag, func(t *testing.T) {
			res := ResolveTag(tc.tag, idx)
			assert.Equal(t, tc.want, res.Status)
			assert.Equal(t, tc.tag, res.Tag)
		})
	}

	res := ResolveTag("category:Element", idx)
	assert.Equal(t, category.Related{
		Category: "Element",
		Members:  []category.Member{{Title: "createElement", Path: "/createElement/"}},
	}, res.Related)
}

func TestResolveOrdersCategoryThenSeeAlso(t *testing.T) {
	fn := &function.Function{
		Name:     "showCursor",
		Category: "Cursor functions",
		Variants: &record.Variants{
			Shared: &record.ContextInfo{Name: "showCursor", SeeAlso: []string{"category:Element", "function:isCursorShowing"}},
			Client: &record.ContextInfo{SeeAlso: []string{"category", "category:Empty"}},
			Server: &record.ContextInfo{SeeAlso: []string{"category:Missing", "category:Cursor functions"}},
		},
	}

	report := Resolve([]*function.Function{fn}, testIndex())

	names := make([]string, 0, len(fn.Related))
	for _, r := range fn.Related {
		names = append(names, r.Category)
	}
	assert.Equal(t, []string{"Cursor functions", "Element", "Empty", "Cursor functions"}, names)

	require.Len(t, report.Skipped, 3)
	assert.Equal(t, "showCursor", report.Skipped[0].Function)
	assert.Equal(t, SkippedUnsupportedKind, report.Skipped[0].Resolution.Status)
	assert.Equal(t, SkippedMalformed, report.Skipped[1].Resolution.Status)
	assert.Equal(t, SkippedUnknownCategory, report.Skipped[2].Resolution.Status)
}

func TestResolveWithoutCategoryOrTags(t *testing.T) {
	fn := &function.Function{Name: "f", Variants: &record.Variants{Client: &record.ContextInfo{Name: "f"}}}
	report := Resolve([]*function.Function{fn}, testIndex())
	assert.Empty(t, fn.Related)
	assert.Empty(t, report.Skipped)
}

func TestResolveIsRepeatable(t *testing.T) {
	fn := &function.Function{
		Name:     "f",
		Category: "Element",
		Variants: &record.Variants{Shared: &record.ContextInfo{Name: "f", SeeAlso: []string{"category:Empty"}}},
	}
	idx := testIndex()
	Resolve([]*function.Function{fn}, idx)
	Resolve([]*function.Function{fn}, idx)
	assert.Len(t, fn.Related, 2)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "resolved", Resolved.String())
	assert.Equal(t, "unknown_category", SkippedUnknownCategory.String())
	assert.Equal(t, "unknown", Status(99).String())
}
