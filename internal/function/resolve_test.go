package function

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

func TestResolveBuildsFunctionModel(t *testing.T) {
	root := t.TempDir()
	rec := filepath.Join(root, "functions", "Cursor", "setCursorAlpha.yaml")
	writeFile(t, filepath.Join(root, "functions", "Cursor", "examples", "alpha.lua"), "setCursorAlpha(128)")

	v := &record.Variants{
		Shared: &record.ContextInfo{
			Name:        "setCursorAlpha",
			Description: "Sets the cursor alpha.",
			Parameters:  params("alpha"),
			Issues:      []record.Issue{{ID: 42, Description: "Resets on reconnect"}},
			Notes:       []string{"Range is 0-255."},
		},
		Client: &record.ContextInfo{
			Name:     "setCursorAlpha",
			Examples: []record.Example{{Path: "examples/alpha.lua"}},
			Disabled: &record.Disabled{Disabled: true, Message: "Use setCursorColor"},
		},
	}

	fn, err := NewResolver(fakeMarkup{}, NewAssetResolver(root, newMemImages(), "function_images")).Resolve(rec, v)
	require.NoError(t, err)

	assert.Equal(t, "setCursorAlpha", fn.Name)
	assert.Equal(t, "Cursor", fn.Folder)
	assert.Equal(t, record.Shared, fn.Context)
	assert.Equal(t, rec, fn.RealPath)
	assert.Equal(t, "/setCursorAlpha/", fn.PathHTML())
	assert.True(t, fn.HasExample)
	assert.True(t, fn.HasIssue)
	assert.True(t, fn.Disabled.Disabled)
	assert.Equal(t, "Use setCursorColor", fn.Disabled.Message)
	assert.Empty(t, v.Client.Name, "repeated name removed from client")

	require.Len(t, fn.Contexts, 2)
	shared := fn.View(record.Shared)
	require.NotNil(t, shared)
	assert.Equal(t, "Shared", shared.Pretty)
	assert.Equal(t, "<p>Sets the cursor alpha.</p>", string(shared.DescriptionHTML))
	require.Len(t, shared.Issues, 1)
	assert.Equal(t, 42, shared.Issues[0].ID)
	assert.Equal(t, "Range is 0-255.", string(shared.Notes[0]))

	client := fn.View(record.Client)
	require.NotNil(t, client)
	require.Len(t, client.Examples, 1)
	assert.Equal(t, 1, client.Examples[0].Number)
	assert.Nil(t, fn.View(record.Server))

	require.NotNil(t, fn.Syntaxes.Single)
	assert.Empty(t, fn.Related)
	assert.Empty(t, fn.Category)
}

func TestResolveDisabledComesFromLastPopulatedContext(t *testing.T) {
	root := t.TempDir()
	v := &record.Variants{
		Shared: &record.ContextInfo{Name: "f", Disabled: &record.Disabled{Disabled: true}},
		Server: &record.ContextInfo{Description: "server side"},
	}
	fn, err := NewResolver(fakeMarkup{}, NewAssetResolver(root, newMemImages(), "function_images")).
		Resolve(filepath.Join(root, "functions", "X", "f.yaml"), v)
	require.NoError(t, err)
	assert.False(t, fn.Disabled.Disabled, "server is populated last and does not disable")
}

func TestResolveModelErrorsCarryFile(t *testing.T) {
	root := t.TempDir()
	rec := filepath.Join(root, "functions", "X", "f.yaml")
	v := &record.Variants{Shared: &record.ContextInfo{Name: "f", Returns: &record.Returns{}}}

	_, err := NewResolver(fakeMarkup{}, NewAssetResolver(root, newMemImages(), "function_images")).Resolve(rec, v)
	require.Error(t, err)
	ce, ok := ferrors.AsClassified(err)
	require.True(t, ok)
	assert.Equal(t, ferrors.CategoryModel, ce.Category())
	file, _ := ce.Context().GetString("file")
	assert.Equal(t, rec, file)
	name, _ := ce.Context().GetString("function")
	assert.Equal(t, "f", name)
}

func TestResolveRequiresName(t *testing.T) {
	root := t.TempDir()
	v := &record.Variants{Client: &record.ContextInfo{Description: "nameless"}}

	_, err := NewResolver(fakeMarkup{}, NewAssetResolver(root, newMemImages(), "function_images")).
		Resolve(filepath.Join(root, "functions", "X", "f.yaml"), v)
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryModel))
}
