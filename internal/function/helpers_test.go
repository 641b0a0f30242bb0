package function

import (
	"html/template"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeMarkup wraps block text in a paragraph and passes inline text through.
type fakeMarkup struct{}

func (fakeMarkup) ToHTML(src string) (template.HTML, error) {
	if src == "" {
		return "", nil
	}
	return template.HTML("<p>" + src + "</p>"), nil
}

func (fakeMarkup) ToInlineHTML(src string) (template.HTML, error) {
	return template.HTML(src), nil
}

// memImages is an in-memory ImageStore.
type memImages struct {
	stored map[string]string
}

func newMemImages() *memImages { return &memImages{stored: map[string]string{}} }

func (m *memImages) CopyOnce(src, name string) (bool, error) {
	if _, ok := m.stored[name]; ok {
		return false, nil
	}
	m.stored[name] = src
	return true, nil
}

func writeFile(t *testing.T, path, body string) string {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}
