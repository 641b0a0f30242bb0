package version

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if BuildTime == "" || GitCommit == "" {
		t.Error("build info should be initialized")
	}
	assert.True(t, strings.HasPrefix(String(), "wikigen "))
}

func TestReadWikiVersion(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "VERSION")
	require.NoError(t, os.WriteFile(path, []byte("1.6.0\n"), 0o600))

	v, err := ReadWikiVersion(path)
	require.NoError(t, err)
	assert.Equal(t, "1.6.0", v)

	_, err = ReadWikiVersion(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
