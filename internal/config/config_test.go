package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv(EnvPreview, "")
	require.NoError(t, os.Unsetenv(EnvPreview))
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutputDir, "")
	root := t.TempDir()

	cfg, err := Load(root, "")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(root, "functions"), cfg.Paths.Functions)
	assert.Equal(t, filepath.Join(root, "web", "resources"), cfg.Paths.Resources)
	assert.Equal(t, filepath.Join(root, "web", "output", "html"), cfg.Output.Directory)
	assert.Equal(t, "function_images", cfg.Output.ImagesDir)
	assert.Equal(t, filepath.Join(root, "web", "resources", "navigation.yaml"), cfg.NavigationFile())
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.True(t, cfg.Preview, "absent CI_PREVIEW defaults to preview mode")
	assert.Empty(t, cfg.MetricsFile)
}

func TestLoadFromFileWithEnvExpansion(t *testing.T) {
	t.Setenv("WIKI_OUT", "public")
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutputDir, "")
	root := t.TempDir()
	content := `paths:
  functions: defs/functions
output:
  directory: ${WIKI_OUT}
logging:
  level: DEBUG
metrics_file: build.prom
`
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultFileName), []byte(content), 0o600))

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "defs", "functions"), cfg.Paths.Functions)
	assert.Equal(t, filepath.Join(root, "articles"), cfg.Paths.Articles, "unset keys keep defaults")
	assert.Equal(t, filepath.Join(root, "public"), cfg.Output.Directory)
	assert.Equal(t, LogLevelDebug, cfg.Logging.Level)
	assert.Equal(t, filepath.Join(root, "build.prom"), cfg.MetricsFile)
}

func TestLoadExplicitMissingFile(t *testing.T) {
	root := t.TempDir()
	_, err := Load(root, filepath.Join(root, "nope.yaml"))
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoadRejectsOutputAtRoot(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvLogLevel, "")
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, DefaultFileName), []byte("output:\n  directory: .\n"), 0o600))
	_, err := Load(root, "")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestLoadRejectsOutputOverlappingInputs(t *testing.T) {
	t.Setenv(EnvOutputDir, "")
	t.Setenv(EnvLogLevel, "")
	cases := []struct {
		name   string
		output string
		ok     bool
	}{
		{"default layout", "web/output/html", true},
		{"sibling of resources", "web/resources-out", true},
		{"separate directory", "public", true},
		{"repository root", ".", false},
		{"parent of root", "..", false},
		{"functions tree", "functions", false},
		{"inside articles", "articles/html", false},
		{"ancestor of resources", "web", false},
		{"inside resources", "web/resources/site", false},
		{"version file", "VERSION", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := filepath.Join(t.TempDir(), "repo")
			require.NoError(t, os.MkdirAll(root, 0o750))
			cfgFile := "output:\n  directory: " + tc.output + "\n"
			require.NoError(t, os.WriteFile(filepath.Join(root, DefaultFileName), []byte(cfgFile), 0o600))

			cfg, err := Load(root, "")
			if tc.ok {
				require.NoError(t, err)
				assert.Equal(t, filepath.Join(root, tc.output), cfg.Output.Directory)
				return
			}
			require.Error(t, err)
			assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
		})
	}
}

func TestEnvOutputDirAncestorRejected(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "repo")
	require.NoError(t, os.MkdirAll(root, 0o750))
	t.Setenv(EnvLogLevel, "")
	t.Setenv(EnvOutputDir, parent)

	_, err := Load(root, "")
	require.Error(t, err)
	assert.True(t, ferrors.HasCategory(err, ferrors.CategoryConfig))
}

func TestEnvOverrides(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvPreview, "false")
	t.Setenv(EnvLogLevel, "warn")
	t.Setenv(EnvOutputDir, filepath.Join(root, "elsewhere"))

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.False(t, cfg.Preview)
	assert.Equal(t, LogLevelWarn, cfg.Logging.Level)
	assert.Equal(t, filepath.Join(root, "elsewhere"), cfg.Output.Directory)
}

func TestDotEnvDoesNotOverrideProcessEnv(t *testing.T) {
	root := t.TempDir()
	t.Setenv(EnvLogLevel, "error")
	t.Setenv(EnvOutputDir, "")
	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), []byte("WIKIGEN_LOG_LEVEL=debug\n"), 0o600))

	cfg, err := Load(root, "")
	require.NoError(t, err)
	assert.Equal(t, LogLevelError, cfg.Logging.Level)
}

func TestPreviewFromEnv(t *testing.T) {
	cases := []struct {
		raw  string
		set  bool
		want bool
	}{
		{"", false, true},
		{"", true, true},
		{"1", true, true},
		{"true", true, true},
		{"0", true, false},
		{"false", true, false},
		{"FALSE", true, false},
		{"off", true, false},
		{"banana", true, true},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, PreviewFromEnv(c.raw, c.set), "raw=%q set=%t", c.raw, c.set)
	}
}

func TestLogLevelMapping(t *testing.T) {
	assert.Equal(t, LogLevelWarn, NormalizeLogLevel(" Warning "))
	assert.Equal(t, LogLevelInfo, NormalizeLogLevel("chatty"))
	assert.Equal(t, "DEBUG", LogLevelDebug.SlogLevel().String())
	assert.Equal(t, "ERROR", LogLevelError.SlogLevel().String())
}
