package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
)

// DefaultFileName is looked up in the repository root when no explicit config path is given.
const DefaultFileName = "wikigen.yaml"

// Config represents the builder configuration. Paths are relative to Root
// until Load resolves them.
type Config struct {
	Root        string        `yaml:"-"`
	Paths       PathsConfig   `yaml:"paths"`
	Output      OutputConfig  `yaml:"output"`
	Logging     LoggingConfig `yaml:"logging"`
	MetricsFile string        `yaml:"metrics_file,omitempty"`
	// Preview toggles the preview banner in rendered pages. It is driven by the
	// CI_PREVIEW environment variable, not the YAML file.
	Preview bool `yaml:"-"`
}

// PathsConfig locates the input trees.
type PathsConfig struct {
	Functions  string `yaml:"functions"`
	Articles   string `yaml:"articles"`
	Elements   string `yaml:"elements"`
	Resources  string `yaml:"resources"`
	Version    string `yaml:"version"`
	IgnoreFile string `yaml:"ignore_file"`
}

// OutputConfig locates the generated site.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	ImagesDir string `yaml:"images_dir"`
}

// LoggingConfig holds logging defaults; CLI flags and env vars take precedence.
type LoggingConfig struct {
	Level LogLevel `yaml:"level"`
}

// Default returns the configuration matching the conventional repository layout.
func Default(root string) *Config {
	return &Config{
		Root: root,
		Paths: PathsConfig{
			Functions:  "functions",
			Articles:   "articles",
			Elements:   "elements",
			Resources:  filepath.Join("web", "resources"),
			Version:    "VERSION",
			IgnoreFile: ".wikiignore",
		},
		Output: OutputConfig{
			Directory: filepath.Join("web", "output", "html"),
			ImagesDir: "function_images",
		},
		Logging: LoggingConfig{Level: LogLevelInfo},
		Preview: true,
	}
}

// Load builds the configuration for the repository at root. configPath may be
// empty, in which case root/wikigen.yaml is used when it exists and defaults
// apply otherwise. An explicitly named file that does not exist is an error.
func Load(root, configPath string) (*Config, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "resolve repository root").
			Fatal().WithContext("path", root).Build()
	}

	loadEnvFiles(absRoot)

	cfg := Default(absRoot)
	explicit := configPath != ""
	if !explicit {
		configPath = filepath.Join(absRoot, DefaultFileName)
	}

	// #nosec G304 -- configuration path is operator supplied.
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to unmarshal config").
				Fatal().WithContext("file", configPath).Build()
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults only
	default:
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to read config file").
			Fatal().WithContext("file", configPath).Build()
	}

	cfg.Logging.Level = NormalizeLogLevel(string(cfg.Logging.Level))
	applyEnvOverrides(cfg)
	cfg.resolvePaths()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the resolved configuration for obviously unusable values.
func (c *Config) Validate() error {
	if c.Output.Directory == "" {
		return ferrors.ConfigError("output directory must not be empty").Build()
	}
	if within(c.Output.Directory, c.Root) {
		return ferrors.ConfigError("output directory must not be the repository root or one of its ancestors").
			WithContext("path", c.Output.Directory).Build()
	}
	for _, input := range c.inputPaths() {
		if input.path == "" {
			continue
		}
		if within(c.Output.Directory, input.path) || within(input.path, c.Output.Directory) {
			return ferrors.ConfigError("output directory overlaps an input path").
				WithContext("path", c.Output.Directory).
				WithContext("input", input.name).
				WithContext("input_path", input.path).Build()
		}
	}
	if c.Output.ImagesDir == "" || filepath.IsAbs(c.Output.ImagesDir) || filepath.Base(c.Output.ImagesDir) != c.Output.ImagesDir {
		return ferrors.ConfigError("images_dir must be a single relative directory name").
			WithContext("path", c.Output.ImagesDir).Build()
	}
	return nil
}

type inputPath struct {
	name string
	path string
}

// inputPaths lists the paths a build reads from. Clearing the output must
// never touch them.
func (c *Config) inputPaths() []inputPath {
	return []inputPath{
		{"functions", c.Paths.Functions},
		{"articles", c.Paths.Articles},
		{"elements", c.Paths.Elements},
		{"resources", c.Paths.Resources},
		{"version", c.Paths.Version},
		{"ignore_file", c.Paths.IgnoreFile},
	}
}

// within reports whether path equals dir or lies below it.
func within(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil {
		return false
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)))
}

// resolvePaths makes every configured path absolute against Root.
func (c *Config) resolvePaths() {
	abs := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}
		return filepath.Join(c.Root, p)
	}
	c.Paths.Functions = abs(c.Paths.Functions)
	c.Paths.Articles = abs(c.Paths.Articles)
	c.Paths.Elements = abs(c.Paths.Elements)
	c.Paths.Resources = abs(c.Paths.Resources)
	c.Paths.Version = abs(c.Paths.Version)
	c.Paths.IgnoreFile = abs(c.Paths.IgnoreFile)
	c.Output.Directory = abs(c.Output.Directory)
	if c.MetricsFile != "" {
		c.MetricsFile = abs(c.MetricsFile)
	}
}

// NavigationFile is the declarative navigation/category tree.
func (c *Config) NavigationFile() string {
	return filepath.Join(c.Paths.Resources, "navigation.yaml")
}

// String renders a compact summary for debug logging.
func (c *Config) String() string {
	return fmt.Sprintf("root=%s output=%s preview=%t", c.Root, c.Output.Directory, c.Preview)
}
