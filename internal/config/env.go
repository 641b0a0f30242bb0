package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	// EnvPreview toggles the preview banner. Unset means preview mode.
	EnvPreview = "CI_PREVIEW"
	// EnvLogLevel overrides the configured log level.
	EnvLogLevel = "WIKIGEN_LOG_LEVEL"
	// EnvOutputDir overrides the output directory.
	EnvOutputDir = "WIKIGEN_OUTPUT_DIR"
)

// loadEnvFiles loads the first of .env/.env.local found in root. Existing
// process environment variables are not overwritten.
func loadEnvFiles(root string) {
	for _, name := range []string{".env", ".env.local"} {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Failed to load environment file", "path", path, "error", err)
			continue
		}
		slog.Debug("Loaded environment variables", "path", path)
		return
	}
}

func applyEnvOverrides(cfg *Config) {
	if raw, set := os.LookupEnv(EnvPreview); set {
		cfg.Preview = PreviewFromEnv(raw, set)
	}
	if raw := os.Getenv(EnvLogLevel); raw != "" {
		cfg.Logging.Level = NormalizeLogLevel(raw)
	}
	if dir := os.Getenv(EnvOutputDir); dir != "" {
		cfg.Output.Directory = dir
	}
}

// PreviewFromEnv interprets the preview flag. Absence and unparseable values
// keep preview mode on; only an explicit false-like boolean disables it.
func PreviewFromEnv(raw string, set bool) bool {
	if !set {
		return true
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return true
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		switch strings.ToLower(raw) {
		case "no", "off":
			return false
		}
		return true
	}
	return v
}
