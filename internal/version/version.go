package version

import (
	"fmt"
	"os"
	"strings"
)

// Version is the wikigen tool version, set via build-time ldflags:
// go build -ldflags "-X git.home.luguber.info/inful/wikigen/internal/version.Version=v1.0.0".
var Version = "unknown"

// Build metadata, also set via ldflags.
var (
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String formats the tool version for --version output.
func String() string {
	return fmt.Sprintf("wikigen %s (commit %s, built %s)", Version, GitCommit, BuildTime)
}

// ReadWikiVersion reads the documented API version from a VERSION file.
// Surrounding whitespace is trimmed.
func ReadWikiVersion(path string) (string, error) {
	// #nosec G304 -- path comes from the repository layout configuration.
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read wiki version: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}
