package errors

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCLIErrorAdapter_ExitCodeFor(t *testing.T) {
	adapter := NewCLIErrorAdapter(false, slog.Default())

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"nil error", nil, 0},
		{"validation", ValidationError("bad schema").Build(), 2},
		{"reference", ReferenceError("missing example").Build(), 3},
		{"model", ModelError("no variant").Build(), 4},
		{"config", ConfigError("bad config").Build(), 7},
		{"filesystem", FileSystemError("write failed").Build(), 11},
		{"render", RenderError("template failed").Build(), 11},
		{"internal", InternalError("bug").Build(), 10},
		{"unclassified", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, adapter.ExitCodeFor(tt.err))
		})
	}
}

func TestCLIErrorAdapter_Report(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	adapter := NewCLIErrorAdapter(false, logger)

	code := adapter.Report(ReferenceError("preview image not found").WithContext("path", "img/a.png").Build())

	assert.Equal(t, 3, code)
	out := buf.String()
	assert.Contains(t, out, "Error occurred during build process")
	assert.Contains(t, out, "preview image not found")
	assert.Contains(t, out, "category=reference")
	assert.Contains(t, out, "path=img/a.png")
	assert.Equal(t, 0, adapter.Report(nil))
}
