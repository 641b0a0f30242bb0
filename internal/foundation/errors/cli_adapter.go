package errors

import (
	"context"
	"log/slog"
)

// CLIErrorAdapter handles error logging and exit code determination for the CLI.
type CLIErrorAdapter struct {
	verbose bool
	logger  *slog.Logger
}

// NewCLIErrorAdapter creates a new CLI error adapter.
func NewCLIErrorAdapter(verbose bool, logger *slog.Logger) *CLIErrorAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIErrorAdapter{
		verbose: verbose,
		logger:  logger,
	}
}

// ExitCodeFor determines the exit code for an error. Any non-nil error maps to
// a non-zero code.
func (a *CLIErrorAdapter) ExitCodeFor(err error) int {
	if err == nil {
		return 0
	}
	classified, ok := AsClassified(err)
	if !ok {
		return 1
	}
	switch classified.Category() {
	case CategoryValidation:
		return 2
	case CategoryReference:
		return 3
	case CategoryModel:
		return 4
	case CategoryConfig:
		return 7
	case CategoryFileSystem, CategoryRender:
		return 11
	case CategoryInternal:
		return 10
	default:
		return 1
	}
}

// Report logs err and returns the exit code the process should terminate with.
func (a *CLIErrorAdapter) Report(err error) int {
	if err == nil {
		return 0
	}
	a.logger.Error("Error occurred during build process")

	classified, ok := AsClassified(err)
	if !ok {
		a.logger.Error("Unclassified error", "error", err)
		return a.ExitCodeFor(err)
	}

	attrs := []slog.Attr{
		slog.String("category", string(classified.Category())),
		slog.String("severity", string(classified.Severity())),
	}
	for k, v := range classified.Context() {
		attrs = append(attrs, slog.Any(k, v))
	}
	if cause := classified.Cause(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}
	msg := classified.Message()
	if a.verbose {
		msg = err.Error()
	}
	a.logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
	return a.ExitCodeFor(err)
}
