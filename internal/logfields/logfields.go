package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyBuildID    = "build_id"
	KeyStage      = "stage"
	KeyDurationMS = "duration_ms"
	KeyFile       = "file"
	KeyPath       = "path"
	KeyFunction   = "function"
	KeyContext    = "context"
	KeyCategory   = "category"
	KeyArticle    = "article"
	KeyElement    = "element"
	KeyTag        = "tag"
	KeyReason     = "reason"
	KeyCount      = "count"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func BuildID(id string) slog.Attr      { return slog.String(KeyBuildID, id) }
func Stage(name string) slog.Attr      { return slog.String(KeyStage, name) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func File(f string) slog.Attr          { return slog.String(KeyFile, f) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Function(name string) slog.Attr   { return slog.String(KeyFunction, name) }
func Context(tag string) slog.Attr     { return slog.String(KeyContext, tag) }
func Category(name string) slog.Attr   { return slog.String(KeyCategory, name) }
func Article(name string) slog.Attr    { return slog.String(KeyArticle, name) }
func Element(name string) slog.Attr    { return slog.String(KeyElement, name) }
func Tag(tag string) slog.Attr         { return slog.String(KeyTag, tag) }
func Reason(r string) slog.Attr        { return slog.String(KeyReason, r) }
func Count(n int) slog.Attr            { return slog.Int(KeyCount, n) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
