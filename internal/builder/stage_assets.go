package builder

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"git.home.luguber.info/inful/wikigen/internal/logfields"
)

// Static resources copied verbatim into the output root.
var (
	assetFiles   = []string{"favicon.ico", "_redirects"}
	assetFolders = []string{"assets"}
)

// stageCopyAssets copies static resources. Missing resources are skipped
// with a warning.
func stageCopyAssets(_ context.Context, s *Session) error {
	res := s.Config.Paths.Resources
	for _, name := range assetFiles {
		src := filepath.Join(res, name)
		if !exists(src) {
			slog.Warn("Static file not found, skipping", logfields.Path(src))
			continue
		}
		if err := s.writer.CopyFile(src, "/"+name); err != nil {
			return err
		}
		slog.Info("Copied file", logfields.File(name))
	}
	for _, name := range assetFolders {
		src := filepath.Join(res, name)
		if !exists(src) {
			slog.Warn("Static folder not found, skipping", logfields.Path(src))
			continue
		}
		if err := s.writer.CopyDir(src, "/"+name); err != nil {
			return err
		}
		slog.Info("Copied folder", logfields.Path(name))
	}
	return nil
}

func exists(p string) bool {
	_, err := os.Stat(p)
	return !errors.Is(err, fs.ErrNotExist)
}
