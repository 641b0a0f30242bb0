package record

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	ignore "github.com/sabhiram/go-gitignore"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
)

// Discovery finds record files below the repository root.
type Discovery struct {
	root   string
	ignore *ignore.GitIgnore
}

// NewDiscovery creates a Discovery for root. ignoreFile holds gitignore-style
// patterns relative to root; a missing file means nothing is ignored.
func NewDiscovery(root, ignoreFile string) (*Discovery, error) {
	d := &Discovery{root: root}
	if ignoreFile == "" {
		return d, nil
	}
	if _, err := os.Stat(ignoreFile); errors.Is(err, fs.ErrNotExist) {
		return d, nil
	}
	gi, err := ignore.CompileIgnoreFile(ignoreFile)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryConfig, "failed to compile ignore file").
			Fatal().WithContext("file", ignoreFile).Build()
	}
	d.ignore = gi
	return d, nil
}

// Records returns every *.yaml file below dir in lexical walk order. A missing
// dir yields no records.
func (d *Discovery) Records(dir string) ([]string, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		slog.Debug("Record directory not found", logfields.Path(dir))
		return nil, nil
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.ignored(path) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "record directory walk failed").
			Fatal().WithContext("path", dir).Build()
	}
	slog.Debug("Discovered records", logfields.Path(dir), logfields.Count(len(files)))
	return files, nil
}

// Subdirectories lists the immediate subdirectories of dir in lexical order.
func (d *Discovery) Subdirectories(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, ferrors.WrapError(err, ferrors.CategoryReference, "category folder cannot be listed").
			Fatal().WithContext("path", dir).Build()
	}
	var out []string
	for _, e := range entries {
		p := filepath.Join(dir, e.Name())
		if !e.IsDir() || d.ignored(p) {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (d *Discovery) ignored(path string) bool {
	if d.ignore == nil {
		return false
	}
	rel, err := filepath.Rel(d.root, path)
	if err != nil || rel == "." {
		return false
	}
	return d.ignore.MatchesPath(filepath.ToSlash(rel))
}
