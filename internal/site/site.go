// Package site writes the generated output tree.
package site

import (
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
)

const indexFile = "index.html"

// Writer writes pages and files below an output directory.
type Writer struct {
	root string
}

// NewWriter creates a Writer for the output directory root.
func NewWriter(root string) *Writer {
	return &Writer{root: root}
}

// Resolve maps a site path to a location below the output directory. Paths
// cannot escape the output directory.
func (w *Writer) Resolve(sitePath string) string {
	return filepath.Join(w.root, filepath.FromSlash(path.Clean("/"+sitePath)))
}

// WritePage writes page as the index.html of sitePath ("/" is the output
// root) and returns the file written.
func (w *Writer) WritePage(sitePath string, page []byte) (string, error) {
	return w.WriteFile(path.Join(sitePath, indexFile), page)
}

// WriteFile writes data at sitePath, creating parent directories.
func (w *Writer) WriteFile(sitePath string, data []byte) (string, error) {
	target := w.Resolve(sitePath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return "", fsError(err, "failed to create output directory", filepath.Dir(target))
	}
	// #nosec G306 -- generated site content is world readable.
	if err := os.WriteFile(target, data, 0o644); err != nil {
		return "", fsError(err, "failed to write output file", target)
	}
	return target, nil
}

// CopyFile copies src to sitePath.
func (w *Writer) CopyFile(src, sitePath string) error {
	target := w.Resolve(sitePath)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fsError(err, "failed to create output directory", filepath.Dir(target))
	}
	return copyFile(src, target)
}

// CopyDir copies the tree below src to sitePath.
func (w *Writer) CopyDir(src, sitePath string) error {
	target := w.Resolve(sitePath)
	return filepath.WalkDir(src, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fsError(err, "failed to walk asset directory", p)
		}
		rel, err := filepath.Rel(src, p)
		if err != nil {
			return fsError(err, "failed to relativize asset path", p)
		}
		dst := filepath.Join(target, rel)
		if d.IsDir() {
			if err := os.MkdirAll(dst, 0o755); err != nil {
				return fsError(err, "failed to create output directory", dst)
			}
			return nil
		}
		return copyFile(p, dst)
	})
}

// ImageDir is a flat directory of preview images keyed by base name.
type ImageDir struct {
	dir string
}

// NewImageDir creates an ImageDir for sitePath below the output directory.
func (w *Writer) NewImageDir(sitePath string) *ImageDir {
	return &ImageDir{dir: w.Resolve(sitePath)}
}

// CopyOnce copies src to name unless name already exists. The first image
// stored under a base name wins.
func (d *ImageDir) CopyOnce(src, name string) (bool, error) {
	target := filepath.Join(d.dir, filepath.Base(name))
	if _, err := os.Stat(target); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, fsError(err, "failed to stat image", target)
	}
	if err := os.MkdirAll(d.dir, 0o755); err != nil {
		return false, fsError(err, "failed to create image directory", d.dir)
	}
	if err := copyFile(src, target); err != nil {
		return false, err
	}
	return true, nil
}

// Clear removes dir and everything below it. It reports whether dir existed.
func Clear(dir string) (bool, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		slog.Info("Output directory does not exist", logfields.Path(dir))
		return false, nil
	}
	if err := os.RemoveAll(dir); err != nil {
		return true, fsError(err, "failed to delete output directory", dir)
	}
	slog.Info("Deleted output directory", logfields.Path(dir))
	return true, nil
}

func copyFile(src, dst string) error {
	// #nosec G304 -- src comes from repository records and resources.
	in, err := os.Open(src)
	if err != nil {
		return fsError(err, "failed to open source file", src)
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return fsError(err, "failed to create output file", dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fsError(err, "failed to copy file", dst)
	}
	if err := out.Close(); err != nil {
		return fsError(err, "failed to close output file", dst)
	}
	return nil
}

func fsError(err error, msg, p string) error {
	return ferrors.WrapError(err, ferrors.CategoryFileSystem, msg).Fatal().WithContext("path", p).Build()
}
