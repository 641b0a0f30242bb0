package function

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	ferrors "git.home.luguber.info/inful/wikigen/internal/foundation/errors"
	"git.home.luguber.info/inful/wikigen/internal/logfields"
	"git.home.luguber.info/inful/wikigen/internal/record"
)

// ImageStore receives preview images into one flat directory.
type ImageStore interface {
	// CopyOnce copies src into the store under name unless an entry with that
	// name exists already, and reports whether a copy was made.
	CopyOnce(src, name string) (bool, error)
}

// AssetStats counts preview image handling over a build.
type AssetStats struct {
	ImagesCopied int
	// Reused lists image references whose base name was already stored, so
	// the earlier file is served instead.
	Reused []string
}

// AssetResolver resolves example and preview image references of function records.
type AssetResolver struct {
	root      string
	images    ImageStore
	imagesURL string
	stats     AssetStats
}

// NewAssetResolver creates a resolver for records below repository root.
// Preview images are handed to images and linked below imagesURL.
func NewAssetResolver(root string, images ImageStore, imagesURL string) *AssetResolver {
	return &AssetResolver{
		root:      root,
		images:    images,
		imagesURL: "/" + strings.Trim(imagesURL, "/"),
	}
}

// Stats returns the image counters accumulated so far.
func (r *AssetResolver) Stats() AssetStats {
	out := r.stats
	out.Reused = append([]string(nil), r.stats.Reused...)
	return out
}

// ResolvePath resolves a reference written in a record. A leading slash makes
// it relative to the repository root, anything else is relative to recordDir.
func ResolvePath(root, recordDir, ref string) string {
	if strings.HasPrefix(ref, "/") {
		return filepath.Join(root, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
	}
	return filepath.Join(recordDir, filepath.FromSlash(ref))
}

// Examples reads every example of v in context precedence order. Numbering
// starts at 1 and continues across contexts.
func (r *AssetResolver) Examples(recordPath string, v *record.Variants, md Markup) (map[record.Context][]ExampleView, error) {
	out := make(map[record.Context][]ExampleView)
	dir := filepath.Dir(recordPath)
	number := 1
	for _, c := range v.Populated() {
		for _, ex := range v.Get(c).Examples {
			resolved := ResolvePath(r.root, dir, ex.Path)
			code, err := os.ReadFile(resolved)
			if err != nil {
				return nil, missingReference(err, "example file not found", recordPath, resolved)
			}
			desc, err := md.ToHTML(ex.Description)
			if err != nil {
				return nil, renderError(err, "example description").WithContext("file", recordPath).Build()
			}
			out[c] = append(out[c], ExampleView{
				Number:          number,
				Path:            ex.Path,
				Description:     ex.Description,
				DescriptionHTML: desc,
				Code:            string(code),
			})
			number++
		}
	}
	return out, nil
}

// PreviewImages copies every preview image of v into the image store. An
// image whose base name is already stored is not copied again.
func (r *AssetResolver) PreviewImages(recordPath string, v *record.Variants, md Markup) (map[record.Context][]PreviewImageView, error) {
	out := make(map[record.Context][]PreviewImageView)
	dir := filepath.Dir(recordPath)
	for _, c := range v.Populated() {
		for _, img := range v.Get(c).PreviewImages {
			resolved := ResolvePath(r.root, dir, img.Path)
			if _, err := os.Stat(resolved); err != nil {
				return nil, missingReference(err, "preview image not found", recordPath, resolved)
			}
			base := filepath.Base(resolved)
			copied, err := r.images.CopyOnce(resolved, base)
			if err != nil {
				return nil, ferrors.WrapError(err, ferrors.CategoryFileSystem, "failed to copy preview image").
					Fatal().WithContext("file", recordPath).WithContext("path", resolved).Build()
			}
			if copied {
				r.stats.ImagesCopied++
				slog.Info("Created function preview image", logfields.Path(path.Join(r.imagesURL, base)))
			} else {
				r.stats.Reused = append(r.stats.Reused, resolved)
				slog.Debug("Preview image already present, reusing",
					logfields.Path(resolved), logfields.File(recordPath), logfields.Reason("duplicate_base_name"))
			}
			desc, err := md.ToInlineHTML(img.Description)
			if err != nil {
				return nil, renderError(err, "preview image description").WithContext("file", recordPath).Build()
			}
			out[c] = append(out[c], PreviewImageView{
				RealPath:        resolved,
				PathHTML:        path.Join(r.imagesURL, base),
				Description:     img.Description,
				DescriptionHTML: desc,
			})
		}
	}
	return out, nil
}

func missingReference(err error, msg, recordPath, resolved string) error {
	category := ferrors.CategoryFileSystem
	if errors.Is(err, fs.ErrNotExist) {
		category = ferrors.CategoryReference
	}
	return ferrors.WrapError(err, category, msg).Fatal().
		WithContext("file", recordPath).WithContext("path", resolved).Build()
}
