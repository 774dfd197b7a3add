package glyph

import (
	"image"
	_ "image/gif"  // reference decoders
	_ "image/jpeg" // reference decoders
	_ "image/png"  // reference decoders
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	_ "golang.org/x/image/bmp"  // reference decoders
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // reference decoders
	_ "golang.org/x/image/webp" // reference decoders
)

// extensions are tried in order when looking up a named glyph in a directory.
var extensions = []string{".png", ".bmp", ".gif", ".jpg", ".jpeg", ".tiff", ".tif", ".webp"}

// Reference is one glyph to match against. A reference whose image failed to
// decode keeps the error in Err and scores 0.
type Reference struct {
	Index int
	Name  string
	Image image.Image
	Err   error
}

// Load decodes the glyph image at path.
func Load(index int, name, path string) *Reference {
	ref := &Reference{Index: index, Name: name}
	f, err := os.Open(path)
	if err != nil {
		ref.Err = errors.Wrapf(err, "open glyph %s", name)
		return ref
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		ref.Err = errors.Wrapf(err, "decode glyph %s from %s", name, path)
		return ref
	}
	ref.Image = toRGBA(img)
	return ref
}

// LoadSet loads one glyph per name from dir, in index order. A name with no
// file in any supported format leaves a nil slot.
func LoadSet(dir string, names []string, log *zap.Logger) []*Reference {
	if log == nil {
		log = zap.NewNop()
	}
	refs := make([]*Reference, len(names))
	for i, name := range names {
		path, ok := findGlyph(dir, name)
		if !ok {
			log.Warn("reference glyph not found", zap.String("glyph", name), zap.String("dir", dir))
			continue
		}
		refs[i] = Load(i, name, path)
		if refs[i].Err != nil {
			log.Error("reference glyph failed to load", zap.String("glyph", name), zap.Error(refs[i].Err))
			continue
		}
		b := refs[i].Image.Bounds()
		log.Info("reference glyph loaded",
			zap.String("glyph", name), zap.String("path", path),
			zap.Int("width", b.Dx()), zap.Int("height", b.Dy()))
	}
	return refs
}

func findGlyph(dir, name string) (string, bool) {
	for _, ext := range extensions {
		p := filepath.Join(dir, name+ext)
		if st, err := os.Stat(p); err == nil && !st.IsDir() {
			return p, true
		}
	}
	return "", false
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
