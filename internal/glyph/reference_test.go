package glyph

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"
)

func writeGlyph(t *testing.T, path string, encode func(*os.File, image.Image) error) {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 29, 29))
	for i := 0; i < 29; i++ {
		img.SetNRGBA(i, i, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSet(t *testing.T) {
	dir := t.TempDir()
	writeGlyph(t, filepath.Join(dir, "infinity.png"), func(f *os.File, img image.Image) error { return png.Encode(f, img) })
	writeGlyph(t, filepath.Join(dir, "bee.bmp"), func(f *os.File, img image.Image) error { return bmp.Encode(f, img) })
	if err := os.WriteFile(filepath.Join(dir, "pentagram.png"), []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	refs := LoadSet(dir, BuiltinNames, nil)
	if len(refs) != 4 {
		t.Fatalf("refs=%d, want 4", len(refs))
	}
	if refs[0] == nil || refs[0].Err != nil || refs[0].Image.Bounds().Dx() != 29 {
		t.Fatalf("png glyph not loaded: %+v", refs[0])
	}
	if refs[1] != nil {
		t.Fatal("knot has no file and should be a nil slot")
	}
	if refs[2] == nil || refs[2].Err != nil || refs[2].Index != 2 {
		t.Fatalf("bmp glyph not loaded: %+v", refs[2])
	}
	if refs[3] == nil || refs[3].Err == nil {
		t.Fatal("corrupt glyph should carry a decode error")
	}

	// The loaded diagonal matches itself through the full pipeline.
	r := NewMatcher(DefaultMatchThreshold, nil).BestMatch(refs[0].Image, refs)
	if r.Index != 0 {
		t.Fatalf("loaded glyph matched %+v", r)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	ref := Load(1, "knot", filepath.Join(t.TempDir(), "nope.png"))
	if ref.Err == nil || ref.Image != nil {
		t.Fatal("missing file should yield an error reference")
	}
}

func TestASCII(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	img.SetRGBA(1, 0, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	if got := ASCII(img); got != ".#\n..\n" {
		t.Fatalf("ASCII=%q", got)
	}
}
