package glyph

import (
	"image"
	"image/color"
	"strings"
	"testing"
)

func opaqueAt(w, h int, pts ...image.Point) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for _, p := range pts {
		img.SetRGBA(p.X, p.Y, color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return img
}

func column(x, y0, y1 int) []image.Point {
	var pts []image.Point
	for y := y0; y <= y1; y++ {
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

func row(y, x0, x1 int) []image.Point {
	var pts []image.Point
	for x := x0; x <= x1; x++ {
		pts = append(pts, image.Pt(x, y))
	}
	return pts
}

func TestNormalize_UniformGridSampling(t *testing.T) {
	cfg := DefaultCanvasConfig()
	cfg.OutputResolution = 5
	cfg.Padding = 0

	tests := []struct {
		name string
		pts  []image.Point
		want []string
	}{
		{
			// 5x5 box: samples land exactly on source pixels.
			name: "corners",
			pts:  []image.Point{image.Pt(2, 2), image.Pt(6, 6)},
			want: []string{
				"#....",
				".....",
				".....",
				".....",
				"....#",
			},
		},
		{
			// 9x3 box: x steps by 2, y by 0.5, so half-way rows blend.
			name: "stretched",
			pts:  append(row(3, 0, 8), image.Pt(8, 5)),
			want: []string{
				"#####",
				"#####",
				".....",
				"....#",
				"....#",
			},
		},
		{
			// 6x5 box: x steps by 1.25; x=3.25 reads 0.75 of the column.
			name: "fractional",
			pts:  append(column(3, 2, 6), image.Pt(2, 2), image.Pt(7, 6)),
			want: []string{
				"##...",
				".#...",
				".#...",
				".#...",
				".#..#",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Normalize(opaqueAt(12, 12, tt.pts...), cfg)
			var got []string
			for y := 0; y < 5; y++ {
				var b strings.Builder
				for x := 0; x < 5; x++ {
					if drawnActive(n.At(x, y)) {
						b.WriteByte('#')
					} else {
						b.WriteByte('.')
					}
				}
				got = append(got, b.String())
			}
			if strings.Join(got, "\n") != strings.Join(tt.want, "\n") {
				t.Fatalf("mask:\n%s\nwant:\n%s", strings.Join(got, "\n"), strings.Join(tt.want, "\n"))
			}
		})
	}
}

func TestNormalize_LineBetweenSampleRowsIsDropped(t *testing.T) {
	cfg := DefaultCanvasConfig()
	cfg.Padding = 0
	// A one-pixel row across a 256x256 canvas, anchored by two corner dots.
	pts := append(row(128, 0, 255), image.Pt(0, 0), image.Pt(255, 255))
	n := Normalize(opaqueAt(256, 256, pts...), cfg)
	active := 0
	for y := 0; y < 32; y++ {
		if drawnActive(n.At(16, y)) {
			active++
		}
	}
	// Row 128 falls between samples 15 (y=123.4) and 16 (y=131.6).
	if active != 0 {
		t.Fatalf("a 1px line between sample rows should vanish, got %d active rows:\n%s", active, ASCII(n))
	}
}

func TestNormalized_ImageIsCopy(t *testing.T) {
	pts, _ := BuiltinPath("bee")
	n := Trace(unitCanvas(), pts)
	img := n.Image()
	img.Pix[3] ^= 0xff
	if n.img.Pix[3] == img.Pix[3] {
		t.Fatal("mutating Image() should not touch the bitmap")
	}
}
