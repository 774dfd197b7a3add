package glyph

import (
	"image"
	"image/color"
	"math"
)

// Normalized is a fixed-resolution, binarized bitmap ready for matching.
// It is read-only and implements image.Image.
type Normalized struct {
	img   *image.RGBA
	empty bool
}

// ColorModel implements image.Image.
func (n *Normalized) ColorModel() color.Model { return color.RGBAModel }

// Bounds implements image.Image.
func (n *Normalized) Bounds() image.Rectangle { return n.img.Bounds() }

// At implements image.Image.
func (n *Normalized) At(x, y int) color.Color { return n.img.At(x, y) }

// Empty reports whether the source had no visible pixels.
func (n *Normalized) Empty() bool { return n.empty }

// Image returns a copy of the bitmap.
func (n *Normalized) Image() *image.RGBA {
	cp := image.NewRGBA(n.img.Bounds())
	copy(cp.Pix, n.img.Pix)
	return cp
}

// Normalize crops img to its visible content plus padding, stretches the box
// to the output resolution and binarizes the result. Output pixel i samples
// the box at min + i/(out-1)*(size-1) on each axis with one bilinear lookup,
// so the first and last samples land on the box edges.
func Normalize(img image.Image, cfg CanvasConfig) *Normalized {
	out := cfg.OutputResolution
	dst := image.NewRGBA(image.Rect(0, 0, out, out))

	box, ok := contentBounds(img, cfg.Threshold)
	if !ok {
		fill(dst, cfg.BackgroundColor)
		return &Normalized{img: dst, empty: true}
	}
	box = box.Inset(-cfg.Padding).Intersect(img.Bounds())

	for y := 0; y < out; y++ {
		sy := gridCoord(box.Min.Y, box.Dy(), y, out)
		for x := 0; x < out; x++ {
			sx := gridCoord(box.Min.X, box.Dx(), x, out)
			c := cfg.BackgroundColor
			if bilinearAlpha(img, sx, sy) > cfg.Threshold {
				c = cfg.DrawColor
			}
			dst.SetRGBA(x, y, c)
		}
	}
	return &Normalized{img: dst}
}

// gridCoord maps sample i of n onto [lo, lo+size-1], both ends inclusive.
func gridCoord(lo, size, i, n int) float64 {
	if n <= 1 {
		return float64(lo)
	}
	return float64(lo) + float64(i)/float64(n-1)*float64(size-1)
}

// bilinearAlpha interpolates alpha (0..1) between the four pixels around
// (x, y), with pixel centres on integer coordinates. Neighbours past the
// image edge clamp to it.
func bilinearAlpha(img image.Image, x, y float64) float64 {
	b := img.Bounds()
	x0, y0 := int(math.Floor(x)), int(math.Floor(y))
	fx, fy := x-float64(x0), y-float64(y0)
	x1, y1 := min(x0+1, b.Max.X-1), min(y0+1, b.Max.Y-1)

	top := lerp(alphaAt(img, x0, y0), alphaAt(img, x1, y0), fx)
	bottom := lerp(alphaAt(img, x0, y1), alphaAt(img, x1, y1), fx)
	return lerp(top, bottom, fy)
}

func alphaAt(img image.Image, x, y int) float64 {
	_, _, _, a := img.At(x, y).RGBA()
	return float64(a) / 0xffff
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }

// contentBounds returns the tight box of pixels with alpha above threshold.
func contentBounds(img image.Image, threshold float64) (image.Rectangle, bool) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if !alphaVisible(img.At(x, y), threshold) {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

func alphaVisible(c color.Color, threshold float64) bool {
	_, _, _, a := c.RGBA()
	return float64(a)/0xffff > threshold
}

func fill(img *image.RGBA, c color.RGBA) {
	pix := img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
}
