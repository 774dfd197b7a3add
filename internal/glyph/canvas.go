package glyph

import (
	"image"
	"image/color"
	"math"
)

// CanvasConfig sizes the drawing surface and its normalized output.
type CanvasConfig struct {
	Resolution       int     // square drawing bitmap, in pixels
	OutputResolution int     // square normalized bitmap, in pixels
	BrushRadius      int     // disc radius stamped per pointer sample
	Padding          int     // pixels added around the content box before resampling
	Threshold        float64 // alpha above which a pixel counts as drawn
	DrawColor        color.RGBA
	BackgroundColor  color.RGBA
}

// DefaultCanvasConfig draws at 256x256 and compares at 32x32. The brush
// radius is tuned so pointer samples at typical drag speeds overlap.
func DefaultCanvasConfig() CanvasConfig {
	return CanvasConfig{
		Resolution:       256,
		OutputResolution: 32,
		BrushRadius:      6,
		Padding:          2,
		Threshold:        0.1,
		DrawColor:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
		BackgroundColor:  color.RGBA{},
	}
}

// Surface is the on-screen rectangle the canvas is shown in.
type Surface struct {
	X, Y, W, H float64
}

// Contains reports whether (x, y) lies inside the surface.
func (s Surface) Contains(x, y float64) bool {
	return x >= s.X && y >= s.Y && x < s.X+s.W && y < s.Y+s.H
}

// Canvas accumulates one freehand gesture.
type Canvas struct {
	cfg     CanvasConfig
	surface Surface
	img     *image.RGBA
	active  bool
}

// NewCanvas returns a cleared canvas shown on surface. A degenerate surface
// maps one surface unit to one pixel.
func NewCanvas(cfg CanvasConfig, surface Surface) *Canvas {
	if cfg.Resolution <= 0 {
		cfg.Resolution = DefaultCanvasConfig().Resolution
	}
	if cfg.OutputResolution <= 0 {
		cfg.OutputResolution = DefaultCanvasConfig().OutputResolution
	}
	c := &Canvas{
		cfg: cfg,
		img: image.NewRGBA(image.Rect(0, 0, cfg.Resolution, cfg.Resolution)),
	}
	c.SetSurface(surface)
	c.clear()
	return c
}

// Config returns the canvas configuration.
func (c *Canvas) Config() CanvasConfig { return c.cfg }

// Surface returns the screen rectangle of the canvas.
func (c *Canvas) Surface() Surface { return c.surface }

// SetSurface moves or resizes the on-screen rectangle.
func (c *Canvas) SetSurface(s Surface) {
	if s.W <= 0 || s.H <= 0 {
		s.W = float64(c.cfg.Resolution)
		s.H = float64(c.cfg.Resolution)
	}
	c.surface = s
}

// Image returns the live drawing bitmap. Callers must not modify it.
func (c *Canvas) Image() *image.RGBA { return c.img }

// Active reports whether a gesture is in progress.
func (c *Canvas) Active() bool { return c.active }

// BeginStroke clears the bitmap and starts a new gesture.
func (c *Canvas) BeginStroke() {
	c.clear()
	c.active = true
}

// PaintAt stamps the brush at a surface-space point. It returns false when
// no gesture is active.
func (c *Canvas) PaintAt(x, y float64) bool {
	if !c.active {
		return false
	}
	px, py := c.toPixel(x, y)
	c.Stamp(px, py)
	return true
}

// PaintLine stamps the brush along the segment from (x0, y0) to (x1, y1),
// excluding the start point, with samples about one pixel apart. Pointer
// events arrive sparsely during fast drags.
func (c *Canvas) PaintLine(x0, y0, x1, y1 float64) bool {
	if !c.active {
		return false
	}
	du := (x1 - x0) / c.surface.W
	dv := (y1 - y0) / c.surface.H
	n := int(math.Ceil(math.Hypot(du, dv) * float64(c.cfg.Resolution)))
	if n < 1 {
		n = 1
	}
	for j := 1; j <= n; j++ {
		f := float64(j) / float64(n)
		c.PaintAt(x0+(x1-x0)*f, y0+(y1-y0)*f)
	}
	return true
}

// EndStroke finishes the gesture and returns its normalized bitmap. It
// returns false if no gesture was active.
func (c *Canvas) EndStroke() (*Normalized, bool) {
	if !c.active {
		return nil, false
	}
	c.active = false
	return Normalize(c.img, c.cfg), true
}

// Cancel discards the gesture in progress.
func (c *Canvas) Cancel() {
	c.active = false
	c.clear()
}

// Stamp fills a brush disc centred on pixel (px, py).
func (c *Canvas) Stamp(px, py int) {
	r := c.cfg.BrushRadius
	res := c.cfg.Resolution
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy > r*r {
				continue
			}
			x, y := px+dx, py+dy
			if x < 0 || y < 0 || x >= res || y >= res {
				continue
			}
			c.img.SetRGBA(x, y, c.cfg.DrawColor)
		}
	}
}

func (c *Canvas) toPixel(x, y float64) (int, int) {
	res := c.cfg.Resolution
	u := (x - c.surface.X) / c.surface.W
	v := (y - c.surface.Y) / c.surface.H
	return clampInt(int(math.Floor(u*float64(res))), 0, res-1),
		clampInt(int(math.Floor(v*float64(res))), 0, res-1)
}

func (c *Canvas) clear() {
	fill(c.img, c.cfg.BackgroundColor)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
