package glyph

import "math"

// BuiltinNames are the default glyphs in reference index order.
var BuiltinNames = []string{"infinity", "knot", "bee", "pentagram"}

// Point is a position in unit surface coordinates.
type Point struct {
	X, Y float64
}

// BuiltinPath returns the polyline for a built-in glyph, in [0,1]² with Y down.
func BuiltinPath(name string) ([]Point, bool) {
	switch name {
	case "infinity":
		// Lemniscate of Bernoulli.
		return curve(96, func(t float64) (float64, float64) {
			s := math.Sin(t)
			d := 1 + s*s
			return math.Cos(t) / d, s * math.Cos(t) / d
		}, 1), true
	case "knot":
		// Trefoil projection.
		return curve(128, func(t float64) (float64, float64) {
			return math.Sin(t) + 2*math.Sin(2*t), math.Cos(t) - 2*math.Cos(2*t)
		}, 3), true
	case "bee":
		// Honeycomb cell.
		return polygon(6, 1, 0), true
	case "pentagram":
		// Star polygon {5/2}, point up.
		return polygon(5, 2, -math.Pi/2), true
	default:
		return nil, false
	}
}

// curve samples f over one period and fits it from [-extent, extent] into the unit square.
func curve(n int, f func(t float64) (float64, float64), extent float64) []Point {
	pts := make([]Point, 0, n+1)
	for i := 0; i <= n; i++ {
		x, y := f(2 * math.Pi * float64(i) / float64(n))
		pts = append(pts, Point{X: 0.5 + 0.4*x/extent, Y: 0.5 + 0.4*y/extent})
	}
	return pts
}

// polygon traces a closed regular polygon visiting every step-th vertex.
func polygon(sides, step int, phase float64) []Point {
	pts := make([]Point, 0, sides+1)
	for k := 0; k <= sides; k++ {
		a := phase + 2*math.Pi*float64(k*step)/float64(sides)
		pts = append(pts, Point{X: 0.5 + 0.4*math.Cos(a), Y: 0.5 + 0.4*math.Sin(a)})
	}
	return pts
}

// Trace replays pts as one gesture on c and returns the normalized result.
// Points are in unit coordinates of the canvas surface.
func Trace(c *Canvas, pts []Point) *Normalized {
	s := c.Surface()
	at := func(p Point) (float64, float64) {
		return s.X + p.X*s.W, s.Y + p.Y*s.H
	}
	c.BeginStroke()
	for i, p := range pts {
		x, y := at(p)
		if i == 0 {
			c.PaintAt(x, y)
			continue
		}
		px, py := at(pts[i-1])
		c.PaintLine(px, py, x, y)
	}
	n, _ := c.EndStroke()
	return n
}

// Builtin rasterizes the default glyph set with the canvas brush, so the
// references look like player drawings after normalization.
func Builtin(cfg CanvasConfig) []*Reference {
	refs := make([]*Reference, len(BuiltinNames))
	c := NewCanvas(cfg, Surface{W: 1, H: 1})
	for i, name := range BuiltinNames {
		pts, _ := BuiltinPath(name)
		refs[i] = &Reference{Index: i, Name: name, Image: Trace(c, pts)}
	}
	return refs
}
