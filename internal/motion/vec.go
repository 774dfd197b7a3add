package motion

import (
	"fmt"
	"math"

	"github.com/Garsondee/glyphmaze/internal/grid"
)

// Vec2 is a world-space position. One tile is one world unit.
type Vec2 struct {
	X, Y float64
}

// CellVec returns the lattice point of a cell.
func CellVec(c grid.Cell) Vec2 {
	return Vec2{X: float64(c.X), Y: float64(c.Y)}
}

// Dist returns the Euclidean distance between two points.
func (v Vec2) Dist(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// MoveTowards steps from v toward target by at most maxStep, never past it.
func (v Vec2) MoveTowards(target Vec2, maxStep float64) Vec2 {
	dx := target.X - v.X
	dy := target.Y - v.Y
	d := math.Hypot(dx, dy)
	if d <= maxStep || d == 0 {
		return target
	}
	return Vec2{X: v.X + dx/d*maxStep, Y: v.Y + dy/d*maxStep}
}

// Round returns the nearest grid cell.
func (v Vec2) Round() grid.Cell {
	return grid.Cell{X: int(math.Round(v.X)), Y: int(math.Round(v.Y))}
}

func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f,%.3f)", v.X, v.Y)
}
