package grid

import (
	"fmt"
	"math"
)

// Cell is an integer position on the unit tile grid. Y grows downward.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by d.
func (c Cell) Add(d Cell) Cell {
	return Cell{X: c.X + d.X, Y: c.Y + d.Y}
}

// Scale multiplies both components by k.
func (c Cell) Scale(k int) Cell {
	return Cell{X: c.X * k, Y: c.Y * k}
}

// Dist returns the straight-line distance between two cells.
func (c Cell) Dist(o Cell) float64 {
	dx := float64(c.X - o.X)
	dy := float64(c.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Occupancy answers whether a cell can be entered.
type Occupancy interface {
	IsBlocked(c Cell) bool
}

// OpenPlane is an unbounded occupancy with no walls.
type OpenPlane struct{}

// IsBlocked always reports false.
func (OpenPlane) IsBlocked(Cell) bool { return false }

// Grid is a bounded walkability grid where true = blocked.
type Grid struct {
	cols    int
	rows    int
	blocked []bool
}

// NewGrid returns a cols×rows grid with every cell open.
func NewGrid(cols, rows int) *Grid {
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return &Grid{
		cols:    cols,
		rows:    rows,
		blocked: make([]bool, cols*rows),
	}
}

// Cols returns the grid width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the grid height in cells.
func (g *Grid) Rows() int { return g.rows }

// InBounds reports whether c lies inside the grid.
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.Y >= 0 && c.X < g.cols && c.Y < g.rows
}

// SetBlocked marks a cell as wall or floor. Out-of-bounds writes are ignored.
func (g *Grid) SetBlocked(c Cell, blocked bool) {
	if !g.InBounds(c) {
		return
	}
	g.blocked[c.Y*g.cols+c.X] = blocked
}

// IsBlocked returns true if the cell is a wall. Cells outside the grid are blocked.
func (g *Grid) IsBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}
	return g.blocked[c.Y*g.cols+c.X]
}

// OpenCells lists every walkable cell in row-major order.
func (g *Grid) OpenCells() []Cell {
	var out []Cell
	for y := 0; y < g.rows; y++ {
		for x := 0; x < g.cols; x++ {
			if !g.blocked[y*g.cols+x] {
				out = append(out, Cell{X: x, Y: y})
			}
		}
	}
	return out
}
