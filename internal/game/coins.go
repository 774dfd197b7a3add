package game

import (
	"github.com/dhconnelly/rtreego"

	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/motion"
)

// coin is one pickup trigger box, centred on its cell.
type coin struct {
	cell  grid.Cell
	rect  rtreego.Rect
	taken bool
}

// Bounds implements rtreego.Spatial.
func (c *coin) Bounds() rtreego.Rect {
	return c.rect
}

// CoinField indexes the uncollected coins of a round for overlap queries.
type CoinField struct {
	tree      *rtreego.Rtree
	coins     []*coin
	collected int
}

// NewCoinField registers one coin per cell. halfExtent is the half side of
// each coin's trigger box in tiles.
func NewCoinField(cells []grid.Cell, halfExtent float64) *CoinField {
	f := &CoinField{
		tree:  rtreego.NewTree(2, 25, 50),
		coins: make([]*coin, 0, len(cells)),
	}
	for _, c := range cells {
		r, err := boxAround(motion.CellVec(c), halfExtent)
		if err != nil {
			continue
		}
		cn := &coin{cell: c, rect: r}
		f.coins = append(f.coins, cn)
		f.tree.Insert(cn)
	}
	return f
}

// Collect removes every coin whose box overlaps the square of halfExtent
// around p, and returns their cells.
func (f *CoinField) Collect(p motion.Vec2, halfExtent float64) []grid.Cell {
	bb, err := boxAround(p, halfExtent)
	if err != nil {
		return nil
	}
	hits := f.tree.SearchIntersect(bb)
	if len(hits) == 0 {
		return nil
	}
	cells := make([]grid.Cell, 0, len(hits))
	for _, h := range hits {
		cn := h.(*coin)
		if cn.taken {
			continue
		}
		cn.taken = true
		f.tree.Delete(cn)
		f.collected++
		cells = append(cells, cn.cell)
	}
	return cells
}

// Total is the number of coins registered at spawn.
func (f *CoinField) Total() int { return len(f.coins) }

// Collected is the number of coins picked up so far.
func (f *CoinField) Collected() int { return f.collected }

// Remaining is the number of coins still in the field.
func (f *CoinField) Remaining() int { return len(f.coins) - f.collected }

// Cleared reports whether every registered coin has been collected. An
// empty field is never cleared.
func (f *CoinField) Cleared() bool {
	return len(f.coins) > 0 && f.collected >= len(f.coins)
}

// Cells returns the uncollected coin cells in spawn order.
func (f *CoinField) Cells() []grid.Cell {
	out := make([]grid.Cell, 0, f.Remaining())
	for _, cn := range f.coins {
		if !cn.taken {
			out = append(out, cn.cell)
		}
	}
	return out
}

func boxAround(p motion.Vec2, halfExtent float64) (rtreego.Rect, error) {
	side := 2 * halfExtent
	return rtreego.NewRect(rtreego.Point{p.X - halfExtent, p.Y - halfExtent}, []float64{side, side})
}
