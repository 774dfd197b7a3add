package ghost

import (
	"math/rand"

	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/motion"
)

const wanderPickAttempts = 16

// Wander roams toward a standing target cell and re-picks it when reached,
// unreachable, or stale.
type Wander struct {
	opts   Options
	rng    *rand.Rand
	target grid.Cell
	has    bool
	steps  int
}

// NewWander returns a Wander with no target yet.
func NewWander(opts Options, rng *rand.Rand) *Wander {
	if opts.WanderRange < 1 {
		opts.WanderRange = 1
	}
	return &Wander{opts: opts, rng: rng}
}

// Target returns the standing target, if any.
func (w *Wander) Target() (grid.Cell, bool) {
	return w.target, w.has
}

// Next implements Policy. The player is ignored.
func (w *Wander) Next(in Input) motion.Direction {
	moves := LegalMoves(in.Occ, in.Pos, in.Dir)
	if len(moves) == 0 {
		return motion.None
	}
	if w.has && w.stale(in) {
		w.has = false
	}
	if !w.has {
		w.pickTarget(in)
	}
	if !w.has {
		return pick(w.rng, moves)
	}
	w.steps++
	return Closest(moves, in.Pos, motion.CellVec(w.target))
}

func (w *Wander) stale(in Input) bool {
	if in.Pos == w.target {
		return true
	}
	if w.opts.WanderPatience > 0 && w.steps >= w.opts.WanderPatience {
		return true
	}
	return !grid.Reachable(in.Occ, in.Pos, w.target, w.opts.PathBudget)
}

// pickTarget draws random cells in range, preferring ones at least half the
// range away, and keeps the first that is open and reachable.
func (w *Wander) pickTarget(in Input) {
	r := w.opts.WanderRange
	for i := 0; i < wanderPickAttempts; i++ {
		dx := w.rng.Intn(2*r+1) - r
		dy := w.rng.Intn(2*r+1) - r
		if abs(dx)+abs(dy) < (r+1)/2 {
			continue
		}
		c := in.Pos.Add(grid.Cell{X: dx, Y: dy})
		if in.Occ.IsBlocked(c) || !grid.Reachable(in.Occ, in.Pos, c, w.opts.PathBudget) {
			continue
		}
		w.target = c
		w.has = true
		w.steps = 0
		return
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
