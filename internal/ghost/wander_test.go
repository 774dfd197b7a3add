package ghost

import (
	"testing"

	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/motion"
)

// walk applies a policy for n decisions, moving the ghost one cell per decision.
func walk(p Policy, g grid.Occupancy, start grid.Cell, player motion.Vec2, n int) []motion.Direction {
	pos, dir := start, motion.None
	out := make([]motion.Direction, 0, n)
	for i := 0; i < n; i++ {
		d := p.Next(Input{Pos: pos, Dir: dir, Player: player, HasPlayer: true, Occ: g})
		out = append(out, d)
		if d != motion.None {
			pos = pos.Add(d.Delta())
			dir = d
		}
	}
	return out
}

func TestWander_TargetInRangeAndReachable(t *testing.T) {
	g := grid.NewGrid(30, 30)
	opts := DefaultOptions()
	w := NewWander(opts, newRng(2))
	start := grid.Cell{X: 15, Y: 15}
	w.Next(Input{Pos: start, Occ: g})
	target, ok := w.Target()
	if !ok {
		t.Fatal("wander should pick a target on an open grid")
	}
	if abs(target.X-start.X) > opts.WanderRange || abs(target.Y-start.Y) > opts.WanderRange {
		t.Fatalf("target %v outside range %d of %v", target, opts.WanderRange, start)
	}
	if target == start || g.IsBlocked(target) {
		t.Fatalf("bad target %v", target)
	}
}

func TestWander_RepicksWhenReached(t *testing.T) {
	g := grid.NewGrid(30, 30)
	w := NewWander(DefaultOptions(), newRng(4))
	pos, dir := grid.Cell{X: 15, Y: 15}, motion.None
	first := grid.Cell{}
	reached := false
	for i := 0; i < 200; i++ {
		d := w.Next(Input{Pos: pos, Dir: dir, Occ: g})
		target, _ := w.Target()
		if i == 0 {
			first = target
		}
		pos, dir = pos.Add(d.Delta()), d
		if pos == first {
			reached = true
		}
		if reached && target != first {
			return
		}
	}
	t.Fatalf("wander never re-picked after reaching %v (reached=%v)", first, reached)
}

func TestWander_FallsBackWhenNothingReachable(t *testing.T) {
	// A 1x2 pocket: no cell half the range away exists, so no target is found
	// and the ghost shuffles inside the pocket.
	g := grid.NewGrid(2, 1)
	w := NewWander(DefaultOptions(), newRng(6))
	for i, d := range walk(w, g, grid.Cell{}, motion.Vec2{}, 10) {
		if d != motion.Left && d != motion.Right {
			t.Fatalf("step %d: dir=%s, want a horizontal shuffle", i, d)
		}
	}
	if _, ok := w.Target(); ok {
		t.Fatal("no target should be reachable in the pocket")
	}
}

func TestWander_DropsBlockedTarget(t *testing.T) {
	g := grid.NewGrid(30, 30)
	w := NewWander(DefaultOptions(), newRng(8))
	start := grid.Cell{X: 15, Y: 15}
	w.Next(Input{Pos: start, Occ: g})
	target, _ := w.Target()
	g.SetBlocked(target, true)
	w.Next(Input{Pos: start, Occ: g})
	if next, ok := w.Target(); ok && next == target {
		t.Fatal("a walled-in target should be replaced")
	}
}

func TestWander_PatienceLimitsTarget(t *testing.T) {
	opts := DefaultOptions()
	opts.WanderPatience = 3
	g := grid.NewGrid(30, 30)
	w := NewWander(opts, newRng(10))
	start := grid.Cell{X: 15, Y: 15}
	w.Next(Input{Pos: start, Occ: g})
	first, _ := w.Target()
	// Standing still never reaches the target; patience forces a re-pick.
	changed := false
	for i := 0; i < 4; i++ {
		w.Next(Input{Pos: start, Occ: g})
		if cur, _ := w.Target(); cur != first {
			changed = true
		}
	}
	if !changed {
		t.Fatal("target should be re-picked once patience runs out")
	}
}
