package game

import (
	"testing"

	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/motion"
)

func TestCoinField_CollectIsIdempotent(t *testing.T) {
	cells := []grid.Cell{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 5, Y: 5}}
	f := NewCoinField(cells, 0.3)
	if f.Total() != 3 || f.Remaining() != 3 {
		t.Fatalf("total=%d remaining=%d, want 3/3", f.Total(), f.Remaining())
	}

	got := f.Collect(motion.Vec2{X: 1, Y: 1}, 0.25)
	if len(got) != 1 || got[0] != (grid.Cell{X: 1, Y: 1}) {
		t.Fatalf("collected %v, want [(1,1)]", got)
	}
	if again := f.Collect(motion.Vec2{X: 1, Y: 1}, 0.25); len(again) != 0 {
		t.Fatalf("second pass collected %v", again)
	}
	if f.Remaining() != 2 || f.Cleared() {
		t.Fatalf("remaining=%d cleared=%v", f.Remaining(), f.Cleared())
	}
}

func TestCoinField_OverlapNeedsProximity(t *testing.T) {
	f := NewCoinField([]grid.Cell{{X: 3, Y: 3}}, 0.3)
	if got := f.Collect(motion.Vec2{X: 2, Y: 3}, 0.25); len(got) != 0 {
		t.Fatal("a neighbouring tile should not reach the coin")
	}
	if got := f.Collect(motion.Vec2{X: 2.6, Y: 3}, 0.25); len(got) != 1 {
		t.Fatal("a player closing on the coin should collect it")
	}
	if !f.Cleared() {
		t.Fatal("field should be cleared")
	}
	if len(f.Cells()) != 0 {
		t.Fatalf("cells=%v, want none", f.Cells())
	}
}

func TestCoinField_EmptyNeverCleared(t *testing.T) {
	f := NewCoinField(nil, 0.3)
	if f.Cleared() {
		t.Fatal("an empty field has nothing to win")
	}
}
