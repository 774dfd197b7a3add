package grid

import "testing"

func TestFindPath_Straight(t *testing.T) {
	g := NewGrid(6, 1)
	path := FindPath(g, Cell{0, 0}, Cell{5, 0}, 0)
	if len(path) != 6 {
		t.Fatalf("path len=%d, want 6", len(path))
	}
	if path[0] != (Cell{0, 0}) || path[5] != (Cell{5, 0}) {
		t.Fatalf("path endpoints %v..%v", path[0], path[5])
	}
}

func TestFindPath_AroundWall(t *testing.T) {
	// Wall column at x=2 with a gap at y=4.
	g := NewGrid(5, 5)
	for y := 0; y < 4; y++ {
		g.SetBlocked(Cell{2, y}, true)
	}
	path := FindPath(g, Cell{0, 0}, Cell{4, 0}, 0)
	if path == nil {
		t.Fatal("expected a path through the gap")
	}
	for i := 1; i < len(path); i++ {
		if g.IsBlocked(path[i]) {
			t.Fatalf("path crosses wall at %v", path[i])
		}
		if path[i-1].Dist(path[i]) != 1 {
			t.Fatalf("non-adjacent step %v -> %v", path[i-1], path[i])
		}
	}
}

func TestFindPath_Unreachable(t *testing.T) {
	g := NewGrid(3, 3)
	g.SetBlocked(Cell{1, 0}, true)
	g.SetBlocked(Cell{1, 1}, true)
	g.SetBlocked(Cell{1, 2}, true)
	if Reachable(g, Cell{0, 0}, Cell{2, 2}, 0) {
		t.Fatal("sealed cell should be unreachable")
	}
	if FindPath(g, Cell{0, 0}, Cell{1, 1}, 0) != nil {
		t.Fatal("blocked goal should yield nil")
	}
}

func TestFindPath_BudgetOnOpenPlane(t *testing.T) {
	if !Reachable(OpenPlane{}, Cell{0, 0}, Cell{6, 3}, 0) {
		t.Fatal("nearby cell on open plane should be reachable")
	}
	if Reachable(OpenPlane{}, Cell{0, 0}, Cell{5000, 5000}, 64) {
		t.Fatal("search should give up once the budget is spent")
	}
}
