package grid

import "testing"

func TestNewGrid_OpenByDefault(t *testing.T) {
	g := NewGrid(10, 8)
	if g.Cols() != 10 || g.Rows() != 8 {
		t.Fatalf("expected 10x8, got %dx%d", g.Cols(), g.Rows())
	}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.IsBlocked(Cell{x, y}) {
				t.Fatalf("cell (%d,%d) should be open", x, y)
			}
		}
	}
	if n := len(g.OpenCells()); n != 80 {
		t.Fatalf("open cells=%d, want 80", n)
	}
}

func TestGrid_SetBlocked(t *testing.T) {
	g := NewGrid(5, 5)
	g.SetBlocked(Cell{2, 2}, true)
	if !g.IsBlocked(Cell{2, 2}) {
		t.Fatal("wall cell should be blocked")
	}
	g.SetBlocked(Cell{2, 2}, false)
	if g.IsBlocked(Cell{2, 2}) {
		t.Fatal("cleared cell should be open")
	}
}

func TestGrid_OutOfBounds(t *testing.T) {
	g := NewGrid(3, 3)
	for _, c := range []Cell{{-1, 0}, {0, -1}, {3, 0}, {0, 3}} {
		if !g.IsBlocked(c) {
			t.Fatalf("out-of-bounds cell %v should be blocked", c)
		}
	}
	// Should not panic.
	g.SetBlocked(Cell{99, 99}, true)
}

func TestOpenPlane_NeverBlocked(t *testing.T) {
	var p OpenPlane
	for _, c := range []Cell{{0, 0}, {-500, 12}, {1 << 20, -3}} {
		if p.IsBlocked(c) {
			t.Fatalf("open plane blocked %v", c)
		}
	}
}

func TestCell_Dist(t *testing.T) {
	if d := (Cell{0, 0}).Dist(Cell{3, 4}); d != 5 {
		t.Fatalf("dist=%f, want 5", d)
	}
	if c := (Cell{1, 2}).Add(Cell{0, -1}.Scale(4)); c != (Cell{1, -2}) {
		t.Fatalf("add/scale=%v, want (1,-2)", c)
	}
}
