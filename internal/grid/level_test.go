package grid

import (
	"strings"
	"testing"
)

func TestParseLevel_Tiles(t *testing.T) {
	src := "#####\n#P.I#\n#.#K#\n#####\n"
	lvl, err := ParseLevel(strings.NewReader(src))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lvl.Grid.Cols() != 5 || lvl.Grid.Rows() != 4 {
		t.Fatalf("size %dx%d, want 5x4", lvl.Grid.Cols(), lvl.Grid.Rows())
	}
	if lvl.Player != (Cell{1, 1}) {
		t.Fatalf("player=%v, want (1,1)", lvl.Player)
	}
	if len(lvl.Coins) != 2 {
		t.Fatalf("coins=%d, want 2", len(lvl.Coins))
	}
	if len(lvl.Ghosts) != 2 || lvl.Ghosts[0].Glyph != 'I' || lvl.Ghosts[1].Cell != (Cell{3, 2}) {
		t.Fatalf("unexpected ghosts %+v", lvl.Ghosts)
	}
	if !lvl.Grid.IsBlocked(Cell{2, 2}) {
		t.Fatal("interior wall should be blocked")
	}
	if lvl.Grid.IsBlocked(Cell{3, 2}) {
		t.Fatal("ghost spawn should be floor")
	}
}

func TestParseLevel_RaggedRowsPadded(t *testing.T) {
	lvl, err := ParseLevel(strings.NewReader("###\n#P\n###"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if lvl.Grid.IsBlocked(Cell{2, 1}) {
		t.Fatal("padded cell should be floor")
	}
}

func TestParseLevel_Errors(t *testing.T) {
	cases := map[string]string{
		"empty":     "\n\n",
		"no player": "###\n#.#\n###",
		"two":       "#PP#",
		"unknown":   "#P?#",
	}
	for name, src := range cases {
		if _, err := ParseLevel(strings.NewReader(src)); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestDefaultLevel_Connected(t *testing.T) {
	lvl := DefaultLevel()
	if len(lvl.Ghosts) != 4 {
		t.Fatalf("default level ghosts=%d, want 4", len(lvl.Ghosts))
	}
	if len(lvl.Coins) == 0 {
		t.Fatal("default level should have coins")
	}
	budget := lvl.Grid.Cols() * lvl.Grid.Rows()
	for _, c := range lvl.Grid.OpenCells() {
		if !Reachable(lvl.Grid, lvl.Player, c, budget) {
			t.Fatalf("cell %v unreachable from player spawn", c)
		}
	}
}
