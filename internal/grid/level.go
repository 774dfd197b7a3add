package grid

import (
	"bufio"
	_ "embed"
	"io"
	"strings"

	"github.com/pkg/errors"
)

//go:embed default.txt
var defaultLevel string

// Level tile glyphs.
const (
	TileWall   = '#'
	TileCoin   = '.'
	TileFloor  = ' '
	TilePlayer = 'P'
)

// ghostGlyphs are the spawn markers accepted for ghosts.
const ghostGlyphs = "IKBS"

// Spawn marks where a ghost enters the level. Glyph is the raw level rune;
// callers map it to a faction.
type Spawn struct {
	Cell  Cell
	Glyph rune
}

// Level is a parsed ASCII map.
type Level struct {
	Grid   *Grid
	Player Cell
	Ghosts []Spawn
	Coins  []Cell
}

// DefaultLevel returns the built-in maze.
func DefaultLevel() *Level {
	lvl, err := ParseLevel(strings.NewReader(defaultLevel))
	if err != nil {
		// The embedded map is covered by tests; reaching this is a build defect.
		panic(err)
	}
	return lvl
}

// ParseLevel reads an ASCII level. Short rows are padded with floor.
func ParseLevel(r io.Reader) (*Level, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read level")
	}
	// Trailing blank lines carry no tiles.
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, errors.New("level is empty")
	}

	cols := 0
	for _, l := range lines {
		if n := len([]rune(l)); n > cols {
			cols = n
		}
	}

	lvl := &Level{Grid: NewGrid(cols, len(lines))}
	players := 0
	for y, l := range lines {
		for x, ch := range []rune(l) {
			c := Cell{X: x, Y: y}
			switch {
			case ch == TileWall:
				lvl.Grid.SetBlocked(c, true)
			case ch == TileCoin:
				lvl.Coins = append(lvl.Coins, c)
			case ch == TileFloor:
			case ch == TilePlayer:
				players++
				lvl.Player = c
			case strings.ContainsRune(ghostGlyphs, ch):
				lvl.Ghosts = append(lvl.Ghosts, Spawn{Cell: c, Glyph: ch})
			default:
				return nil, errors.Errorf("line %d col %d: unknown tile %q", y+1, x+1, ch)
			}
		}
	}
	switch {
	case players == 0:
		return nil, errors.New("level has no player spawn")
	case players > 1:
		return nil, errors.Errorf("level has %d player spawns, want 1", players)
	}
	return lvl, nil
}
