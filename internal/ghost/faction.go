package ghost

import (
	"strings"

	"github.com/pkg/errors"
)

// Faction is a ghost archetype. Its value doubles as the reference glyph index.
type Faction uint8

const (
	Infinity Faction = iota // chases the player
	Knot                    // ambushes ahead of the player
	Bee                     // wanders
	Pentagram               // chases from afar, wanders up close
	factionCount            // sentinel
)

// Factions lists every faction in glyph index order.
var Factions = [factionCount]Faction{Infinity, Knot, Bee, Pentagram}

var factionNames = [factionCount]string{"infinity", "knot", "bee", "pentagram"}

// Valid reports whether f is a known faction.
func (f Faction) Valid() bool { return f < factionCount }

func (f Faction) String() string {
	if !f.Valid() {
		return "unknown"
	}
	return factionNames[f]
}

// Index returns the reference glyph index of f.
func (f Faction) Index() int { return int(f) }

// ParseFaction resolves a case-insensitive faction name.
func ParseFaction(s string) (Faction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range factionNames {
		if n == s {
			return Faction(i), nil
		}
	}
	return 0, errors.Errorf("unknown faction %q", s)
}

// FromIndex maps a glyph index back to its faction.
func FromIndex(i int) (Faction, bool) {
	if i < 0 || i >= int(factionCount) {
		return 0, false
	}
	return Faction(i), true
}

// FromRune maps a level spawn glyph (I, K, B, S) to its faction.
func FromRune(r rune) (Faction, bool) {
	switch r {
	case 'I':
		return Infinity, true
	case 'K':
		return Knot, true
	case 'B':
		return Bee, true
	case 'S':
		return Pentagram, true
	default:
		return 0, false
	}
}
