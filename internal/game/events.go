package game

import (
	"fmt"

	"github.com/Garsondee/glyphmaze/internal/ghost"
	"github.com/Garsondee/glyphmaze/internal/grid"
)

// EventKind identifies something the session reports to its host.
type EventKind int

const (
	EventCoinCollected EventKind = iota
	EventWin                     // every registered coin collected; fires once per round
	EventCaught                  // player touched a ghost without its disguise
	EventSafePassage             // player touched a ghost while disguised as its faction
	EventDisguised               // a drawing matched a glyph
	EventNoMatch                 // a drawing matched nothing
)

var eventNames = [...]string{
	EventCoinCollected: "coin_collected",
	EventWin:           "win",
	EventCaught:        "caught",
	EventSafePassage:   "safe_passage",
	EventDisguised:     "disguised",
	EventNoMatch:       "no_match",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(k))
	}
	return eventNames[k]
}

// Event is one host-facing notification. Only the fields relevant to Kind
// are set.
type Event struct {
	Tick    int
	Kind    EventKind
	Cell    grid.Cell     // coin cell, or the player cell on ghost contact
	Ghost   int           // ghost index on contact
	Faction ghost.Faction // ghost faction on contact, disguise on match
	Score   float64       // match score for Disguised and NoMatch
}

func (e Event) String() string {
	switch e.Kind {
	case EventCoinCollected:
		return fmt.Sprintf("coin at %s", e.Cell)
	case EventWin:
		return "all coins collected"
	case EventCaught:
		return fmt.Sprintf("caught by %s ghost %d", e.Faction, e.Ghost)
	case EventSafePassage:
		return fmt.Sprintf("slipped past %s ghost %d", e.Faction, e.Ghost)
	case EventDisguised:
		return fmt.Sprintf("disguised as %s (%.2f)", e.Faction, e.Score)
	case EventNoMatch:
		return fmt.Sprintf("no match (best %.2f)", e.Score)
	}
	return e.Kind.String()
}

// Outcome is the state of the current round.
type Outcome int

const (
	Playing Outcome = iota
	Won
	Caught
)

func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Caught:
		return "caught"
	default:
		return "playing"
	}
}
