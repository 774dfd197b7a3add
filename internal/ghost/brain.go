package ghost

import (
	"math/rand"

	"github.com/Garsondee/glyphmaze/internal/motion"
)

// Brain is one ghost's decision unit: its faction policy behind the
// disguise short-circuit.
type Brain struct {
	faction  Faction
	policy   Policy
	wander   *Wander
	disguise *Disguise
}

// NewBrain wires the policy for f to the session's disguise.
func NewBrain(f Faction, disguise *Disguise, opts Options, rng *rand.Rand) (*Brain, error) {
	p, err := NewPolicy(f, opts, rng)
	if err != nil {
		return nil, err
	}
	b := &Brain{faction: f, policy: p, disguise: disguise}
	if w, ok := p.(*Wander); ok {
		b.wander = w
	} else {
		b.wander = NewWander(opts, rng)
	}
	return b, nil
}

// Faction returns the ghost's faction.
func (b *Brain) Faction() Faction { return b.faction }

// Disguised reports whether the player currently wears this ghost's faction.
func (b *Brain) Disguised() bool { return b.disguise.Is(b.faction) }

// Decide returns the next direction. A player disguised as this faction is
// ignored and the ghost wanders.
func (b *Brain) Decide(in Input) motion.Direction {
	if b.Disguised() {
		return b.wander.Next(in)
	}
	return b.policy.Next(in)
}
