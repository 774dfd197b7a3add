package ghost

import (
	"math"
	"math/rand"

	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/motion"
	"github.com/pkg/errors"
)

// Input is everything a policy sees at a decision point.
type Input struct {
	Pos          grid.Cell        // ghost resting cell
	Dir          motion.Direction // ghost's current direction
	Player       motion.Vec2
	PlayerFacing motion.Direction
	HasPlayer    bool
	Occ          grid.Occupancy
}

// Policy picks the next direction for an idle ghost.
type Policy interface {
	Next(in Input) motion.Direction
}

// Options tunes the faction policies.
type Options struct {
	AmbushLead     int     // tiles ahead of the player the Knot aims for
	StalkRadius    float64 // Pentagram chases beyond this distance
	WanderRange    int     // max tile offset of a wander target
	WanderPatience int     // decisions before an unreached wander target is dropped
	PathBudget     int     // A* node budget for reachability checks
}

// DefaultOptions returns the standard tuning.
func DefaultOptions() Options {
	return Options{
		AmbushLead:     4,
		StalkRadius:    5,
		WanderRange:    8,
		WanderPatience: 24,
		PathBudget:     grid.DefaultPathBudget,
	}
}

// LegalMoves returns the open directions from pos in tie-break order,
// excluding the reverse of current unless it is the only open one.
func LegalMoves(occ grid.Occupancy, pos grid.Cell, current motion.Direction) []motion.Direction {
	if occ == nil {
		return nil
	}
	reverse := current.Opposite()
	moves := make([]motion.Direction, 0, len(motion.Directions))
	reverseOpen := false
	for _, d := range motion.Directions {
		if occ.IsBlocked(pos.Add(d.Delta())) {
			continue
		}
		if reverse != motion.None && d == reverse {
			reverseOpen = true
			continue
		}
		moves = append(moves, d)
	}
	if len(moves) == 0 && reverseOpen {
		moves = append(moves, reverse)
	}
	return moves
}

// Closest returns the first move whose resulting cell is nearest target.
func Closest(moves []motion.Direction, pos grid.Cell, target motion.Vec2) motion.Direction {
	best := motion.None
	bestDist := math.MaxFloat64
	for _, d := range moves {
		dist := motion.CellVec(pos.Add(d.Delta())).Dist(target)
		if dist < bestDist {
			bestDist = dist
			best = d
		}
	}
	return best
}

func pick(rng *rand.Rand, moves []motion.Direction) motion.Direction {
	if len(moves) == 0 {
		return motion.None
	}
	return moves[rng.Intn(len(moves))]
}

// RandomLegal picks uniformly among every open direction, reverse included.
// Used for a ghost's first move after spawning.
func RandomLegal(occ grid.Occupancy, pos grid.Cell, rng *rand.Rand) motion.Direction {
	return pick(rng, LegalMoves(occ, pos, motion.None))
}

// Chase heads straight for the player.
type Chase struct {
	rng *rand.Rand
}

// Next implements Policy.
func (c *Chase) Next(in Input) motion.Direction {
	moves := LegalMoves(in.Occ, in.Pos, in.Dir)
	if !in.HasPlayer {
		return pick(c.rng, moves)
	}
	return Closest(moves, in.Pos, in.Player)
}

// Ambush aims a fixed number of tiles ahead of where the player is facing.
type Ambush struct {
	lead int
	rng  *rand.Rand
}

// AmbushTarget returns the interception point for a player at p facing f.
func AmbushTarget(p motion.Vec2, f motion.Direction, lead int) motion.Vec2 {
	d := f.Delta()
	return motion.Vec2{X: p.X + float64(d.X*lead), Y: p.Y + float64(d.Y*lead)}
}

// Next implements Policy.
func (a *Ambush) Next(in Input) motion.Direction {
	moves := LegalMoves(in.Occ, in.Pos, in.Dir)
	if !in.HasPlayer {
		return pick(a.rng, moves)
	}
	return Closest(moves, in.Pos, AmbushTarget(in.Player, in.PlayerFacing, a.lead))
}

// Stalk chases from a distance and wanders once inside its radius.
type Stalk struct {
	radius float64
	chase  *Chase
	wander *Wander
}

// Next implements Policy.
func (s *Stalk) Next(in Input) motion.Direction {
	if !in.HasPlayer {
		return pick(s.chase.rng, LegalMoves(in.Occ, in.Pos, in.Dir))
	}
	if motion.CellVec(in.Pos).Dist(in.Player) > s.radius {
		return s.chase.Next(in)
	}
	return s.wander.Next(in)
}

type policyFactory func(opts Options, rng *rand.Rand) Policy

var policies = map[Faction]policyFactory{
	Infinity: func(_ Options, rng *rand.Rand) Policy {
		return &Chase{rng: rng}
	},
	Knot: func(opts Options, rng *rand.Rand) Policy {
		return &Ambush{lead: opts.AmbushLead, rng: rng}
	},
	Bee: func(opts Options, rng *rand.Rand) Policy {
		return NewWander(opts, rng)
	},
	Pentagram: func(opts Options, rng *rand.Rand) Policy {
		return &Stalk{radius: opts.StalkRadius, chase: &Chase{rng: rng}, wander: NewWander(opts, rng)}
	},
}

// NewPolicy builds the behaviour policy for faction f.
func NewPolicy(f Faction, opts Options, rng *rand.Rand) (Policy, error) {
	build, ok := policies[f]
	if !ok {
		return nil, errors.Errorf("no policy for faction %d", f)
	}
	return build(opts, rng), nil
}
