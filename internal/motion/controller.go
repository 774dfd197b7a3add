package motion

import (
	"github.com/Garsondee/glyphmaze/internal/grid"
	"go.uber.org/zap"
)

// Epsilon is the arrival distance below which an agent snaps to its target.
const Epsilon = 0.001

// State is the motion state carried by one agent.
type State struct {
	Pos        Vec2
	Target     Vec2 // next grid-aligned point; equals Pos while idle
	Transiting bool
	Dir        Direction // committed direction
	Buffered   Direction // queued player input
	Facing     Direction // last non-None committed direction
}

// NewState returns an idle, grid-aligned state at c.
func NewState(c grid.Cell) State {
	p := CellVec(c)
	return State{Pos: p, Target: p}
}

// Cell returns the cell nearest the agent's current position.
func (s *State) Cell() grid.Cell {
	return s.Pos.Round()
}

// TargetCell returns the cell the agent is heading for, or its resting cell.
func (s *State) TargetCell() grid.Cell {
	return s.Target.Round()
}

// Controller advances agent motion on a discrete grid. It is shared by the
// player and the ghosts; each agent owns its State.
type Controller struct {
	occ   grid.Occupancy
	speed float64
	log   *zap.Logger
}

// NewController returns a controller moving agents at speed tiles per second.
// A nil occupancy disables movement: agents stay idle.
func NewController(occ grid.Occupancy, speed float64, log *zap.Logger) *Controller {
	if log == nil {
		log = zap.NewNop()
	}
	if occ == nil {
		log.Error("motion controller has no occupancy; movement disabled")
	}
	if speed <= 0 {
		log.Warn("non-positive agent speed; agents will not advance", zap.Float64("speed", speed))
	}
	return &Controller{occ: occ, speed: speed, log: log}
}

// Enabled reports whether the controller can move agents.
func (c *Controller) Enabled() bool {
	return c.occ != nil
}

// Speed returns the travel speed in tiles per second.
func (c *Controller) Speed() float64 { return c.speed }

// CanMove reports whether the cell one step from the agent's resting cell is open.
func (c *Controller) CanMove(s *State, d Direction) bool {
	if c.occ == nil || d == None {
		return false
	}
	return !c.occ.IsBlocked(s.Cell().Add(d.Delta()))
}

// Begin starts a transit in direction d. Requests made while transiting or
// toward a blocked cell are rejected.
func (c *Controller) Begin(s *State, d Direction) bool {
	if s.Transiting || !c.CanMove(s, d) {
		return false
	}
	s.Pos = CellVec(s.Cell())
	s.Target = CellVec(s.Cell().Add(d.Delta()))
	s.Transiting = true
	s.Dir = d
	s.Facing = d
	return true
}

// Advance moves a transiting agent toward its target by speed*dt. It returns
// true on the tick the agent arrives and becomes idle.
func (c *Controller) Advance(s *State, dt float64) bool {
	if !s.Transiting {
		return false
	}
	s.Pos = s.Pos.MoveTowards(s.Target, c.speed*dt)
	if s.Pos.Dist(s.Target) < Epsilon {
		s.Pos = s.Target
		s.Transiting = false
		return true
	}
	return false
}

// Buffer queues a player direction. It survives until it becomes legal.
func (c *Controller) Buffer(s *State, d Direction) {
	if d != None {
		s.Buffered = d
	}
}

// StepPlayer runs one tick of player motion: when idle it prefers the
// buffered direction, then the current one, else stops.
func (c *Controller) StepPlayer(s *State, dt float64) bool {
	if !s.Transiting {
		switch {
		case s.Buffered != None && c.Begin(s, s.Buffered):
			s.Buffered = None
		case s.Dir != None && c.Begin(s, s.Dir):
		default:
			s.Dir = None
		}
	}
	return c.Advance(s, dt)
}

// StepAgent runs one tick for a policy-driven agent. d is only consumed when
// the agent is idle.
func (c *Controller) StepAgent(s *State, d Direction, dt float64) bool {
	if !s.Transiting && d != None {
		c.Begin(s, d)
	}
	return c.Advance(s, dt)
}
