package game

import (
	"fmt"
	"math/rand"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Garsondee/glyphmaze/internal/config"
	"github.com/Garsondee/glyphmaze/internal/ghost"
	"github.com/Garsondee/glyphmaze/internal/glyph"
	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/motion"
)

// playerHalfExtent is the half side of the player's coin pickup box, in tiles.
const playerHalfExtent = 0.25

// Ghost is one faction-driven pursuer.
type Ghost struct {
	Index   int
	Faction ghost.Faction
	Spawn   grid.Cell
	State   motion.State

	brain    *ghost.Brain
	rng      *rand.Rand
	started  bool // first decision is a random legal move
	touching bool // player inside the trigger radius last tick
}

// Label is the journal actor name of the ghost.
func (g *Ghost) Label() string { return fmt.Sprintf("G%d", g.Index) }

// Option configures a Session at construction.
type Option func(*Session)

// WithJournal records session events into j instead of a private journal.
func WithJournal(j *Journal) Option {
	return func(s *Session) {
		if j != nil {
			s.journal = j
		}
	}
}

// WithoutPlayer runs the ghosts with no player on the board.
func WithoutPlayer() Option {
	return func(s *Session) { s.hasPlayer = false }
}

// WithCanvasSurface places the drawing canvas on screen. The default is the
// unit square.
func WithCanvasSurface(surface glyph.Surface) Option {
	return func(s *Session) { s.surface = surface }
}

// Session is one round of play: the maze, the agents, the coins and the
// drawing canvas, advanced one fixed tick at a time.
type Session struct {
	cfg     config.Config
	level   *grid.Level
	refs    []*glyph.Reference
	log     *zap.Logger
	journal *Journal

	playerCtl *motion.Controller
	ghostCtl  *motion.Controller
	canvas    *glyph.Canvas
	matcher   *glyph.Matcher
	surface   glyph.Surface

	hasPlayer bool
	player    motion.State
	ghosts    []*Ghost
	disguise  ghost.Disguise
	coins     *CoinField
	flash     Flash

	tick      int
	rounds    int
	paused    bool
	won       bool
	outcome   Outcome
	events    []Event
	lastMatch glyph.Result
	hasMatch  bool
	lastX     float64
	lastY     float64
}

// NewSession builds a round on level. refs are the reference glyphs indexed
// by faction; nil slots are skipped during matching.
func NewSession(cfg config.Config, level *grid.Level, refs []*glyph.Reference, log *zap.Logger, opts ...Option) (*Session, error) {
	if level == nil || level.Grid == nil {
		return nil, errors.New("session needs a level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "session config")
	}
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		cfg:       cfg,
		level:     level,
		refs:      refs,
		log:       log,
		journal:   NewJournal(false),
		hasPlayer: true,
		surface:   glyph.Surface{W: 1, H: 1},
	}
	for _, o := range opts {
		o(s)
	}
	s.canvas = glyph.NewCanvas(CanvasConfig(cfg.Canvas), s.surface)
	s.matcher = glyph.NewMatcher(cfg.Match.Threshold, log.Named("match"))
	s.playerCtl = motion.NewController(level.Grid, cfg.Motion.PlayerSpeed, log.Named("player"))
	s.ghostCtl = motion.NewController(level.Grid, cfg.Motion.GhostSpeed, log.Named("ghost"))
	if err := s.spawn(); err != nil {
		return nil, err
	}
	return s, nil
}

func ghostOptions(c config.GhostConfig) ghost.Options {
	return ghost.Options{
		AmbushLead:     c.AmbushLead,
		StalkRadius:    c.StalkRadius,
		WanderRange:    c.WanderRange,
		WanderPatience: c.WanderPatience,
		PathBudget:     c.PathBudget,
	}
}

// spawn places every agent and coin at its level position and clears the
// round state. Ghost RNGs are reseeded so every round replays identically
// for the same input.
func (s *Session) spawn() error {
	ghosts := make([]*Ghost, 0, len(s.level.Ghosts))
	for i, sp := range s.level.Ghosts {
		f, ok := ghost.FromRune(sp.Glyph)
		if !ok {
			return errors.Errorf("ghost %d at %s: unknown spawn glyph %q", i, sp.Cell, sp.Glyph)
		}
		rng := rand.New(rand.NewSource(s.cfg.Sim.Seed + int64(i) + 1)) // #nosec G404 -- deterministic sim
		b, err := ghost.NewBrain(f, &s.disguise, ghostOptions(s.cfg.Ghost), rng)
		if err != nil {
			return errors.Wrapf(err, "ghost %d", i)
		}
		ghosts = append(ghosts, &Ghost{
			Index:   i,
			Faction: f,
			Spawn:   sp.Cell,
			State:   motion.NewState(sp.Cell),
			brain:   b,
			rng:     rng,
		})
	}
	s.ghosts = ghosts
	s.player = motion.NewState(s.level.Player)
	s.coins = NewCoinField(s.level.Coins, s.cfg.Motion.CoinRadius)
	s.disguise.Clear()
	s.flash.Reset()
	s.tick = 0
	s.won = false
	s.outcome = Playing
	s.events = nil
	s.lastMatch = glyph.NoMatch
	s.hasMatch = false
	s.rounds++

	s.journal.Add(0, "--", "round", "start", fmt.Sprintf("round %d", s.rounds), float64(s.coins.Total()))
	s.log.Info("round started",
		zap.Int("round", s.rounds),
		zap.Int("ghosts", len(s.ghosts)),
		zap.Int("coins", s.coins.Total()),
		zap.Int64("seed", s.cfg.Sim.Seed))
	return nil
}

// Reset reloads the round: any stroke in progress is discarded, agents and
// coins respawn and the disguise is cleared.
func (s *Session) Reset() {
	s.cancelStroke("reset")
	if err := s.spawn(); err != nil {
		// The same level spawned successfully in NewSession.
		s.log.Error("respawn failed", zap.Error(err))
	}
}

// Step runs one fixed simulation tick. Each agent moves exactly once; a
// ghost at rest decides before it moves.
func (s *Session) Step() {
	if s.paused {
		return
	}
	s.tick++
	dt := s.cfg.Dt()

	if s.hasPlayer && s.playerCtl.StepPlayer(&s.player, dt) {
		s.journal.AddVerbose(s.tick, "P", "move", "arrive", s.player.Cell().String(), 0)
	}
	for _, g := range s.ghosts {
		d := motion.None
		if !g.State.Transiting {
			d = s.decide(g)
		}
		s.ghostCtl.StepAgent(&g.State, d, dt)
	}
	if s.hasPlayer {
		s.collectCoins()
		s.checkContacts()
	}
	s.flash.Update(dt)
}

func (s *Session) decide(g *Ghost) motion.Direction {
	var d motion.Direction
	if !g.started {
		g.started = true
		d = ghost.RandomLegal(s.level.Grid, g.State.Cell(), g.rng)
	} else {
		d = g.brain.Decide(ghost.Input{
			Pos:          g.State.Cell(),
			Dir:          g.State.Dir,
			Player:       s.player.Pos,
			PlayerFacing: s.player.Facing,
			HasPlayer:    s.hasPlayer,
			Occ:          s.level.Grid,
		})
	}
	s.journal.AddVerbose(s.tick, g.Label(), "ghost", "decide", d.String(), 0)
	return d
}

func (s *Session) collectCoins() {
	for _, c := range s.coins.Collect(s.player.Pos, playerHalfExtent) {
		s.emit(Event{Kind: EventCoinCollected, Cell: c})
		s.journal.Add(s.tick, "P", "coin", "collected", c.String(), float64(s.coins.Remaining()))
	}
	if s.won || !s.coins.Cleared() {
		return
	}
	s.won = true
	if s.outcome == Playing {
		s.outcome = Won
	}
	s.emit(Event{Kind: EventWin})
	s.journal.Add(s.tick, "--", "round", "win", fmt.Sprintf("%d coins", s.coins.Total()), 0)
	s.log.Info("all coins collected", zap.Int("tick", s.tick))
}

// checkContacts fires on the tick the player enters a ghost's trigger
// radius, never while the overlap persists.
func (s *Session) checkContacts() {
	for _, g := range s.ghosts {
		touching := s.player.Pos.Dist(g.State.Pos) < s.cfg.Motion.TriggerRadius
		if touching && !g.touching {
			s.contact(g)
		}
		g.touching = touching
	}
}

func (s *Session) contact(g *Ghost) {
	ev := Event{Ghost: g.Index, Faction: g.Faction, Cell: s.player.Cell()}
	if s.disguise.Is(g.Faction) {
		ev.Kind = EventSafePassage
		s.emit(ev)
		s.journal.Add(s.tick, g.Label(), "ghost", "safe_passage", g.Faction.String(), 0)
		return
	}
	ev.Kind = EventCaught
	s.emit(ev)
	if s.outcome == Playing {
		s.outcome = Caught
	}
	s.journal.Add(s.tick, g.Label(), "ghost", "caught", fmt.Sprintf("%s at %s", g.Faction, ev.Cell), 0)
	s.log.Info("player caught", zap.String("ghost", g.Label()), zap.Stringer("faction", g.Faction))
}

// Press queues a player direction; it takes effect once legal.
func (s *Session) Press(d motion.Direction) {
	if s.paused || !s.hasPlayer {
		return
	}
	s.playerCtl.Buffer(&s.player, d)
}

// PointerDown starts a drawing gesture when (x, y) is on the canvas.
func (s *Session) PointerDown(x, y float64) {
	if s.paused || !s.canvas.Surface().Contains(x, y) {
		return
	}
	s.canvas.BeginStroke()
	s.canvas.PaintAt(x, y)
	s.lastX, s.lastY = x, y
}

// PointerMove extends the gesture. Leaving the canvas aborts it.
func (s *Session) PointerMove(x, y float64) {
	if !s.canvas.Active() {
		return
	}
	if !s.canvas.Surface().Contains(x, y) {
		s.cancelStroke("left canvas")
		return
	}
	s.canvas.PaintLine(s.lastX, s.lastY, x, y)
	s.lastX, s.lastY = x, y
}

// PointerUp completes the gesture and matches it against the references.
func (s *Session) PointerUp() {
	n, ok := s.canvas.EndStroke()
	if !ok {
		return
	}
	s.recognize(n)
}

// PointerExit aborts any gesture in progress without matching it.
func (s *Session) PointerExit() {
	s.cancelStroke("pointer exit")
}

func (s *Session) cancelStroke(reason string) {
	if !s.canvas.Active() {
		return
	}
	s.canvas.Cancel()
	s.journal.Add(s.tick, "P", "glyph", "cancelled", reason, 0)
	s.log.Debug("drawing cancelled", zap.String("reason", reason))
}

func (s *Session) recognize(n *glyph.Normalized) {
	r := s.matcher.BestMatch(n, s.refs)
	s.hasMatch = true
	if r.OK() {
		if f, ok := ghost.FromIndex(r.Index); ok {
			s.lastMatch = r
			s.disguise.Set(f)
			s.emit(Event{Kind: EventDisguised, Faction: f, Score: r.Score})
			s.journal.Add(s.tick, "P", "glyph", "match", f.String(), r.Score)
			s.log.Info("disguise set", zap.Stringer("faction", f), zap.Float64("score", r.Score))
			return
		}
		s.log.Warn("matched glyph has no faction", zap.Int("index", r.Index))
		r = glyph.Result{Index: -1, Score: r.Score}
	}
	s.lastMatch = r
	s.flash.Trigger()
	s.emit(Event{Kind: EventNoMatch, Score: r.Score})
	s.journal.Add(s.tick, "P", "glyph", "no_match", fmt.Sprintf("best %.2f", r.Score), r.Score)
}

func (s *Session) emit(e Event) {
	e.Tick = s.tick
	s.events = append(s.events, e)
}

// Events returns and clears the events emitted since the last call.
func (s *Session) Events() []Event {
	out := s.events
	s.events = nil
	return out
}

// SetPaused freezes or resumes the simulation. Pausing aborts a drawing.
func (s *Session) SetPaused(p bool) {
	if p {
		s.cancelStroke("paused")
	}
	s.paused = p
}

// Paused reports whether the simulation is frozen.
func (s *Session) Paused() bool { return s.paused }

// SetCanvasSurface moves the canvas on screen. A gesture in progress is
// discarded.
func (s *Session) SetCanvasSurface(surface glyph.Surface) {
	s.cancelStroke("canvas moved")
	s.canvas.SetSurface(surface)
}

// Canvas exposes the drawing canvas for rendering.
func (s *Session) Canvas() *glyph.Canvas { return s.canvas }

// Level returns the level being played.
func (s *Session) Level() *grid.Level { return s.level }

// Journal returns the session's event journal.
func (s *Session) Journal() *Journal { return s.journal }

// Tick returns the number of ticks run this round.
func (s *Session) Tick() int { return s.tick }

// Outcome returns the state of the round.
func (s *Session) Outcome() Outcome { return s.outcome }

// Flash exposes the miss-flash state.
func (s *Session) Flash() *Flash { return &s.flash }

// Coins returns the coin field of the round.
func (s *Session) Coins() *CoinField { return s.coins }

// Ghosts returns the live ghosts. Callers must not modify them.
func (s *Session) Ghosts() []*Ghost { return s.ghosts }

// Player returns the player's motion state.
func (s *Session) Player() motion.State { return s.player }

// Disguise returns the current disguise and whether one is worn.
func (s *Session) Disguise() (ghost.Faction, bool) { return s.disguise.Current() }

// GhostView is a ghost's state in a Snapshot.
type GhostView struct {
	Index     int
	Faction   ghost.Faction
	Pos       motion.Vec2
	Dir       motion.Direction
	Disguised bool // the player wears this ghost's faction
}

// Snapshot is a read-only copy of the session state.
type Snapshot struct {
	Tick           int
	Round          int
	Outcome        Outcome
	Paused         bool
	HasPlayer      bool
	Player         motion.Vec2
	PlayerFacing   motion.Direction
	Ghosts         []GhostView
	Disguise       ghost.Faction
	Disguised      bool
	CoinsTotal     int
	CoinsRemaining int
	Flash          bool
	Drawing        bool
	LastMatch      glyph.Result
	HasMatch       bool
}

// Snapshot copies the current state.
func (s *Session) Snapshot() Snapshot {
	f, disguised := s.disguise.Current()
	snap := Snapshot{
		Tick:           s.tick,
		Round:          s.rounds,
		Outcome:        s.outcome,
		Paused:         s.paused,
		HasPlayer:      s.hasPlayer,
		Player:         s.player.Pos,
		PlayerFacing:   s.player.Facing,
		Ghosts:         make([]GhostView, len(s.ghosts)),
		Disguise:       f,
		Disguised:      disguised,
		CoinsTotal:     s.coins.Total(),
		CoinsRemaining: s.coins.Remaining(),
		Flash:          s.flash.Visible(),
		Drawing:        s.canvas.Active(),
		LastMatch:      s.lastMatch,
		HasMatch:       s.hasMatch,
	}
	for i, g := range s.ghosts {
		snap.Ghosts[i] = GhostView{
			Index:     g.Index,
			Faction:   g.Faction,
			Pos:       g.State.Pos,
			Dir:       g.State.Dir,
			Disguised: s.disguise.Is(g.Faction),
		}
	}
	return snap
}
