package game

import (
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/Garsondee/glyphmaze/internal/config"
	"github.com/Garsondee/glyphmaze/internal/ghost"
	"github.com/Garsondee/glyphmaze/internal/glyph"
	"github.com/Garsondee/glyphmaze/internal/grid"
)

// TestSession is a headless session harness for tests and batch reports.
// It drives a Session exactly as the frontend does, minus Ebiten, and keeps
// every emitted event.
type TestSession struct {
	*Session
	Config config.Config
	Level  *grid.Level
	Refs   []*glyph.Reference
	Seen   []Event

	levelText   string
	level       *grid.Level
	verbose     bool
	refsSet     bool
	factions    []ghost.Faction
	logger      *zap.Logger
	sessionOpts []Option
}

// testOptionKind controls the pass in which an option is applied.
type testOptionKind int

const (
	testOptInfra testOptionKind = iota // config, seed, level text and references; applied first
	testOptLevel                       // edit the parsed level
)

// TestOption is a builder function applied during NewTestSession.
type TestOption struct {
	kind testOptionKind
	fn   func(*TestSession)
}

// WithSeed sets the RNG seed for deterministic runs.
func WithSeed(seed int64) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.Config.Sim.Seed = seed
	}}
}

// WithVerbose enables per-tick journal entries.
func WithVerbose(v bool) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.verbose = v
	}}
}

// WithConfig edits the session configuration.
func WithConfig(edit func(*config.Config)) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		edit(&ts.Config)
	}}
}

// WithBaseConfig replaces the default configuration wholesale.
func WithBaseConfig(cfg config.Config) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.Config = cfg
	}}
}

// WithLevel plays lvl instead of the default maze. The level is copied
// before level edits apply.
func WithLevel(lvl *grid.Level) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		cp := *lvl
		ts.level = &cp
	}}
}

// WithLevelText replaces the default maze with an ASCII level.
func WithLevelText(rows ...string) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.levelText = strings.Join(rows, "\n")
	}}
}

// WithReferences replaces the built-in reference glyphs.
func WithReferences(refs []*glyph.Reference) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.Refs = refs
		ts.refsSet = true
	}}
}

// WithLogger routes session logging to log.
func WithLogger(log *zap.Logger) TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.logger = log
	}}
}

// WithNoPlayer runs the ghosts on an empty board.
func WithNoPlayer() TestOption {
	return TestOption{testOptInfra, func(ts *TestSession) {
		ts.sessionOpts = append(ts.sessionOpts, WithoutPlayer())
	}}
}

// WithOnlyGhosts keeps only the ghost spawns of the given factions.
func WithOnlyGhosts(factions ...ghost.Faction) TestOption {
	return TestOption{testOptLevel, func(ts *TestSession) {
		ts.factions = append(ts.factions, factions...)
		keep := make([]grid.Spawn, 0, len(ts.Level.Ghosts))
		for _, sp := range ts.Level.Ghosts {
			f, ok := ghost.FromRune(sp.Glyph)
			if ok && containsFaction(ts.factions, f) {
				keep = append(keep, sp)
			}
		}
		ts.Level.Ghosts = keep
	}}
}

func containsFaction(fs []ghost.Faction, f ghost.Faction) bool {
	for _, x := range fs {
		if x == f {
			return true
		}
	}
	return false
}

// NewTestSession builds a session from the given options in ordered passes:
//  1. Infrastructure (config, seed, level text, references)
//  2. Parse the level
//  3. Level edits
//  4. Session
func NewTestSession(opts ...TestOption) (*TestSession, error) {
	ts := &TestSession{Config: config.Default(), logger: zap.NewNop()}
	ts.Config.Sim.Seed = 1
	for _, o := range opts {
		if o.kind == testOptInfra {
			o.fn(ts)
		}
	}
	switch {
	case ts.level != nil:
		ts.Level = ts.level
	case ts.levelText == "":
		ts.Level = grid.DefaultLevel()
	default:
		lvl, err := grid.ParseLevel(strings.NewReader(ts.levelText))
		if err != nil {
			return nil, errors.Wrap(err, "test level")
		}
		ts.Level = lvl
	}
	for _, o := range opts {
		if o.kind == testOptLevel {
			o.fn(ts)
		}
	}
	if !ts.refsSet {
		ts.Refs = glyph.Builtin(CanvasConfig(ts.Config.Canvas))
	}
	sessionOpts := append([]Option{WithJournal(NewJournal(ts.verbose))}, ts.sessionOpts...)
	s, err := NewSession(ts.Config, ts.Level, ts.Refs, ts.logger, sessionOpts...)
	if err != nil {
		return nil, err
	}
	ts.Session = s
	return ts, nil
}

// RunTicks advances the session n ticks, keeping emitted events in Seen.
func (ts *TestSession) RunTicks(n int) {
	for i := 0; i < n; i++ {
		ts.Step()
		ts.drain()
	}
}

// RunUntil advances up to maxTicks, stopping early if predicate returns
// true. Returns the tick at which the predicate was satisfied, or -1.
func (ts *TestSession) RunUntil(predicate func(*TestSession) bool, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		ts.Step()
		ts.drain()
		if predicate(ts) {
			return ts.Tick()
		}
	}
	return -1
}

// Draw replays pts as one pointer gesture on the canvas. Points are in unit
// coordinates of the canvas surface.
func (ts *TestSession) Draw(pts []glyph.Point) {
	if len(pts) == 0 {
		return
	}
	sf := ts.Canvas().Surface()
	at := func(p glyph.Point) (float64, float64) {
		return sf.X + p.X*sf.W, sf.Y + p.Y*sf.H
	}
	ts.PointerDown(at(pts[0]))
	for _, p := range pts[1:] {
		ts.PointerMove(at(p))
	}
	ts.PointerUp()
	ts.drain()
}

// DrawBuiltin draws the built-in glyph of faction f.
func (ts *TestSession) DrawBuiltin(f ghost.Faction) {
	pts, _ := glyph.BuiltinPath(f.String())
	ts.Draw(pts)
}

// Count returns how many events of kind have been seen.
func (ts *TestSession) Count(kind EventKind) int {
	n := 0
	for _, e := range ts.Seen {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// GhostOf returns the first ghost of faction f.
func (ts *TestSession) GhostOf(f ghost.Faction) (*Ghost, bool) {
	for _, g := range ts.Ghosts() {
		if g.Faction == f {
			return g, true
		}
	}
	return nil, false
}

func (ts *TestSession) drain() {
	ts.Seen = append(ts.Seen, ts.Events()...)
}
