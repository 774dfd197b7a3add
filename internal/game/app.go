package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/Garsondee/glyphmaze/internal/ghost"
	"github.com/Garsondee/glyphmaze/internal/glyph"
	"github.com/Garsondee/glyphmaze/internal/grid"
	"github.com/Garsondee/glyphmaze/internal/motion"
)

const (
	tileSize    = 24
	panelGap    = 16
	canvasSize  = 256
	statusLines = 3
	logHeight   = 180
)

var factionColors = [len(ghost.Factions)]color.RGBA{
	ghost.Infinity:  {R: 230, G: 70, B: 70, A: 255},
	ghost.Knot:      {R: 240, G: 150, B: 200, A: 255},
	ghost.Bee:       {R: 80, G: 200, B: 230, A: 255},
	ghost.Pentagram: {R: 240, G: 160, B: 60, A: 255},
}

var dirKeys = []struct {
	key ebiten.Key
	dir motion.Direction
}{
	{ebiten.KeyW, motion.Up},
	{ebiten.KeyArrowUp, motion.Up},
	{ebiten.KeyS, motion.Down},
	{ebiten.KeyArrowDown, motion.Down},
	{ebiten.KeyA, motion.Left},
	{ebiten.KeyArrowLeft, motion.Left},
	{ebiten.KeyD, motion.Right},
	{ebiten.KeyArrowRight, motion.Right},
}

// App is the Ebiten frontend: it samples input, runs the session at its
// fixed tick rate and draws the maze, the canvas and the event log.
type App struct {
	session *Session
	log     *zap.Logger
	tps     int

	width, height int
	mazeW, mazeH  int
	surface       glyph.Surface
	canvasImg     *ebiten.Image
	messages      *MessageLog

	tickAccum  float64
	prevKeys   map[ebiten.Key]bool
	prevMouse  bool
	prevMouseX int
	prevMouseY int
}

// NewApp wraps s for display. ticksPerSecond is the simulation rate,
// independent of the display refresh.
func NewApp(s *Session, ticksPerSecond int, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	g := s.Level().Grid
	a := &App{
		session:  s,
		log:      log,
		tps:      ticksPerSecond,
		mazeW:    g.Cols() * tileSize,
		mazeH:    g.Rows() * tileSize,
		messages: NewMessageLog(),
		prevKeys: map[ebiten.Key]bool{},
	}
	a.surface = glyph.Surface{X: float64(a.mazeW + panelGap), Y: panelGap, W: canvasSize, H: canvasSize}
	a.width = a.mazeW + panelGap*2 + canvasSize
	a.height = a.mazeH
	if h := panelGap + canvasSize + statusLines*hudLineHeight + logHeight + panelGap; h > a.height {
		a.height = h
	}
	s.SetCanvasSurface(a.surface)
	res := s.Canvas().Config().Resolution
	a.canvasImg = ebiten.NewImage(res, res)
	return a
}

// WindowSize returns the screen size the layout is designed for.
func (a *App) WindowSize() (int, int) { return a.width, a.height }

func (a *App) Update() error {
	a.handleInput()

	if !a.session.Paused() && a.session.Outcome() == Playing {
		a.tickAccum += float64(a.tps) / float64(ebiten.TPS())
		for a.tickAccum >= 1.0 {
			a.tickAccum -= 1.0
			a.session.Step()
		}
	}
	for _, e := range a.session.Events() {
		a.messages.Add(e)
		a.log.Debug("session event", zap.Stringer("kind", e.Kind), zap.Int("tick", e.Tick))
	}
	return nil
}

// handleInput forwards keyboard and mouse input (keys edge-triggered).
func (a *App) handleInput() {
	currentKeys := map[ebiten.Key]bool{}
	pressed := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !a.prevKeys[k]
	}

	if pressed(ebiten.KeyEscape) {
		a.session.SetPaused(!a.session.Paused())
	}
	if pressed(ebiten.KeyR) {
		a.session.Reset()
		a.tickAccum = 0
		a.log.Info("round reset")
	}
	for _, dk := range dirKeys {
		if pressed(dk.key) {
			a.session.Press(dk.dir)
		}
	}

	down := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	mx, my := ebiten.CursorPosition()
	switch {
	case down && !a.prevMouse:
		a.session.PointerDown(float64(mx), float64(my))
	case down && (mx != a.prevMouseX || my != a.prevMouseY):
		a.session.PointerMove(float64(mx), float64(my))
	case !down && a.prevMouse:
		a.session.PointerUp()
	}
	a.prevMouse = down
	a.prevMouseX, a.prevMouseY = mx, my

	a.prevKeys = currentKeys
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 8, G: 8, B: 14, A: 255})
	snap := a.session.Snapshot()
	a.drawMaze(screen, snap)
	a.drawCanvas(screen, snap)
	a.drawStatus(screen, snap)

	logY := panelGap + canvasSize + statusLines*hudLineHeight + 8
	a.messages.Draw(screen, int(a.surface.X), logY, canvasSize, a.height-logY-panelGap)
}

func (a *App) drawMaze(screen *ebiten.Image, snap Snapshot) {
	g := a.session.Level().Grid
	wallCol := color.RGBA{R: 30, G: 40, B: 150, A: 255}
	for y := 0; y < g.Rows(); y++ {
		for x := 0; x < g.Cols(); x++ {
			if g.IsBlocked(grid.Cell{X: x, Y: y}) {
				vector.FillRect(screen, float32(x*tileSize), float32(y*tileSize), tileSize, tileSize, wallCol, false)
			}
		}
	}

	coinCol := color.RGBA{R: 240, G: 220, B: 120, A: 255}
	for _, c := range a.session.Coins().Cells() {
		cx, cy := tileCentre(motion.CellVec(c))
		vector.FillCircle(screen, cx, cy, 3, coinCol, true)
	}

	for _, gv := range snap.Ghosts {
		cx, cy := tileCentre(gv.Pos)
		col := factionColors[gv.Faction.Index()]
		vector.FillCircle(screen, cx, cy, tileSize*0.4, col, true)
		if gv.Disguised {
			vector.StrokeCircle(screen, cx, cy, tileSize*0.5, 2, color.RGBA{R: 255, G: 255, B: 255, A: 200}, true)
		}
	}

	if snap.HasPlayer {
		cx, cy := tileCentre(snap.Player)
		vector.FillCircle(screen, cx, cy, tileSize*0.4, color.RGBA{R: 250, G: 235, B: 40, A: 255}, true)
		if snap.Disguised {
			vector.StrokeCircle(screen, cx, cy, tileSize*0.45, 3, factionColors[snap.Disguise.Index()], true)
		}
	}
}

func tileCentre(p motion.Vec2) (float32, float32) {
	return float32(p.X*tileSize + tileSize/2), float32(p.Y*tileSize + tileSize/2)
}

func (a *App) drawCanvas(screen *ebiten.Image, snap Snapshot) {
	x, y := float32(a.surface.X), float32(a.surface.Y)
	w, h := float32(a.surface.W), float32(a.surface.H)
	vector.FillRect(screen, x, y, w, h, color.RGBA{R: 20, G: 20, B: 28, A: 255}, false)

	a.canvasImg.WritePixels(a.session.Canvas().Image().Pix)
	op := &ebiten.DrawImageOptions{}
	res := float64(a.session.Canvas().Config().Resolution)
	op.GeoM.Scale(a.surface.W/res, a.surface.H/res)
	op.GeoM.Translate(a.surface.X, a.surface.Y)
	screen.DrawImage(a.canvasImg, op)

	if snap.Flash {
		vector.FillRect(screen, x, y, w, h, FlashColor, false)
	}
	vector.StrokeRect(screen, x-1, y-1, w+2, h+2, 2.0, color.RGBA{R: 70, G: 70, B: 110, A: 255}, false)
}

func (a *App) drawStatus(screen *ebiten.Image, snap Snapshot) {
	disguise := "none"
	if snap.Disguised {
		disguise = snap.Disguise.String()
	}
	state := snap.Outcome.String()
	if snap.Paused {
		state = "PAUSED"
	}
	lines := [statusLines]string{
		fmt.Sprintf("coins %d/%d  disguise: %s", snap.CoinsTotal-snap.CoinsRemaining, snap.CoinsTotal, disguise),
		fmt.Sprintf("round %d  %s  T=%d", snap.Round, state, snap.Tick),
		"WASD/arrows move  ESC pause  R reset",
	}
	x := int(a.surface.X)
	y := int(a.surface.Y+a.surface.H) + 4
	for i, l := range lines {
		ebitenutil.DebugPrintAt(screen, l, x, y+i*hudLineHeight)
	}

	if snap.Outcome != Playing {
		msg := "ALL COINS COLLECTED - R to play again"
		if snap.Outcome == Caught {
			msg = "CAUGHT - R to try again"
		}
		bx, by := float32(a.mazeW/2-130), float32(a.mazeH/2-12)
		vector.FillRect(screen, bx, by, 260, 24, color.RGBA{R: 0, G: 0, B: 0, A: 200}, false)
		ebitenutil.DebugPrintAt(screen, msg, int(bx)+8, int(by)+4)
	}
}

func (a *App) Layout(_, _ int) (int, int) {
	return a.width, a.height
}
