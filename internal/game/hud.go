package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	hudMaxEntries = 40
	hudLineHeight = 14
)

// HUDEntry is a single line in the message log.
type HUDEntry struct {
	Tick    int
	Kind    EventKind
	Message string
}

// MessageLog is a ring buffer of session events rendered on-screen.
type MessageLog struct {
	entries []HUDEntry
	head    int
	count   int
}

// NewMessageLog creates a message log with a fixed capacity.
func NewMessageLog() *MessageLog {
	return &MessageLog{
		entries: make([]HUDEntry, hudMaxEntries),
	}
}

// Add appends an entry to the log.
func (ml *MessageLog) Add(e Event) {
	ml.entries[ml.head] = HUDEntry{
		Tick:    e.Tick,
		Kind:    e.Kind,
		Message: e.String(),
	}
	ml.head = (ml.head + 1) % hudMaxEntries
	if ml.count < hudMaxEntries {
		ml.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (ml *MessageLog) Recent() []HUDEntry {
	result := make([]HUDEntry, ml.count)
	for i := 0; i < ml.count; i++ {
		idx := (ml.head - ml.count + i + hudMaxEntries) % hudMaxEntries
		result[i] = ml.entries[idx]
	}
	return result
}

func kindColor(k EventKind) color.RGBA {
	switch k {
	case EventCaught, EventNoMatch:
		return color.RGBA{R: 210, G: 70, B: 70, A: 255}
	case EventDisguised, EventSafePassage:
		return color.RGBA{R: 120, G: 90, B: 210, A: 255}
	case EventWin:
		return color.RGBA{R: 90, G: 210, B: 110, A: 255}
	default:
		return color.RGBA{R: 210, G: 190, B: 70, A: 255}
	}
}

// Draw renders the newest entries that fit in the panel at (x, y).
func (ml *MessageLog) Draw(screen *ebiten.Image, x, y, w, h int) {
	vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), color.RGBA{R: 10, G: 10, B: 16, A: 248}, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.0, color.RGBA{R: 50, G: 50, B: 80, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENTS", x+6, y+2)

	entries := ml.Recent()
	maxVisible := (h - 20) / hudLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	ly := y + 18
	for _, e := range entries {
		vector.FillRect(screen, float32(x+5), float32(ly+4), 3, 6, kindColor(e.Kind), false)
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%4d %s", e.Tick, e.Message), x+12, ly)
		ly += hudLineHeight
	}
}
