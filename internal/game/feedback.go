package game

import "image/color"

// FlashPulse is the length of each on and off phase of the miss flash.
const FlashPulse = 0.1

// FlashColor tints the canvas while the flash is on.
var FlashColor = color.NRGBA{R: 255, A: 128}

// FlashPhase is a step of the miss flash.
type FlashPhase int

const (
	FlashIdle FlashPhase = iota
	FlashOn
	FlashGap
	FlashOnAgain
)

// Flash signals a failed match: on, off, on, then idle, each phase lasting
// FlashPulse seconds of simulation time.
type Flash struct {
	phase   FlashPhase
	elapsed float64
}

// Trigger starts the pattern from the beginning, restarting one in progress.
func (f *Flash) Trigger() {
	f.phase = FlashOn
	f.elapsed = 0
}

// Reset stops the flash.
func (f *Flash) Reset() {
	f.phase = FlashIdle
	f.elapsed = 0
}

// Update advances the pattern by dt seconds.
func (f *Flash) Update(dt float64) {
	if f.phase == FlashIdle {
		return
	}
	f.elapsed += dt
	// Tolerance keeps five 0.02s ticks equal to one pulse.
	for f.phase != FlashIdle && f.elapsed >= FlashPulse-1e-9 {
		f.elapsed -= FlashPulse
		f.phase++
		if f.phase > FlashOnAgain {
			f.Reset()
		}
	}
}

// Phase returns the current step.
func (f *Flash) Phase() FlashPhase { return f.phase }

// Visible reports whether the tint should be drawn.
func (f *Flash) Visible() bool {
	return f.phase == FlashOn || f.phase == FlashOnAgain
}
