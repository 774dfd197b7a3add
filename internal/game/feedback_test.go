package game

import "testing"

func TestFlash_Pattern(t *testing.T) {
	var f Flash
	if f.Visible() {
		t.Fatal("idle flash should be hidden")
	}
	f.Trigger()
	steps := []struct {
		dt    float64
		phase FlashPhase
	}{
		{0.05, FlashOn},
		{0.05, FlashGap},
		{0.1, FlashOnAgain},
		{0.09, FlashOnAgain},
		{0.01, FlashIdle},
	}
	for i, s := range steps {
		f.Update(s.dt)
		if f.Phase() != s.phase {
			t.Fatalf("step %d: phase=%d, want %d", i, f.Phase(), s.phase)
		}
	}
}

func TestFlash_RetriggerRestarts(t *testing.T) {
	var f Flash
	f.Trigger()
	f.Update(0.15)
	if f.Phase() != FlashGap {
		t.Fatalf("phase=%d, want gap", f.Phase())
	}
	f.Trigger()
	if f.Phase() != FlashOn || !f.Visible() {
		t.Fatal("trigger should restart the pattern")
	}
}

func TestFlash_LargeStepFinishes(t *testing.T) {
	var f Flash
	f.Trigger()
	f.Update(1)
	if f.Phase() != FlashIdle {
		t.Fatalf("phase=%d after a long step, want idle", f.Phase())
	}
}
