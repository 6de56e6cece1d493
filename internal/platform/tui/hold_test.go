package tui

import (
	"testing"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// heldFor counts the ticks an action stays down after the presses
// scheduled at the given ticks.
func heldFor(h *HoldTracker, a core.Action, presses map[int]bool, ticks int) int {
	held := 0
	for i := 0; i < ticks; i++ {
		if presses[i] {
			h.Press(a)
		}
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if frame.Has(a) {
			held++
		}
	}
	return held
}

func TestHoldTrackerSinglePress(t *testing.T) {
	h := NewHoldTracker(60)
	got := heldFor(h, core.ActionJump, map[int]bool{0: true}, 120)
	// 550ms is a little over 33 ticks at 60Hz
	if got != 34 {
		t.Errorf("held for %d ticks, want 34", got)
	}
}

func TestHoldTrackerRepeatExtends(t *testing.T) {
	h := NewHoldTracker(60)
	presses := map[int]bool{0: true}
	// Auto-repeat every 2 ticks from tick 30 to tick 60
	for i := 30; i <= 60; i += 2 {
		presses[i] = true
	}
	got := heldFor(h, core.ActionJump, presses, 200)
	// Last repeat at tick 60 keeps it down for 8 more ticks
	if got != 68 {
		t.Errorf("held for %d ticks, want 68", got)
	}
}

func TestHoldTrackerIgnoresOneShot(t *testing.T) {
	h := NewHoldTracker(60)
	h.Press(core.ActionPause)
	if h.Held(core.ActionPause) {
		t.Error("one-shot action must not be held")
	}
}

func TestHoldTrackerReleaseAndReset(t *testing.T) {
	h := NewHoldTracker(60)
	h.Press(core.ActionJump)
	h.Press(core.ActionDuck)

	h.Release(core.ActionJump)
	if h.Held(core.ActionJump) {
		t.Error("jump still held after release")
	}
	if !h.Held(core.ActionDuck) {
		t.Error("duck should still be held")
	}

	h.Reset()
	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionDuck) {
		t.Error("duck held after reset")
	}
}
