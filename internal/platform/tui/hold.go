package tui

import (
	"time"

	"github.com/vovakirdan/tui-runner/internal/core"
)

// Hold windows. Terminals deliver key presses and auto-repeats but no
// releases, so a holdable action stays down until its key goes quiet.
const (
	// holdInitial must outlast the usual auto-repeat delay.
	holdInitial = 550 * time.Millisecond
	holdRepeat  = 120 * time.Millisecond
)

// HoldTracker turns key presses into button levels for holdable actions.
type HoldTracker struct {
	now      int                 // Current tick
	deadline map[core.Action]int // Tick at which each hold lapses
	initial  int
	repeat   int
}

// NewHoldTracker creates a tracker for the given tick rate.
func NewHoldTracker(tickRate int) *HoldTracker {
	rt := core.RuntimeConfig{TickRate: tickRate}
	tick := rt.TickDuration()
	return &HoldTracker{
		deadline: make(map[core.Action]int),
		initial:  ticksCeil(holdInitial, tick),
		repeat:   ticksCeil(holdRepeat, tick),
	}
}

func ticksCeil(d, tick time.Duration) int {
	return int((d + tick - 1) / tick)
}

// Press records a key press. A press while the action is already held is
// treated as auto-repeat and extends the hold by the shorter window.
func (h *HoldTracker) Press(a core.Action) {
	if !a.Holdable() {
		return
	}
	if h.Held(a) {
		h.deadline[a] = max(h.deadline[a], h.now+h.repeat)
		return
	}
	h.deadline[a] = h.now + h.initial
}

// Release drops a hold immediately.
func (h *HoldTracker) Release(a core.Action) {
	delete(h.deadline, a)
}

// Held reports whether the action is currently down.
func (h *HoldTracker) Held(a core.Action) bool {
	d, ok := h.deadline[a]
	return ok && h.now < d
}

// Apply marks every held action in the frame and advances one tick.
func (h *HoldTracker) Apply(frame *core.InputFrame) {
	for a := range h.deadline {
		if h.Held(a) {
			frame.Set(a)
		} else {
			delete(h.deadline, a)
		}
	}
	h.now++
}

// Reset drops all holds.
func (h *HoldTracker) Reset() {
	clear(h.deadline)
}
