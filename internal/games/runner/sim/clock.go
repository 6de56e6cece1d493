package sim

// TickMs is the length of one 60 Hz reference tick in milliseconds.
// Physics constants are expressed per reference tick.
const TickMs = 1000.0 / 60

// MaxStepTicks caps a single step so a stalled frame cannot tunnel
// obstacles through the player.
const MaxStepTicks = 4

// Step is the time advanced by one Clock update.
type Step struct {
	Now     float64 // Simulation time after the step, milliseconds
	DeltaMs float64 // Milliseconds advanced
	DT      float64 // Reference ticks advanced
}

// Updatable is a system driven by the clock.
type Updatable interface {
	Update(Step)
}

// UpdateFunc adapts a function to Updatable.
type UpdateFunc func(Step)

// Update calls f.
func (f UpdateFunc) Update(s Step) { f(s) }

// Clock converts host timestamps into simulation steps and runs its systems
// in registration order. Simulation time excludes paused time and frames
// after a freeze.
type Clock struct {
	systems []Updatable

	now     float64 // Simulation time, milliseconds
	last    float64 // Host timestamp of the previous update
	started bool
	paused  bool
	frozen  bool
}

// NewClock creates a clock running systems in order.
func NewClock(systems ...Updatable) *Clock {
	return &Clock{systems: systems}
}

// Add appends systems to the update order.
func (c *Clock) Add(systems ...Updatable) {
	c.systems = append(c.systems, systems...)
}

// Update advances the simulation to host time nowMs. It reports whether
// the systems ran.
func (c *Clock) Update(nowMs float64) bool {
	if !c.started {
		c.started = true
		c.last = nowMs
		return false
	}

	elapsed := nowMs - c.last
	c.last = nowMs
	if elapsed <= 0 || c.paused || c.frozen {
		return false
	}

	dt := elapsed / TickMs
	if dt > MaxStepTicks {
		dt = MaxStepTicks
		elapsed = MaxStepTicks * TickMs
	}
	c.now += elapsed

	step := Step{Now: c.now, DeltaMs: elapsed, DT: dt}
	for _, sys := range c.systems {
		if c.frozen {
			break
		}
		sys.Update(step)
	}
	return true
}

// Reset restarts simulation time at zero with host time nowMs as the base.
func (c *Clock) Reset(nowMs float64) {
	c.now = 0
	c.last = nowMs
	c.started = true
	c.paused = false
	c.frozen = false
}

// Pause stops simulation time.
func (c *Clock) Pause() { c.paused = true }

// Resume restarts simulation time. The paused span is not simulated.
func (c *Clock) Resume() { c.paused = false }

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool { return c.paused }

// Freeze stops the clock until Reset. Systems later in the current step
// are skipped.
func (c *Clock) Freeze() { c.frozen = true }

// Frozen reports whether the clock is frozen.
func (c *Clock) Frozen() bool { return c.frozen }

// Now returns the simulation time in milliseconds.
func (c *Clock) Now() float64 { return c.now }
