package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
)

const (
	milestoneEvery = 5   // Levels between milestone log lines
	nearMaxRatio   = 0.9 // Warn once speed reaches this share of the cap
)

// Ramp raises the difficulty on a fixed interval of simulation time.
// Each tick speeds up spawning and tightens the spacing ranges.
type Ramp struct {
	cfg     config.DifficultyConfig
	spawner *Spawner
	events  *EventQueue
	log     *log.Logger

	level    int
	nextTick float64 // Simulation milliseconds
	warned   bool    // Near-max warning already logged this run
}

// NewRamp creates a ramp driving spawner. Call Reset before use.
func NewRamp(cfg config.DifficultyConfig, spawner *Spawner, events *EventQueue, logger *log.Logger) *Ramp {
	return &Ramp{
		cfg:     cfg,
		spawner: spawner,
		events:  events,
		log:     orDiscard(logger),
		level:   1,
	}
}

// Reset returns to level 1, restores the spawner's initial difficulty and
// restarts the interval. A configured start level is then applied silently.
func (r *Ramp) Reset(now float64) {
	r.level = 1
	r.warned = false
	r.nextTick = now + r.cfg.IntervalMs
	if r.spawner != nil {
		r.spawner.ResetDifficulty()
	}
	for r.level < r.cfg.StartLevel {
		r.raise()
	}
}

// Poll fires one tick per interval elapsed up to now. It returns the
// number of ticks fired.
func (r *Ramp) Poll(now float64) int {
	if !r.cfg.Enabled || r.cfg.IntervalMs <= 0 {
		return 0
	}
	fired := 0
	for now >= r.nextTick {
		r.OnTick()
		r.nextTick += r.cfg.IntervalMs
		fired++
	}
	return fired
}

// OnTick raises the level by one and reports it.
func (r *Ramp) OnTick() {
	r.raise()

	speed := 0.0
	if r.spawner != nil {
		speed = r.spawner.Speed()
	}
	r.events.Push(Event{Kind: EventDifficulty, Level: r.level, Speed: speed})

	r.log.Debug("difficulty increased", "level", r.level, "speed", speed)
	if r.level%milestoneEvery == 0 {
		r.log.Info("difficulty milestone", "level", r.level, "speed", speed)
	}
	if !r.warned && r.cfg.MaxSpeed > 0 && speed >= r.cfg.MaxSpeed*nearMaxRatio {
		r.warned = true
		r.log.Warn("approaching max speed", "speed", speed, "max", r.cfg.MaxSpeed)
	}
}

func (r *Ramp) raise() {
	r.level++
	if r.spawner == nil {
		return
	}
	r.spawner.UpdateSpeed(r.spawner.Speed() + r.cfg.SpeedIncrement)
	r.spawner.Tighten(r.cfg.DistanceDecrement)
}

// Level returns the current difficulty level, starting at 1.
func (r *Ramp) Level() int { return r.level }

// NextTick returns the simulation time of the next ramp tick.
func (r *Ramp) NextTick() float64 { return r.nextTick }

// Enabled reports whether the ramp ticks at all.
func (r *Ramp) Enabled() bool { return r.cfg.Enabled }
