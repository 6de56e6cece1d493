// Package sim is the endless runner simulation: player motion, pooled
// obstacle spawning, the difficulty ramp, collision and score.
//
// Everything runs on the caller's goroutine from World.Update. The package
// never reads the wall clock; hosts pass their own timestamps.
package sim

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Viewport is the size of the rendering surface in world pixels.
type Viewport struct {
	W, H float64
}

// Options tune a World beyond its configuration.
type Options struct {
	Seed     int64       // RNG seed; runs with the same seed and input are identical
	Logger   *log.Logger // Defaults to a discarding logger
	Viewport Viewport    // Zero means the configured world size
}

// World wires every simulation component together.
type World struct {
	cfg    config.RunnerConfig
	vp     Viewport
	log    *log.Logger
	seed   int64
	rng    *rand.Rand
	events *EventQueue

	clock    *Clock
	motion   *Motion
	player   *Player
	binding  *Binding
	pool     *Pool
	spawner  *Spawner
	ramp     *Ramp
	monitor  *Monitor
	score    *Score
	scroller *Scroller

	gameOver bool
}

// NewWorld builds a world from a configuration. Invalid configuration is
// reported here, never during Update.
func NewWorld(cfg config.RunnerConfig, opts Options) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	vp := opts.Viewport
	if vp.W <= 0 || vp.H <= 0 {
		vp = Viewport{W: cfg.World.Width, H: cfg.World.Height}
	}

	logger := orDiscard(opts.Logger)
	w := &World{
		cfg:    cfg,
		vp:     vp,
		log:    logger,
		seed:   opts.Seed,
		rng:    rand.New(rand.NewSource(opts.Seed)),
		events: &EventQueue{},
	}

	pool, err := NewPool(cfg.Obstacles.Kinds, cfg.Obstacles.PoolSize, cfg.Obstacles.DespawnX, vp.H)
	if err != nil {
		return nil, err
	}
	w.pool = pool

	w.motion = NewMotion(cfg.Physics, vp.H*cfg.Player.YRatio, cfg.Player.CrouchDurationMs, w.events)
	w.player = NewPlayer(cfg.Player, vp, w.motion)
	w.binding = NewBinding(w.motion)
	w.spawner = NewSpawner(cfg.Spawn, cfg.Difficulty, pool, vp, w.rng, logger.WithPrefix("spawner"))
	w.ramp = NewRamp(cfg.Difficulty, w.spawner, w.events, logger.WithPrefix("difficulty"))
	w.score = NewScore(cfg.Score.DistanceMultiplier)
	w.scroller = NewScroller(cfg.Scroll.Layers, cfg.Scroll.ScoreLayer)
	w.monitor = NewMonitor(w.player, pool, w.score, w.scroller, cfg.Collision, w.events, logger.WithPrefix("collision"))
	w.monitor.SetLevelSource(w.ramp.Level)

	w.clock = NewClock(
		UpdateFunc(w.stepDifficulty),
		UpdateFunc(w.stepMotion),
		UpdateFunc(w.stepObstacles),
		UpdateFunc(w.stepCollision),
		UpdateFunc(w.stepScore),
	)

	w.resetSystems()
	return w, nil
}

func (w *World) stepDifficulty(s Step) { w.ramp.Poll(s.Now) }

func (w *World) stepMotion(s Step) { w.motion.Update(s.DT, s.DeltaMs) }

func (w *World) stepObstacles(s Step) {
	w.spawner.MaybeSpawn(s.Now)
	w.pool.UpdateAll(s.Now, s.DeltaMs)
}

func (w *World) stepCollision(Step) {
	if w.monitor.Check() {
		w.gameOver = true
		w.clock.Freeze()
	}
}

func (w *World) stepScore(s Step) {
	w.score.Update(w.scroller.Advance(w.spawner.Speed(), s.DeltaMs))
}

// Update advances the simulation to host time nowMs, in milliseconds.
// The first call only establishes the time base.
func (w *World) Update(nowMs float64) {
	w.clock.Update(nowMs)
}

// Press reports a button going down.
func (w *World) Press(b Button) {
	if w.gameOver {
		return
	}
	w.binding.Press(b)
}

// Release reports a button going up.
func (w *World) Release(b Button) { w.binding.Release(b) }

// Apply feeds the level state of both buttons for this frame.
func (w *World) Apply(jumpDown, crouchDown bool) {
	if w.gameOver {
		jumpDown, crouchDown = false, false
	}
	w.binding.Apply(jumpDown, crouchDown)
}

// Pause stops the simulation.
func (w *World) Pause() { w.clock.Pause() }

// Resume continues a paused simulation.
func (w *World) Resume() { w.clock.Resume() }

// Paused reports whether the simulation is paused.
func (w *World) Paused() bool { return w.clock.Paused() }

// Reset starts a new run with host time nowMs as the time base.
func (w *World) Reset(nowMs float64) {
	w.clock.Reset(nowMs)
	w.resetSystems()
}

func (w *World) resetSystems() {
	w.events.flush()
	w.rng.Seed(w.seed)
	w.gameOver = false

	w.binding.Reset()
	w.motion.Reset()
	w.pool.DeactivateAll()
	w.spawner.Reset(0)
	w.ramp.Reset(0)
	w.score.Reset()
	w.scroller.Reset()
	w.monitor.Reset()

	w.events.animate(AnimRun)
	w.log.Debug("run reset", "seed", w.seed, "level", w.ramp.Level(), "speed", w.spawner.Speed())
}

// Drain returns and clears the pending events.
func (w *World) Drain() []Event { return w.events.Drain() }

// GameOver reports whether the run has ended in a collision.
func (w *World) GameOver() bool { return w.gameOver }

// Score returns the floored score.
func (w *World) Score() int { return w.score.Current() }

// Level returns the difficulty level.
func (w *World) Level() int { return w.ramp.Level() }

// Speed returns the current obstacle speed in pixels per second.
func (w *World) Speed() float64 { return w.spawner.Speed() }

// Elapsed returns the simulation time of the run in milliseconds.
func (w *World) Elapsed() float64 { return w.clock.Now() }

// Viewport returns the world size.
func (w *World) Viewport() Viewport { return w.vp }

// Config returns the configuration the world was built from.
func (w *World) Config() config.RunnerConfig { return w.cfg }

// PlayerView is the render record of the player.
type PlayerView struct {
	Sprite core.Box
	Hitbox core.Box
	Phase  Phase
	Anim   Anim
}

// ObstacleView is the render record of one active obstacle.
type ObstacleView struct {
	Kind   Kind
	Sprite core.Box
	Hitbox core.Box
}

// Snapshot is everything a renderer needs for one frame.
type Snapshot struct {
	Viewport  Viewport
	GroundY   float64
	Player    PlayerView
	Obstacles []ObstacleView
	Layers    []float64 // Scroll offset per parallax layer
	Score     int
	Level     int
	Speed     float64
	MaxSpeed  float64
	Elapsed   float64 // Simulation milliseconds
	Scrolling bool
	GameOver  bool
	Paused    bool
}

// Snapshot captures the current state for rendering.
func (w *World) Snapshot() Snapshot {
	active := w.pool.Active()
	obstacles := make([]ObstacleView, 0, len(active))
	for _, o := range active {
		obstacles = append(obstacles, ObstacleView{Kind: o.Kind(), Sprite: o.Sprite(), Hitbox: o.Hitbox()})
	}

	phase := w.motion.Phase()
	return Snapshot{
		Viewport: w.vp,
		GroundY:  w.vp.H * w.cfg.World.GroundRatio,
		Player: PlayerView{
			Sprite: w.player.Sprite(),
			Hitbox: w.player.Hitbox(),
			Phase:  phase,
			Anim:   phase.Anim(),
		},
		Obstacles: obstacles,
		Layers:    w.scroller.Offsets(),
		Score:     w.score.Current(),
		Level:     w.ramp.Level(),
		Speed:     w.spawner.Speed(),
		MaxSpeed:  w.spawner.MaxSpeed(),
		Elapsed:   w.clock.Now(),
		Scrolling: w.scroller.Enabled(),
		GameOver:  w.gameOver,
		Paused:    w.clock.Paused(),
	}
}

func orDiscard(l *log.Logger) *log.Logger {
	if l != nil {
		return l
	}
	return log.New(io.Discard)
}
