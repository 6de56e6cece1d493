// Package runner adapts the endless runner simulation to the platform's
// fixed-tick Game interface and draws it into a character screen.
package runner

import (
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

// Game identifiers
const (
	GameID    = "runner"
	GameTitle = "Endless Runner"
)

// levelFlashDuration is how long the level-up banner stays on screen.
const levelFlashDuration = 1500 * time.Millisecond

// Game implements registry.Game on top of a sim.World.
type Game struct {
	cfg     config.RunnerConfig
	log     *log.Logger
	world   *sim.World
	runtime core.RuntimeConfig

	hostMs     float64 // Host clock handed to the world, advanced one tick per Step
	anim       sim.Anim
	stopped    bool    // Animations stopped by a collision
	shakeMs    float64 // Remaining screen shake
	shakeAmp   float64 // Shake intensity as a fraction of viewport width
	frame      int     // Animation frame counter
	levelFlash int     // Ticks left to show the level-up banner
}

// New creates a runner game from a validated configuration.
func New(cfg config.RunnerConfig, logger *log.Logger) (*Game, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		cfg: cfg,
		log: logger,
	}
	w, err := sim.NewWorld(cfg, sim.Options{Logger: logger})
	if err != nil {
		return nil, err
	}
	g.world = w
	g.resetView()
	return g, nil
}

// NewFromOptions loads the configuration named by opts and creates a game.
func NewFromOptions(opts registry.Options) (*Game, error) {
	cfg, err := config.LoadRunner(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.Difficulty != "" {
		preset, err := config.ParsePreset(opts.Difficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyRunnerPreset(&cfg, preset)
	}
	return New(cfg, opts.Logger)
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return GameTitle
}

// Reset starts a new run. A new seed rebuilds the world so obstacle
// patterns follow it.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	seedChanged := runtime.Seed != g.runtime.Seed
	g.runtime = runtime

	if seedChanged {
		w, err := sim.NewWorld(g.cfg, sim.Options{Seed: runtime.Seed, Logger: g.log})
		if err != nil {
			g.log.Error("rebuild world", "err", err)
		} else {
			g.world = w
		}
	}

	g.hostMs = 0
	g.world.Reset(g.hostMs)
	g.resetView()
	g.handleEvents(g.world.Drain())
}

func (g *Game) resetView() {
	g.anim = sim.AnimRun
	g.stopped = false
	g.shakeMs = 0
	g.shakeAmp = 0
	g.frame = 0
	g.levelFlash = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world.GameOver() {
		g.decayShake()
		return core.StepResult{State: g.State(), Shake: g.shakeColumns()}
	}

	if in.Has(core.ActionPause) {
		if g.world.Paused() {
			g.world.Resume()
		} else {
			g.world.Pause()
		}
	}

	// Buttons are sampled only while running so a paused run resumes in
	// the phase it stopped in.
	if !g.world.Paused() {
		g.world.Apply(in.Has(core.ActionJump), in.Has(core.ActionDuck))
	}

	g.hostMs += float64(g.runtime.TickDuration()) / float64(time.Millisecond)
	g.world.Update(g.hostMs)
	g.handleEvents(g.world.Drain())

	if !g.world.Paused() && !g.stopped {
		g.frame++
		if g.levelFlash > 0 {
			g.levelFlash--
		}
	}
	g.decayShake()

	return core.StepResult{State: g.State(), Shake: g.shakeColumns()}
}

// handleEvents applies simulation notifications to the view state.
func (g *Game) handleEvents(events []sim.Event) {
	for _, e := range events {
		switch e.Kind {
		case sim.EventAnimation:
			switch e.Anim {
			case sim.AnimPlayerStop, sim.AnimObstaclesStop:
				g.stopped = true
			default:
				g.anim = e.Anim
			}
		case sim.EventShake:
			g.shakeMs = e.Duration
			g.shakeAmp = e.Intensity
		case sim.EventDifficulty:
			g.levelFlash = g.ticksFor(levelFlashDuration)
			g.log.Debug("level up", "level", e.Level, "speed", e.Speed)
		case sim.EventGameOver:
			g.log.Info("game over", "score", e.Score, "level", e.Level, "elapsed", g.elapsed())
		}
	}
}

func (g *Game) decayShake() {
	if g.shakeMs <= 0 {
		return
	}
	g.shakeMs -= float64(g.runtime.TickDuration()) / float64(time.Millisecond)
	if g.shakeMs < 0 {
		g.shakeMs = 0
	}
}

// shakeColumns returns this frame's horizontal shake offset in columns.
func (g *Game) shakeColumns() int {
	if g.shakeMs <= 0 || g.runtime.ScreenW <= 0 {
		return 0
	}
	amp := int(math.Ceil(g.shakeAmp * float64(g.runtime.ScreenW)))
	if amp < 1 {
		amp = 1
	}
	if g.frame%2 == 0 {
		return amp
	}
	return -amp
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.world.Score(),
		Level:    g.world.Level(),
		Elapsed:  g.elapsed(),
		GameOver: g.world.GameOver(),
		Paused:   g.world.Paused(),
	}
}

func (g *Game) elapsed() time.Duration {
	return time.Duration(g.world.Elapsed() * float64(time.Millisecond))
}

// ticksFor converts a duration to whole platform ticks.
func (g *Game) ticksFor(d time.Duration) int {
	return int(d / g.runtime.TickDuration())
}

// Snapshot exposes the simulation state, mainly for tests and tooling.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Register the game with the registry
func init() {
	registry.Register(registry.GameInfo{ID: GameID, Title: GameTitle}, func(opts registry.Options) (registry.Game, error) {
		return NewFromOptions(opts)
	})
}
