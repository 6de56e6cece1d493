package sim

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// HitboxSource provides the player's collision rectangle.
type HitboxSource interface {
	Hitbox() core.Box
}

// ObstacleSource provides the collision rectangles of active obstacles.
type ObstacleSource interface {
	ActiveHitboxes() []core.Box
}

// ScoreKeeper is the score as seen by the collision monitor.
type ScoreKeeper interface {
	Freeze()
	Current() int
}

// ScrollToggle switches world scrolling on and off.
type ScrollToggle interface {
	SetEnabled(bool)
}

// Monitor checks the player against every active obstacle each tick.
// It is armed until the first overlap and stays tripped until Reset.
type Monitor struct {
	player    HitboxSource
	obstacles ObstacleSource
	score     ScoreKeeper
	scroll    ScrollToggle
	events    *EventQueue
	feedback  config.CollisionConfig
	log       *log.Logger

	tripped bool
	level   func() int
}

// NewMonitor creates an armed monitor. Any collaborator may be nil;
// the matching step is then skipped.
func NewMonitor(player HitboxSource, obstacles ObstacleSource, score ScoreKeeper, scroll ScrollToggle,
	feedback config.CollisionConfig, events *EventQueue, logger *log.Logger) *Monitor {
	return &Monitor{
		player:    player,
		obstacles: obstacles,
		score:     score,
		scroll:    scroll,
		events:    events,
		feedback:  feedback,
		log:       orDiscard(logger),
	}
}

// Check tests for a collision and trips the monitor on the first one.
// It reports whether a collision happened on this call.
func (m *Monitor) Check() bool {
	if m.tripped || m.player == nil || m.obstacles == nil {
		return false
	}
	hb := m.player.Hitbox()
	for _, ob := range m.obstacles.ActiveHitboxes() {
		if hb.Overlaps(ob) {
			m.trip(hb, ob)
			return true
		}
	}
	return false
}

func (m *Monitor) trip(player, obstacle core.Box) {
	m.tripped = true

	score := 0
	if m.score != nil {
		m.score.Freeze()
		score = m.score.Current()
	}
	if m.scroll != nil {
		m.scroll.SetEnabled(false)
	}

	level := 0
	if m.level != nil {
		level = m.level()
	}

	m.events.animate(AnimPlayerStop)
	m.events.animate(AnimObstaclesStop)
	m.events.Push(Event{Kind: EventShake, Duration: m.feedback.ShakeMs, Intensity: m.feedback.ShakeIntensity})
	m.events.Push(Event{Kind: EventGameOver, Score: score, Level: level})

	m.log.Info("collision", "score", score, "level", level, "player", player, "obstacle", obstacle)
}

// Tripped reports whether a collision has ended the run.
func (m *Monitor) Tripped() bool { return m.tripped }

// Reset re-arms the monitor and re-enables scrolling.
func (m *Monitor) Reset() {
	m.tripped = false
	if m.scroll != nil {
		m.scroll.SetEnabled(true)
	}
}

// SetLevelSource lets game over events carry the difficulty level.
func (m *Monitor) SetLevelSource(level func() int) { m.level = level }
