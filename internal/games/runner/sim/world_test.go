package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func newTestWorld(t *testing.T, mutate func(*config.RunnerConfig), seed int64) *World {
	t.Helper()
	cfg := testConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	w, err := NewWorld(cfg, Options{Seed: seed, Logger: testLogger()})
	require.NoError(t, err)
	w.Reset(0)
	return w
}

// frames advances w one reference tick at a time, calling each (if set)
// before every update. It returns the host time reached.
func frames(w *World, now float64, n int, each func(i int)) float64 {
	for i := 0; i < n; i++ {
		if each != nil {
			each(i)
		}
		now += TickMs
		w.Update(now)
	}
	return now
}

func countKind(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func TestWorldRunEndsInCollision(t *testing.T) {
	w := newTestWorld(t, nil, 1)

	var events []Event
	now := 0.0
	for i := 0; i < 60*20 && !w.GameOver(); i++ {
		now = frames(w, now, 1, nil)
		events = append(events, w.Drain()...)
	}
	require.True(t, w.GameOver(), "an idle runner must eventually hit something")

	score := w.Score()
	require.Greater(t, score, 0)
	snap := w.Snapshot()
	require.True(t, snap.GameOver)
	require.False(t, snap.Scrolling)

	frames(w, now, 120, nil)
	events = append(events, w.Drain()...)
	require.Equal(t, 1, countKind(events, EventGameOver))
	require.Equal(t, 1, countKind(events, EventShake))
	require.Equal(t, score, w.Score(), "score is frozen after game over")
	require.Equal(t, snap.Elapsed, w.Elapsed(), "time is frozen after game over")
}

func TestWorldCrouchDodgesFlying(t *testing.T) {
	w := newTestWorld(t, func(c *config.RunnerConfig) { onlyKind(c, "flying") }, 3)

	frames(w, 0, 60*20, func(int) { w.Apply(false, true) })
	require.False(t, w.GameOver())
	require.Equal(t, PhaseCrouching, w.Snapshot().Player.Phase)
	require.NotZero(t, w.Snapshot().Player.Hitbox.H)
}

func TestWorldScoreFollowsGroundLayer(t *testing.T) {
	w := newTestWorld(t, func(c *config.RunnerConfig) {
		c.Spawn.InitialDelayMs = 1e9
		c.Difficulty.Enabled = false
	}, 1)

	frames(w, 0, 600, nil) // 10 seconds at 300 px/s
	require.InDelta(t, 300, w.Score(), 1)
	require.Empty(t, w.Snapshot().Obstacles)
}

func TestWorldJump(t *testing.T) {
	w := newTestWorld(t, nil, 1)
	ground := w.Snapshot().Player.Sprite.Y

	w.Press(ButtonJump)
	now := frames(w, 0, 10, nil)
	snap := w.Snapshot()
	require.Equal(t, PhaseJumping, snap.Player.Phase)
	require.Equal(t, AnimJump, snap.Player.Anim)
	require.Less(t, snap.Player.Sprite.Y, ground)

	w.Release(ButtonJump)
	frames(w, now, 60, nil)
	require.Equal(t, PhaseGrounded, w.Snapshot().Player.Phase)
	require.Equal(t, ground, w.Snapshot().Player.Sprite.Y)
}

func TestWorldDeterministic(t *testing.T) {
	a := newTestWorld(t, nil, 9)
	b := newTestWorld(t, nil, 9)

	input := func(i int) (bool, bool) {
		return i%90 < 20, i%240 > 200
	}
	now := 0.0
	for i := 0; i < 60*15; i++ {
		j, c := input(i)
		a.Apply(j, c)
		b.Apply(j, c)
		now += TickMs
		a.Update(now)
		b.Update(now)
		require.Equal(t, a.Snapshot(), b.Snapshot(), "diverged at frame %d", i)
	}
	require.Equal(t, a.Drain(), b.Drain())
}

func TestWorldPause(t *testing.T) {
	w := newTestWorld(t, nil, 1)
	now := frames(w, 0, 30, nil)
	before := w.Snapshot()

	w.Pause()
	now = frames(w, now, 300, nil)
	after := w.Snapshot()
	require.True(t, after.Paused)
	after.Paused = false
	require.Equal(t, before, after)

	w.Resume()
	frames(w, now, 1, nil)
	require.InDelta(t, before.Elapsed+TickMs, w.Elapsed(), 1e-6)
}

func TestWorldReset(t *testing.T) {
	w := newTestWorld(t, func(c *config.RunnerConfig) { c.Difficulty.IntervalMs = 1000 }, 1)
	now := 0.0
	for i := 0; i < 60*20 && !w.GameOver(); i++ {
		now = frames(w, now, 1, nil)
	}
	require.True(t, w.GameOver())
	require.Greater(t, w.Level(), 1)

	w.Reset(now)
	require.False(t, w.GameOver())
	require.Zero(t, w.Score())
	require.Equal(t, 1, w.Level())
	require.Empty(t, w.Snapshot().Obstacles)
	require.Equal(t, []Event{{Kind: EventAnimation, Anim: AnimRun}}, w.Drain())

	frames(w, now, 10, nil)
	require.Greater(t, w.Elapsed(), 0.0)
}

func TestWorldIgnoresInputAfterGameOver(t *testing.T) {
	w := newTestWorld(t, nil, 1)
	now := 0.0
	for i := 0; i < 60*20 && !w.GameOver(); i++ {
		now = frames(w, now, 1, nil)
	}
	require.True(t, w.GameOver())
	w.Drain()

	w.Press(ButtonJump)
	frames(w, now, 5, nil)
	require.Empty(t, w.Drain())
}

func TestNewWorldRejectsInvalidConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.PoolSize = 0
	_, err := NewWorld(cfg, Options{})
	require.Error(t, err)
}
