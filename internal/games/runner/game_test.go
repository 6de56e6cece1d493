package runner

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
	"github.com/vovakirdan/tui-runner/internal/games/runner/sim"
	"github.com/vovakirdan/tui-runner/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func newTestGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g, err := New(config.DefaultRunnerConfig(), nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(testRuntime(seed))
	return g
}

func TestGameDeterminism(t *testing.T) {
	// Same seed and inputs give identical runs
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%70 < 15 {
			inputs[i].Set(core.ActionJump)
		}
	}

	run := func() core.GameState {
		g := newTestGame(t, 12345)
		var state core.GameState
		for _, in := range inputs {
			state = g.Step(in).State
			if state.GameOver {
				break
			}
		}
		return state
	}

	s1, s2 := run(), run()
	if s1 != s2 {
		t.Errorf("Determinism failed: %+v != %+v", s1, s2)
	}
}

func TestGameEndsAndFreezes(t *testing.T) {
	g := newTestGame(t, 1)

	var state core.GameState
	for i := 0; i < 60*30 && !state.GameOver; i++ {
		state = g.Step(core.NewInputFrame()).State
	}
	if !state.GameOver {
		t.Fatal("idle runner never collided")
	}
	if state.Score <= 0 {
		t.Errorf("Score = %d, want > 0", state.Score)
	}

	res := g.Step(core.NewInputFrame())
	if res.Shake == 0 {
		t.Error("expected screen shake right after the collision")
	}
	for i := 0; i < 60; i++ {
		res = g.Step(core.NewInputFrame())
	}
	if res.State.Score != state.Score {
		t.Errorf("score changed after game over: %d -> %d", state.Score, res.State.Score)
	}
	if res.Shake != 0 {
		t.Error("shake should have decayed")
	}
}

func TestGamePauseToggle(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 30; i++ {
		g.Step(core.NewInputFrame())
	}
	elapsed := g.State().Elapsed

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	if !g.Step(pause).State.Paused {
		t.Fatal("expected paused state")
	}
	for i := 0; i < 100; i++ {
		g.Step(core.NewInputFrame())
	}
	if g.State().Elapsed != elapsed {
		t.Errorf("time advanced while paused: %v -> %v", elapsed, g.State().Elapsed)
	}

	if g.Step(pause).State.Paused {
		t.Error("second pause should resume")
	}
}

func TestGameHeldJump(t *testing.T) {
	g := newTestGame(t, 1)
	jump := core.NewInputFrame()
	jump.Set(core.ActionJump)

	for i := 0; i < 10; i++ {
		g.Step(jump)
	}
	if got := g.Snapshot().Player.Phase; got != sim.PhaseJumping {
		t.Fatalf("Phase = %v, want jumping", got)
	}
	if g.anim != sim.AnimJump {
		t.Errorf("anim = %v, want jump", g.anim)
	}

	// Releasing ends the hold and the player comes back down
	for i := 0; i < 120; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.Snapshot().Player.Phase; got != sim.PhaseGrounded {
		t.Errorf("Phase = %v, want grounded", got)
	}
}

func TestGameRender(t *testing.T) {
	g := newTestGame(t, 1)
	screen := core.NewScreen(80, 24)

	for i := 0; i < 200; i++ {
		g.Step(core.NewInputFrame())
	}
	g.Render(screen)

	out := screen.String()
	if !strings.Contains(screen.Row(0), "Score:") {
		t.Errorf("HUD missing: %q", screen.Row(0))
	}
	if !strings.ContainsRune(out, PlayerEye) {
		t.Error("player not drawn")
	}
	if !strings.ContainsRune(out, '═') {
		t.Error("ground not drawn")
	}

	// Tiny screens must not panic
	g.Render(core.NewScreen(3, 1))
	g.Render(core.NewScreen(0, 0))
}

func TestGameRenderGameOver(t *testing.T) {
	g := newTestGame(t, 1)
	for i := 0; i < 60*30 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}
	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "GAME OVER") {
		t.Error("game over message missing")
	}
}

func TestGameReset(t *testing.T) {
	g := newTestGame(t, 42)
	for i := 0; i < 60*30 && !g.State().GameOver; i++ {
		g.Step(core.NewInputFrame())
	}

	g.Reset(testRuntime(43))
	state := g.State()
	if state.GameOver || state.Score != 0 || state.Level != 1 || state.Elapsed != 0 {
		t.Errorf("unexpected state after reset: %+v", state)
	}
	if g.stopped || g.anim != sim.AnimRun {
		t.Error("view state not reset")
	}
}

func TestRegistered(t *testing.T) {
	if !registry.Exists(GameID) {
		t.Fatal("runner not registered")
	}

	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)

	g, err := registry.Create(GameID, registry.Options{Difficulty: "hard"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	g.Reset(testRuntime(1))
	if got := g.State().Level; got != 4 {
		t.Errorf("hard preset Level = %d, want 4", got)
	}

	if _, err := registry.Create(GameID, registry.Options{Difficulty: "insane"}); err == nil {
		t.Error("expected error for unknown difficulty")
	}
}
