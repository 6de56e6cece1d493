package sim

import (
	"io"
	"math/rand"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

var testViewport = Viewport{W: 928, H: 600}

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func testLogger() *log.Logger {
	return log.New(io.Discard)
}

func newTestPool(t *testing.T, cfg config.RunnerConfig) *Pool {
	t.Helper()
	p, err := NewPool(cfg.Obstacles.Kinds, cfg.Obstacles.PoolSize, cfg.Obstacles.DespawnX, testViewport.H)
	require.NoError(t, err)
	return p
}

func newTestSpawner(t *testing.T, cfg config.RunnerConfig, seed int64) (*Spawner, *Pool) {
	t.Helper()
	pool := newTestPool(t, cfg)
	s := NewSpawner(cfg.Spawn, cfg.Difficulty, pool, testViewport, rand.New(rand.NewSource(seed)), testLogger())
	s.Reset(0)
	return s, pool
}

func onlyKind(cfg *config.RunnerConfig, name string) {
	kc, _ := cfg.Obstacles.Kind(name)
	cfg.Obstacles.Kinds = []config.KindConfig{kc}
}
