package sim

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func TestSpawnerWaitsForInitialDelay(t *testing.T) {
	cfg := testConfig()
	s, pool := newTestSpawner(t, cfg, 1)

	require.Nil(t, s.MaybeSpawn(cfg.Spawn.InitialDelayMs-1))
	require.Empty(t, pool.Active())

	o := s.MaybeSpawn(cfg.Spawn.InitialDelayMs)
	require.NotNil(t, o)

	x, y := o.Position()
	require.Equal(t, testViewport.W+cfg.Spawn.Margin, x)
	ratio, _ := pool.YRatio(o.Kind())
	require.InDelta(t, testViewport.H*ratio, y, 1e-9)
	require.Equal(t, cfg.Spawn.BaseSpeed, o.Speed())
}

func TestSpawnerDelayFollowsDistance(t *testing.T) {
	cfg := testConfig()
	s, _ := newTestSpawner(t, cfg, 2)

	now := cfg.Spawn.InitialDelayMs
	require.NotNil(t, s.MaybeSpawn(now))
	st := s.State()
	require.InDelta(t, now+st.LastDistance/st.CurrentSpeed*1000, st.NextSpawnTime, 1e-9)
}

func TestSpawnerGroupEndsWithGap(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.InitialDelayMs = 0
	cfg.Spawn.GroupChance = 1
	cfg.Spawn.GroupSize = config.IntRange{Min: 3, Max: 3}
	cfg.Obstacles.PoolSize = 20
	s, _ := newTestSpawner(t, cfg, 5)

	group, gap := cfg.Spawn.GroupSpacing, cfg.Spawn.GapSpacing
	var distances []float64
	for i := 0; i < 4; i++ {
		require.NotNil(t, s.MaybeSpawn(s.State().NextSpawnTime))
		distances = append(distances, s.State().LastDistance)
	}

	// The first two spacings are tight, the third closes the group with a gap.
	for _, d := range distances[:2] {
		require.GreaterOrEqual(t, d, group.Min)
		require.LessOrEqual(t, d, group.Max)
	}
	require.GreaterOrEqual(t, distances[2], group.Min+gap.Min)
	require.LessOrEqual(t, distances[2], group.Max+gap.Max)
	// A forced chance starts the next group right away.
	require.True(t, s.State().GroupMode)
	require.Equal(t, 2, s.State().RemainingInGroup)
	require.GreaterOrEqual(t, distances[3], group.Min)
	require.LessOrEqual(t, distances[3], group.Max)
}

func TestSpawnerSpacingBounds(t *testing.T) {
	cfg := testConfig()
	cfg.Spawn.InitialDelayMs = 0
	cfg.Obstacles.PoolSize = 1000
	s, _ := newTestSpawner(t, cfg, 11)

	group, gap := cfg.Spawn.GroupSpacing, cfg.Spawn.GapSpacing
	for i := 0; i < 500; i++ {
		before := s.State()
		require.NotNil(t, s.MaybeSpawn(before.NextSpawnTime))
		after := s.State()

		// Groups hold at least two obstacles, so a spawn that starts a group
		// never ends it as well.
		d := after.LastDistance
		switch {
		case before.GroupMode && !after.GroupMode:
			require.GreaterOrEqual(t, d, group.Min+gap.Min, "group end %d", i)
			require.LessOrEqual(t, d, group.Max+gap.Max, "group end %d", i)
		case after.GroupMode:
			require.GreaterOrEqual(t, d, group.Min, "group spacing %d", i)
			require.LessOrEqual(t, d, group.Max, "group spacing %d", i)
		default:
			require.GreaterOrEqual(t, d, gap.Min, "gap spacing %d", i)
			require.LessOrEqual(t, d, gap.Max, "gap spacing %d", i)
		}
	}
}

func TestSpawnerSkipsExhaustedPool(t *testing.T) {
	cfg := testConfig()
	onlyKind(&cfg, "small")
	cfg.Obstacles.PoolSize = 1
	cfg.Spawn.InitialDelayMs = 0
	s, pool := newTestSpawner(t, cfg, 1)

	require.NotNil(t, s.MaybeSpawn(0))
	next := s.State().NextSpawnTime

	require.NotPanics(t, func() {
		require.Nil(t, s.MaybeSpawn(next))
	})
	require.Equal(t, 1, pool.ActiveCount(KindSmall))
	require.Equal(t, next, s.State().NextSpawnTime, "an exhausted pool retries on the next check")
}

func TestSpawnerUpdateSpeed(t *testing.T) {
	cfg := testConfig()
	s, _ := newTestSpawner(t, cfg, 1)

	s.UpdateSpeed(350)
	require.Equal(t, 350.0, s.Speed())

	s.UpdateSpeed(200)
	require.Equal(t, 350.0, s.Speed(), "speed never decreases")

	s.UpdateSpeed(cfg.Difficulty.MaxSpeed + 500)
	require.Equal(t, cfg.Difficulty.MaxSpeed, s.Speed())
}

func TestSpawnerTightenFloors(t *testing.T) {
	cfg := testConfig()
	s, _ := newTestSpawner(t, cfg, 1)

	s.Tighten(50)
	st := s.State()
	require.Equal(t, config.Range{Min: 130, Max: 210}, st.GroupSpacing)
	require.Equal(t, config.Range{Min: 400, Max: 1150}, st.GapSpacing)

	for i := 0; i < 50; i++ {
		s.Tighten(50)
	}
	st = s.State()
	require.Equal(t, cfg.Difficulty.GroupFloor, st.GroupSpacing)
	require.Equal(t, cfg.Difficulty.GapFloor, st.GapSpacing)

	s.Reset(0)
	st = s.State()
	require.Equal(t, cfg.Spawn.GroupSpacing, st.GroupSpacing)
	require.Equal(t, cfg.Spawn.BaseSpeed, st.CurrentSpeed)
	require.Equal(t, cfg.Spawn.InitialDelayMs, st.NextSpawnTime)
}

func TestSpawnerDeterministic(t *testing.T) {
	cfg := testConfig()
	cfg.Obstacles.PoolSize = 100
	a, _ := newTestSpawner(t, cfg, 42)
	b, _ := newTestSpawner(t, cfg, 42)

	for i := 0; i < 50; i++ {
		oa := a.MaybeSpawn(a.State().NextSpawnTime)
		ob := b.MaybeSpawn(b.State().NextSpawnTime)
		require.Equal(t, oa.Kind(), ob.Kind())
		require.Equal(t, a.State(), b.State())
	}
}
