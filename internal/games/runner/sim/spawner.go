package sim

import (
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// SpawnState is the spawner's mutable scheduling state.
type SpawnState struct {
	NextSpawnTime    float64 // Simulation milliseconds
	CurrentSpeed     float64 // Pixels per second
	GroupMode        bool
	RemainingInGroup int
	GroupSpacing     config.Range
	GapSpacing       config.Range
	LastDistance     float64 // Distance behind the most recent schedule
}

// Spawner decides when, what and where to spawn.
//
// Obstacles come either alone, separated by gap spacing, or in groups
// separated by the tighter group spacing. A group always ends with an extra
// gap so the player gets a recovery window.
type Spawner struct {
	cfg        config.SpawnConfig
	maxSpeed   float64
	gapFloor   config.Range
	groupFloor config.Range
	pool       *Pool
	vp         Viewport
	rng        *rand.Rand
	log        *log.Logger

	state SpawnState
}

// NewSpawner creates a spawner drawing from pool. Call Reset before use.
func NewSpawner(cfg config.SpawnConfig, diff config.DifficultyConfig, pool *Pool, vp Viewport, rng *rand.Rand, logger *log.Logger) *Spawner {
	s := &Spawner{
		cfg:        cfg,
		maxSpeed:   diff.MaxSpeed,
		gapFloor:   diff.GapFloor,
		groupFloor: diff.GroupFloor,
		pool:       pool,
		vp:         vp,
		rng:        rng,
		log:        orDiscard(logger),
	}
	s.ResetDifficulty()
	return s
}

// Reset restores the initial difficulty and schedules the first spawn
// after the initial delay.
func (s *Spawner) Reset(now float64) {
	s.ResetDifficulty()
	s.state.GroupMode = false
	s.state.RemainingInGroup = 0
	s.state.LastDistance = 0
	s.state.NextSpawnTime = now + s.cfg.InitialDelayMs
}

// ResetDifficulty restores the initial speed and spacing ranges.
func (s *Spawner) ResetDifficulty() {
	s.state.CurrentSpeed = s.cfg.BaseSpeed
	s.state.GroupSpacing = s.cfg.GroupSpacing
	s.state.GapSpacing = s.cfg.GapSpacing
}

// MaybeSpawn spawns an obstacle if one is due. It returns the spawned
// obstacle, or nil if nothing was due or the chosen kind was exhausted.
// An exhausted kind leaves the schedule untouched so the next call retries.
func (s *Spawner) MaybeSpawn(now float64) *Obstacle {
	if s.pool == nil || now < s.state.NextSpawnTime {
		return nil
	}
	kinds := s.pool.Kinds()
	if len(kinds) == 0 {
		return nil
	}

	kind := kinds[s.rng.Intn(len(kinds))]
	o := s.pool.Inactive(kind)
	if o == nil {
		s.log.Debug("pool exhausted", "kind", kind)
		return nil
	}

	ratio, _ := s.pool.YRatio(kind)
	o.Activate(s.vp.W+s.cfg.Margin, s.vp.H*ratio, s.state.CurrentSpeed, now)

	distance := s.nextDistance()
	delay := distance / s.state.CurrentSpeed * 1000
	s.state.NextSpawnTime = now + delay

	s.log.Debug("spawned", "kind", kind, "speed", s.state.CurrentSpeed,
		"distance", distance, "group", s.state.GroupMode, "remaining", s.state.RemainingInGroup)
	return o
}

// nextDistance runs the grouping algorithm and returns the distance in
// pixels to the next spawn.
func (s *Spawner) nextDistance() float64 {
	st := &s.state
	if !st.GroupMode && s.rng.Float64() < s.cfg.GroupChance {
		st.GroupMode = true
		st.RemainingInGroup = s.cfg.GroupSize.Min + s.rng.Intn(s.cfg.GroupSize.Max-s.cfg.GroupSize.Min+1)
	}

	var distance float64
	if st.GroupMode {
		distance = s.sample(st.GroupSpacing)
		st.RemainingInGroup--
		if st.RemainingInGroup <= 0 {
			st.GroupMode = false
			st.RemainingInGroup = 0
			distance += s.sample(st.GapSpacing)
		}
	} else {
		distance = s.sample(st.GapSpacing)
	}

	st.LastDistance = distance
	return distance
}

func (s *Spawner) sample(r config.Range) float64 {
	return r.Min + s.rng.Float64()*(r.Max-r.Min)
}

// UpdateSpeed sets the spawn speed, capped at the configured maximum.
// The speed never goes down.
func (s *Spawner) UpdateSpeed(speed float64) {
	if speed > s.maxSpeed {
		s.log.Debug("speed capped", "requested", speed, "applied", s.maxSpeed)
		speed = s.maxSpeed
	}
	if speed < s.state.CurrentSpeed {
		return
	}
	s.state.CurrentSpeed = speed
}

// Tighten shrinks both spacing ranges by decrement, floored at the
// configured hard minimums.
func (s *Spawner) Tighten(decrement float64) {
	s.state.GroupSpacing = shrink(s.state.GroupSpacing, decrement, s.groupFloor)
	s.state.GapSpacing = shrink(s.state.GapSpacing, decrement, s.gapFloor)
}

func shrink(r config.Range, by float64, floor config.Range) config.Range {
	r.Min = lower(r.Min, by, floor.Min)
	r.Max = max(lower(r.Max, by, floor.Max), r.Min)
	return r
}

// lower subtracts by from v without crossing floor. It never raises v.
func lower(v, by, floor float64) float64 {
	return min(v, max(v-by, floor))
}

// Speed returns the current spawn speed in pixels per second.
func (s *Spawner) Speed() float64 { return s.state.CurrentSpeed }

// MaxSpeed returns the speed cap.
func (s *Spawner) MaxSpeed() float64 { return s.maxSpeed }

// State returns a copy of the scheduling state.
func (s *Spawner) State() SpawnState { return s.state }
