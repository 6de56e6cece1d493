// Package config provides YAML/TOML-based runner configuration loading,
// validation and difficulty presets.
package config

// RunnerConfig contains every load-time constant of the runner simulation.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world" toml:"world"`
	Physics    PhysicsProfile   `yaml:"physics" toml:"physics"`
	Player     PlayerConfig     `yaml:"player" toml:"player"`
	Obstacles  ObstacleConfig   `yaml:"obstacles" toml:"obstacles"`
	Spawn      SpawnConfig      `yaml:"spawn" toml:"spawn"`
	Difficulty DifficultyConfig `yaml:"difficulty" toml:"difficulty"`
	Scroll     ScrollConfig     `yaml:"scroll" toml:"scroll"`
	Score      ScoreConfig      `yaml:"score" toml:"score"`
	Collision  CollisionConfig  `yaml:"collision" toml:"collision"`
}

// WorldConfig defines the logical viewport the simulation runs in.
// Renderers scale it to their own surface.
type WorldConfig struct {
	Width       float64 `yaml:"width" toml:"width"`               // Viewport width in world pixels
	Height      float64 `yaml:"height" toml:"height"`             // Viewport height in world pixels
	GroundRatio float64 `yaml:"ground_ratio" toml:"ground_ratio"` // Ground line as a fraction of height
}

// PhysicsProfile holds the player's jump constants. Velocities are in world
// pixels per 60 Hz tick; negative is upward.
type PhysicsProfile struct {
	JumpVelocity  float64 `yaml:"jump_velocity" toml:"jump_velocity"`
	Gravity       float64 `yaml:"gravity" toml:"gravity"`
	FallVelocity  float64 `yaml:"fall_velocity" toml:"fall_velocity"`
	MaxJumpHeight float64 `yaml:"max_jump_height" toml:"max_jump_height"`
	HoldJumpForce float64 `yaml:"hold_jump_force" toml:"hold_jump_force"` // Upward magnitude, >= 0
}

// PlayerConfig defines the player sprite and crouch behaviour.
type PlayerConfig struct {
	XRatio           float64                 `yaml:"x_ratio" toml:"x_ratio"`
	YRatio           float64                 `yaml:"y_ratio" toml:"y_ratio"` // Rest (ground) center as a fraction of height
	SpriteWidth      float64                 `yaml:"sprite_width" toml:"sprite_width"`
	SpriteHeight     float64                 `yaml:"sprite_height" toml:"sprite_height"`
	CrouchDurationMs float64                 `yaml:"crouch_duration_ms" toml:"crouch_duration_ms"`
	Hitboxes         map[string]PlayerHitbox `yaml:"hitboxes" toml:"hitboxes"` // Keyed by animation: run, jump, crouch
}

// PlayerHitbox is a hitbox expressed as fractions of the sprite size.
// Offsets are measured from the sprite's top-left corner.
type PlayerHitbox struct {
	Width   float64 `yaml:"width" toml:"width"`
	Height  float64 `yaml:"height" toml:"height"`
	OffsetX float64 `yaml:"offset_x" toml:"offset_x"`
	OffsetY float64 `yaml:"offset_y" toml:"offset_y"`
}

// ObstacleConfig defines the obstacle pools.
type ObstacleConfig struct {
	PoolSize int          `yaml:"pool_size" toml:"pool_size"` // Instances per kind
	DespawnX float64      `yaml:"despawn_x" toml:"despawn_x"` // Deactivate once x drops below this
	Kinds    []KindConfig `yaml:"kinds" toml:"kinds"`
}

// KindConfig describes one obstacle kind.
type KindConfig struct {
	Name         string             `yaml:"name" toml:"name"` // small, medium, large or flying
	SpriteWidth  float64            `yaml:"sprite_width" toml:"sprite_width"`
	SpriteHeight float64            `yaml:"sprite_height" toml:"sprite_height"`
	Scale        float64            `yaml:"scale" toml:"scale"`
	YRatio       float64            `yaml:"y_ratio" toml:"y_ratio"`
	Hitbox       ObstacleHitbox     `yaml:"hitbox" toml:"hitbox"`
	Oscillation  *OscillationConfig `yaml:"oscillation,omitempty" toml:"oscillation,omitempty"`
}

// ObstacleHitbox sizes an obstacle hitbox as fractions of its display size.
// Offset factors position the hitbox inside the space the sprite leaves over.
type ObstacleHitbox struct {
	Width         float64 `yaml:"width" toml:"width"`
	Height        float64 `yaml:"height" toml:"height"`
	OffsetXFactor float64 `yaml:"offset_x_factor" toml:"offset_x_factor"`
	OffsetYFactor float64 `yaml:"offset_y_factor" toml:"offset_y_factor"`
}

// OscillationConfig bounds the vertical bobbing of flying obstacles.
type OscillationConfig struct {
	MinYRatio float64 `yaml:"min_y_ratio" toml:"min_y_ratio"`
	MaxYRatio float64 `yaml:"max_y_ratio" toml:"max_y_ratio"`
	Speed     float64 `yaml:"speed" toml:"speed"` // Radians per second
}

// Range is an inclusive float interval.
type Range struct {
	Min float64 `yaml:"min" toml:"min"`
	Max float64 `yaml:"max" toml:"max"`
}

// IntRange is an inclusive integer interval.
type IntRange struct {
	Min int `yaml:"min" toml:"min"`
	Max int `yaml:"max" toml:"max"`
}

// SpawnConfig defines spawn timing and the grouping pattern.
type SpawnConfig struct {
	InitialDelayMs float64  `yaml:"initial_delay_ms" toml:"initial_delay_ms"`
	BaseSpeed      float64  `yaml:"base_speed" toml:"base_speed"` // World pixels per second
	Margin         float64  `yaml:"margin" toml:"margin"`         // Spawn this far past the right edge
	GroupChance    float64  `yaml:"group_chance" toml:"group_chance"`
	GroupSize      IntRange `yaml:"group_size" toml:"group_size"`
	GroupSpacing   Range    `yaml:"group_spacing" toml:"group_spacing"`
	GapSpacing     Range    `yaml:"gap_spacing" toml:"gap_spacing"`
}

// DifficultyConfig defines the periodic difficulty ramp.
type DifficultyConfig struct {
	Enabled           bool    `yaml:"enabled" toml:"enabled"`
	IntervalMs        float64 `yaml:"interval_ms" toml:"interval_ms"`
	SpeedIncrement    float64 `yaml:"speed_increment" toml:"speed_increment"`
	DistanceDecrement float64 `yaml:"distance_decrement" toml:"distance_decrement"`
	MaxSpeed          float64 `yaml:"max_speed" toml:"max_speed"`
	StartLevel        int     `yaml:"start_level" toml:"start_level"`
	GapFloor          Range   `yaml:"gap_floor" toml:"gap_floor"`     // Hard minimums for gap spacing bounds
	GroupFloor        Range   `yaml:"group_floor" toml:"group_floor"` // Hard minimums for group spacing bounds
}

// ScrollConfig defines the parallax layers. Each layer scrolls at its factor
// times the current obstacle speed.
type ScrollConfig struct {
	Layers     []float64 `yaml:"layers" toml:"layers"`
	ScoreLayer int       `yaml:"score_layer" toml:"score_layer"` // Layer whose distance feeds the score
}

// ScoreConfig defines score accrual.
type ScoreConfig struct {
	DistanceMultiplier float64 `yaml:"distance_multiplier" toml:"distance_multiplier"` // Points per pixel scrolled
}

// CollisionConfig defines the feedback played on a collision.
type CollisionConfig struct {
	ShakeMs        float64 `yaml:"shake_ms" toml:"shake_ms"`
	ShakeIntensity float64 `yaml:"shake_intensity" toml:"shake_intensity"` // Fraction of viewport width
}

// Kind returns the kind config with the given name.
func (c ObstacleConfig) Kind(name string) (KindConfig, bool) {
	for _, k := range c.Kinds {
		if k.Name == name {
			return k, true
		}
	}
	return KindConfig{}, false
}

// GroundY returns the world y-coordinate of the ground line.
func (w WorldConfig) GroundY() float64 {
	return w.Height * w.GroundRatio
}
