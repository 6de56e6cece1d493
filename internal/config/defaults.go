package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
// It mirrors defaults/runner.yaml and is used when the embedded file cannot be parsed.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:       928,
			Height:      600,
			GroundRatio: 0.96,
		},
		Physics: PhysicsProfile{
			JumpVelocity:  -8,
			Gravity:       0.1,
			FallVelocity:  4.4,
			MaxJumpHeight: 750,
			HoldJumpForce: 0,
		},
		Player: PlayerConfig{
			XRatio:           0.2,
			YRatio:           0.9,
			SpriteWidth:      48,
			SpriteHeight:     72,
			CrouchDurationMs: 700,
			Hitboxes: map[string]PlayerHitbox{
				"run":    {Width: 0.35, Height: 0.55, OffsetX: 0.33, OffsetY: 0.36},
				"jump":   {Width: 0.35, Height: 0.55, OffsetX: 0.35, OffsetY: 0.30},
				"crouch": {Width: 0.50, Height: 0.33, OffsetX: 0.33, OffsetY: 0.62},
			},
		},
		Obstacles: ObstacleConfig{
			PoolSize: 5,
			DespawnX: -100,
			Kinds: []KindConfig{
				{
					Name: "small", SpriteWidth: 24, SpriteHeight: 16, Scale: 2, YRatio: 0.933,
					Hitbox: ObstacleHitbox{Width: 0.5, Height: 0.3, OffsetXFactor: 0, OffsetYFactor: 0.4},
				},
				{
					Name: "medium", SpriteWidth: 22, SpriteHeight: 22, Scale: 2, YRatio: 0.923,
					Hitbox: ObstacleHitbox{Width: 0.38, Height: 0.38, OffsetXFactor: 0.1, OffsetYFactor: 0.1},
				},
				{
					Name: "large", SpriteWidth: 28, SpriteHeight: 28, Scale: 2, YRatio: 0.913,
					Hitbox: ObstacleHitbox{Width: 0.38, Height: 0.38, OffsetXFactor: 0.1, OffsetYFactor: 0.12},
				},
				{
					Name: "flying", SpriteWidth: 20, SpriteHeight: 16, Scale: 2, YRatio: 0.88,
					Hitbox:      ObstacleHitbox{Width: 0.4, Height: 0.4, OffsetXFactor: 0.75, OffsetYFactor: 0.75},
					Oscillation: &OscillationConfig{MinYRatio: 0.868, MaxYRatio: 0.892, Speed: 4},
				},
			},
		},
		Spawn: SpawnConfig{
			InitialDelayMs: 1600,
			BaseSpeed:      300,
			Margin:         100,
			GroupChance:    0.3,
			GroupSize:      IntRange{Min: 2, Max: 3},
			GroupSpacing:   Range{Min: 180, Max: 260},
			GapSpacing:     Range{Min: 450, Max: 1200},
		},
		Difficulty: DifficultyConfig{
			Enabled:           true,
			IntervalMs:        15000,
			SpeedIncrement:    30,
			DistanceDecrement: 50,
			MaxSpeed:          600,
			StartLevel:        1,
			GapFloor:          Range{Min: 300, Max: 1000},
			GroupFloor:        Range{Min: 120, Max: 180},
		},
		Scroll: ScrollConfig{
			Layers:     []float64{0.1, 0.25, 0.5, 1.0},
			ScoreLayer: 3,
		},
		Score: ScoreConfig{
			DistanceMultiplier: 0.1,
		},
		Collision: CollisionConfig{
			ShakeMs:        200,
			ShakeIntensity: 0.01,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
