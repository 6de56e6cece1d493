package config

import (
	"errors"
	"fmt"
	"slices"
)

// KindNames lists the obstacle kinds the simulation understands, in pool order.
var KindNames = []string{"small", "medium", "large", "flying"}

// PlayerAnimations lists the animations that need a hitbox entry.
var PlayerAnimations = []string{"run", "jump", "crouch"}

// Validate reports every malformed value in the configuration.
// It is meant to run once at load time so the tick loop never sees bad data.
func (c RunnerConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if c.World.Width <= 0 || c.World.Height <= 0 {
		fail("world: size must be positive, got %vx%v", c.World.Width, c.World.Height)
	}
	if c.World.GroundRatio <= 0 || c.World.GroundRatio > 1 {
		fail("world: ground_ratio must be in (0, 1], got %v", c.World.GroundRatio)
	}

	p := c.Physics
	if p.JumpVelocity >= 0 {
		fail("physics: jump_velocity must be negative (upward), got %v", p.JumpVelocity)
	}
	if p.Gravity <= 0 {
		fail("physics: gravity must be positive, got %v", p.Gravity)
	}
	if p.FallVelocity <= 0 {
		fail("physics: fall_velocity must be positive, got %v", p.FallVelocity)
	}
	if p.MaxJumpHeight <= 0 {
		fail("physics: max_jump_height must be positive, got %v", p.MaxJumpHeight)
	}
	if p.HoldJumpForce < 0 {
		fail("physics: hold_jump_force must not be negative, got %v", p.HoldJumpForce)
	}

	if c.Player.SpriteWidth <= 0 || c.Player.SpriteHeight <= 0 {
		fail("player: sprite size must be positive")
	}
	if c.Player.CrouchDurationMs <= 0 {
		fail("player: crouch_duration_ms must be positive, got %v", c.Player.CrouchDurationMs)
	}
	for _, anim := range PlayerAnimations {
		hb, ok := c.Player.Hitboxes[anim]
		if !ok {
			fail("player: missing hitbox for animation %q", anim)
			continue
		}
		if hb.Width <= 0 || hb.Height <= 0 {
			fail("player: hitbox %q must have positive size", anim)
		}
	}

	errs = append(errs, c.Obstacles.validate()...)

	s := c.Spawn
	if s.BaseSpeed <= 0 {
		fail("spawn: base_speed must be positive, got %v", s.BaseSpeed)
	}
	if s.InitialDelayMs < 0 {
		fail("spawn: initial_delay_ms must not be negative")
	}
	if s.GroupChance < 0 || s.GroupChance > 1 {
		fail("spawn: group_chance must be in [0, 1], got %v", s.GroupChance)
	}
	if s.GroupSize.Min < 1 || s.GroupSize.Max < s.GroupSize.Min {
		fail("spawn: group_size must satisfy 1 <= min <= max, got %d..%d", s.GroupSize.Min, s.GroupSize.Max)
	}
	if err := s.GroupSpacing.validate("spawn: group_spacing"); err != nil {
		errs = append(errs, err)
	}
	if err := s.GapSpacing.validate("spawn: gap_spacing"); err != nil {
		errs = append(errs, err)
	}

	d := c.Difficulty
	if d.Enabled && d.IntervalMs <= 0 {
		fail("difficulty: interval_ms must be positive when enabled")
	}
	if d.SpeedIncrement < 0 || d.DistanceDecrement < 0 {
		fail("difficulty: increments must not be negative")
	}
	if d.MaxSpeed < s.BaseSpeed {
		fail("difficulty: max_speed %v is below spawn base_speed %v", d.MaxSpeed, s.BaseSpeed)
	}
	if d.StartLevel < 1 {
		fail("difficulty: start_level must be at least 1, got %d", d.StartLevel)
	}
	if err := d.GapFloor.validate("difficulty: gap_floor"); err != nil {
		errs = append(errs, err)
	}
	if err := d.GroupFloor.validate("difficulty: group_floor"); err != nil {
		errs = append(errs, err)
	}

	if len(c.Scroll.Layers) == 0 {
		fail("scroll: at least one layer is required")
	} else if c.Scroll.ScoreLayer < 0 || c.Scroll.ScoreLayer >= len(c.Scroll.Layers) {
		fail("scroll: score_layer %d out of range", c.Scroll.ScoreLayer)
	}
	if c.Score.DistanceMultiplier < 0 {
		fail("score: distance_multiplier must not be negative")
	}

	return errors.Join(errs...)
}

func (o ObstacleConfig) validate() []error {
	var errs []error
	if o.PoolSize < 1 {
		errs = append(errs, fmt.Errorf("obstacles: pool_size must be at least 1, got %d", o.PoolSize))
	}
	if len(o.Kinds) == 0 {
		errs = append(errs, errors.New("obstacles: at least one kind is required"))
	}

	seen := make(map[string]bool, len(o.Kinds))
	for _, k := range o.Kinds {
		if !knownKind(k.Name) {
			errs = append(errs, fmt.Errorf("obstacles: unknown kind %q", k.Name))
			continue
		}
		if seen[k.Name] {
			errs = append(errs, fmt.Errorf("obstacles: kind %q listed twice", k.Name))
		}
		seen[k.Name] = true

		if k.YRatio <= 0 {
			errs = append(errs, fmt.Errorf("obstacles: kind %q has no y_ratio", k.Name))
		}
		if k.SpriteWidth <= 0 || k.SpriteHeight <= 0 || k.Scale <= 0 {
			errs = append(errs, fmt.Errorf("obstacles: kind %q needs positive sprite size and scale", k.Name))
		}
		if k.Hitbox.Width <= 0 || k.Hitbox.Height <= 0 {
			errs = append(errs, fmt.Errorf("obstacles: kind %q needs a positive hitbox", k.Name))
		}
		switch {
		case k.Name == "flying" && k.Oscillation == nil:
			errs = append(errs, errors.New(`obstacles: kind "flying" requires oscillation`))
		case k.Name != "flying" && k.Oscillation != nil:
			errs = append(errs, fmt.Errorf("obstacles: only flying obstacles oscillate, %q does", k.Name))
		case k.Oscillation != nil && k.Oscillation.MaxYRatio < k.Oscillation.MinYRatio:
			errs = append(errs, errors.New("obstacles: oscillation max_y_ratio is below min_y_ratio"))
		}
	}
	return errs
}

func (r Range) validate(name string) error {
	if r.Min <= 0 || r.Max < r.Min {
		return fmt.Errorf("%s must satisfy 0 < min <= max, got %v..%v", name, r.Min, r.Max)
	}
	return nil
}

func knownKind(name string) bool {
	return slices.Contains(KindNames, name)
}
