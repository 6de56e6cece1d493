package sim

import (
	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Player is the runner's sprite geometry on top of its motion controller.
// The horizontal position is fixed; Motion owns the vertical one.
type Player struct {
	motion   *Motion
	x        float64 // Sprite center
	width    float64
	height   float64
	hitboxes map[Phase]config.PlayerHitbox
}

// NewPlayer places the player at the configured fraction of the viewport.
func NewPlayer(cfg config.PlayerConfig, vp Viewport, motion *Motion) *Player {
	return &Player{
		motion: motion,
		x:      vp.W * cfg.XRatio,
		width:  cfg.SpriteWidth,
		height: cfg.SpriteHeight,
		hitboxes: map[Phase]config.PlayerHitbox{
			PhaseGrounded:  cfg.Hitboxes[string(AnimRun)],
			PhaseJumping:   cfg.Hitboxes[string(AnimJump)],
			PhaseCrouching: cfg.Hitboxes[string(AnimCrouch)],
		},
	}
}

// Motion returns the motion controller.
func (p *Player) Motion() *Motion { return p.motion }

// Sprite returns the sprite bounds in world coordinates.
func (p *Player) Sprite() core.Box {
	return core.BoxFromCenter(p.x, p.motion.Y(), p.width, p.height)
}

// Hitbox returns the collision rectangle for the current animation.
func (p *Player) Hitbox() core.Box {
	s := p.Sprite()
	hb := p.hitboxes[p.motion.Phase()]
	return core.NewBox(
		s.X+hb.OffsetX*p.width,
		s.Y+hb.OffsetY*p.height,
		hb.Width*p.width,
		hb.Height*p.height,
	)
}
