package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
	"github.com/vovakirdan/tui-runner/internal/core"
)

// Kind is an obstacle type.
type Kind int

const (
	KindSmall Kind = iota
	KindMedium
	KindLarge
	KindFlying
)

// String returns the kind name used in configuration.
func (k Kind) String() string {
	switch k {
	case KindSmall:
		return "small"
	case KindMedium:
		return "medium"
	case KindLarge:
		return "large"
	case KindFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// ParseKind converts a configuration name to a Kind.
func ParseKind(name string) (Kind, error) {
	for k := KindSmall; k <= KindFlying; k++ {
		if k.String() == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("sim: unknown obstacle kind %q", name)
}

// parkedX and parkedY hold inactive obstacles well outside any viewport.
const (
	parkedX = -10000
	parkedY = -10000
)

// Poolable is an entity that a pool toggles instead of allocating.
type Poolable interface {
	Active() bool
	Deactivate()
}

// Hitbox is a collision rectangle relative to a sprite's top-left corner.
type Hitbox struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

// Oscillation is the vertical bobbing of a flying obstacle.
type Oscillation struct {
	CenterY   float64
	Amplitude float64
	Speed     float64 // Radians per second
	Start     float64 // Simulation time of activation, milliseconds
}

// Obstacle is a pooled obstacle. Its position is the sprite center.
type Obstacle struct {
	kind   Kind
	active bool
	x, y   float64
	speed  float64 // Leftward, world pixels per second

	width, height float64 // Displayed sprite size
	hitbox        Hitbox
	osc           *Oscillation
}

// NewObstacle builds an inactive obstacle from its kind configuration.
// The hitbox is computed here once. viewportH sizes the oscillation band.
func NewObstacle(kind Kind, kc config.KindConfig, viewportH float64) *Obstacle {
	w := kc.SpriteWidth * kc.Scale
	h := kc.SpriteHeight * kc.Scale

	hbW := math.Round(w * kc.Hitbox.Width)
	hbH := math.Round(h * kc.Hitbox.Height)

	o := &Obstacle{
		kind:   kind,
		width:  w,
		height: h,
		hitbox: Hitbox{
			Width:   hbW,
			Height:  hbH,
			OffsetX: math.Round((w - hbW) * kc.Hitbox.OffsetXFactor),
			OffsetY: math.Round((h - hbH) * kc.Hitbox.OffsetYFactor),
		},
	}
	if kc.Oscillation != nil {
		minY := viewportH * kc.Oscillation.MinYRatio
		maxY := viewportH * kc.Oscillation.MaxYRatio
		o.osc = &Oscillation{
			CenterY:   (minY + maxY) / 2,
			Amplitude: (maxY - minY) / 2,
			Speed:     kc.Oscillation.Speed,
		}
	}
	o.park()
	return o
}

// Activate places the obstacle at (x, y) moving left at speed.
func (o *Obstacle) Activate(x, y, speed, now float64) {
	o.active = true
	o.x = x
	o.y = y
	o.speed = speed
	if o.osc != nil {
		o.osc.Start = now
		o.y = o.osc.CenterY
	}
}

// Deactivate parks the obstacle off-screen. Calling it again is a no-op.
func (o *Obstacle) Deactivate() {
	if !o.active {
		return
	}
	o.active = false
	o.park()
}

func (o *Obstacle) park() {
	o.x = parkedX
	o.y = parkedY
	o.speed = 0
}

// Update moves an active obstacle by deltaMs of simulation time.
func (o *Obstacle) Update(now, deltaMs float64) {
	if !o.active {
		return
	}
	o.x -= o.speed * deltaMs / 1000
	if o.osc != nil {
		elapsed := (now - o.osc.Start) / 1000
		o.y = o.osc.CenterY + math.Sin(elapsed*o.osc.Speed)*o.osc.Amplitude
	}
}

// Kind returns the obstacle type.
func (o *Obstacle) Kind() Kind { return o.kind }

// Active reports whether the obstacle is in play.
func (o *Obstacle) Active() bool { return o.active }

// Position returns the sprite center.
func (o *Obstacle) Position() (x, y float64) { return o.x, o.y }

// Speed returns the leftward speed in pixels per second.
func (o *Obstacle) Speed() float64 { return o.speed }

// VelocityX returns the signed horizontal velocity. It is never positive.
func (o *Obstacle) VelocityX() float64 { return -o.speed }

// Shape returns the hitbox relative to the sprite.
func (o *Obstacle) Shape() Hitbox { return o.hitbox }

// Oscillates reports whether the obstacle bobs vertically.
func (o *Obstacle) Oscillates() bool { return o.osc != nil }

// Sprite returns the displayed sprite bounds in world coordinates.
func (o *Obstacle) Sprite() core.Box {
	return core.BoxFromCenter(o.x, o.y, o.width, o.height)
}

// Hitbox returns the collision rectangle in world coordinates.
func (o *Obstacle) Hitbox() core.Box {
	s := o.Sprite()
	return core.NewBox(s.X+o.hitbox.OffsetX, s.Y+o.hitbox.OffsetY, o.hitbox.Width, o.hitbox.Height)
}
