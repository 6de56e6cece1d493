package sim

import (
	"math"

	"github.com/vovakirdan/tui-runner/internal/config"
)

// Phase is the player's motion state.
type Phase int

const (
	PhaseGrounded Phase = iota
	PhaseJumping
	PhaseCrouching
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseGrounded:
		return "grounded"
	case PhaseJumping:
		return "jumping"
	case PhaseCrouching:
		return "crouching"
	default:
		return "unknown"
	}
}

// Anim returns the animation that matches the phase.
func (p Phase) Anim() Anim {
	switch p {
	case PhaseJumping:
		return AnimJump
	case PhaseCrouching:
		return AnimCrouch
	default:
		return AnimRun
	}
}

// taperVelocity is the speed below which the hold force is halved near the apex.
const taperVelocity = 2

// Motion owns the player's jump and crouch state and its vertical position.
//
// Jumping and crouching are mutually exclusive. A jump request always
// interrupts a crouch and starts from a fully reset state; a crouch request
// while airborne is ignored. Holding jump through a landing does not jump
// again until the button has been released.
type Motion struct {
	physics  config.PhysicsProfile
	crouchMs float64
	events   *EventQueue

	groundY     float64 // Rest position, fixed at spawn
	y           float64 // Current vertical position (smaller is higher)
	velocity    float64 // Per 60 Hz tick, negative is upward
	height      float64 // groundY - y
	phase       Phase
	holdingJump bool

	jumpHeld     bool    // Jump button is down
	crouchHeld   bool    // Crouch button is down
	rearmPending bool    // Landed with jump held; waits for a release
	crouchTimer  float64 // Milliseconds spent in the current crouch
}

// NewMotion creates a grounded motion controller resting at groundY.
func NewMotion(physics config.PhysicsProfile, groundY, crouchMs float64, events *EventQueue) *Motion {
	m := &Motion{
		physics:  physics,
		crouchMs: crouchMs,
		events:   events,
		groundY:  groundY,
	}
	m.Reset()
	return m
}

// Reset puts the player back on the ground with all input state cleared.
func (m *Motion) Reset() {
	m.y = m.groundY
	m.velocity = 0
	m.height = 0
	m.phase = PhaseGrounded
	m.holdingJump = false
	m.jumpHeld = false
	m.crouchHeld = false
	m.rearmPending = false
	m.crouchTimer = 0
}

// StartJump begins a jump from the ground or out of a crouch.
func (m *Motion) StartJump() {
	m.jumpHeld = true
	if m.phase == PhaseJumping || m.rearmPending {
		return
	}

	m.crouchTimer = 0
	m.y = m.groundY
	m.velocity = m.physics.JumpVelocity
	m.height = 0
	m.phase = PhaseJumping
	m.holdingJump = true
	m.events.animate(AnimJump)
}

// ReleaseJump ends the hold phase of a jump. Upward velocity is halved
// rather than zeroed so the apex stays smooth.
func (m *Motion) ReleaseJump() {
	m.jumpHeld = false
	m.rearmPending = false
	if m.phase != PhaseJumping {
		return
	}
	m.holdingJump = false
	if m.velocity < 0 {
		m.velocity /= 2
	}
}

// StartCrouch crouches if the player is on the ground.
func (m *Motion) StartCrouch() {
	m.crouchHeld = true
	if m.phase != PhaseGrounded {
		return
	}
	m.beginCrouch()
}

// ReleaseCrouch stands the player up immediately.
func (m *Motion) ReleaseCrouch() {
	m.crouchHeld = false
	if m.phase == PhaseCrouching {
		m.endCrouch()
	}
}

// Update advances the controller. dt is the elapsed time in 60 Hz ticks and
// deltaMs the same span in milliseconds.
func (m *Motion) Update(dt, deltaMs float64) {
	switch m.phase {
	case PhaseCrouching:
		m.crouchTimer += deltaMs
		// A held crouch outlives the timer and ends on release.
		if m.crouchTimer >= m.crouchMs && !m.crouchHeld {
			m.endCrouch()
		}
	case PhaseJumping:
		m.integrate(dt)
	}
}

func (m *Motion) integrate(dt float64) {
	p := m.physics

	m.height = m.groundY - m.y
	switch {
	case m.height >= p.MaxJumpHeight:
		m.velocity = p.FallVelocity
		m.holdingJump = false
	case !m.holdingJump:
		m.velocity = p.FallVelocity
	case m.velocity < 0:
		force := p.HoldJumpForce
		if math.Abs(m.velocity) < taperVelocity {
			force /= 2
		}
		m.velocity -= force * dt
	}

	m.velocity += p.Gravity * dt
	m.y += m.velocity * dt
	m.height = m.groundY - m.y

	if m.height > p.MaxJumpHeight {
		m.y = m.groundY - p.MaxJumpHeight
		m.height = p.MaxJumpHeight
		m.velocity = math.Abs(p.JumpVelocity)
	}

	if m.velocity > 0 && m.y >= m.groundY {
		m.land()
	}
}

func (m *Motion) land() {
	m.y = m.groundY
	m.velocity = 0
	m.height = 0
	m.holdingJump = false
	m.phase = PhaseGrounded
	if m.jumpHeld {
		m.rearmPending = true
	}

	if m.crouchHeld {
		m.beginCrouch()
		return
	}
	m.events.animate(AnimRun)
}

func (m *Motion) beginCrouch() {
	m.phase = PhaseCrouching
	m.crouchTimer = 0
	m.events.animate(AnimCrouch)
}

func (m *Motion) endCrouch() {
	m.phase = PhaseGrounded
	m.crouchTimer = 0
	m.events.animate(AnimRun)
}

// Y returns the current vertical position.
func (m *Motion) Y() float64 { return m.y }

// GroundY returns the rest position.
func (m *Motion) GroundY() float64 { return m.groundY }

// Velocity returns the vertical velocity per 60 Hz tick.
func (m *Motion) Velocity() float64 { return m.velocity }

// Height returns the distance above the ground.
func (m *Motion) Height() float64 { return m.height }

// Phase returns the current motion state.
func (m *Motion) Phase() Phase { return m.phase }

// HoldingJump reports whether the jump is still in its hold phase.
func (m *Motion) HoldingJump() bool { return m.holdingJump }

// RearmPending reports whether jumping is locked until the button is released.
func (m *Motion) RearmPending() bool { return m.rearmPending }
