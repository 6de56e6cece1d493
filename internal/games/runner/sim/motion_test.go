package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-runner/internal/config"
)

func scenarioPhysics() config.PhysicsProfile {
	return config.PhysicsProfile{
		JumpVelocity:  -8,
		Gravity:       0.1,
		FallVelocity:  4.4,
		MaxJumpHeight: 750,
	}
}

func newTestMotion(p config.PhysicsProfile) (*Motion, *EventQueue) {
	q := &EventQueue{}
	return NewMotion(p, 400, 700, q), q
}

func tick(m *Motion) { m.Update(1, TickMs) }

func TestMotionHeldJumpArc(t *testing.T) {
	m, _ := newTestMotion(scenarioPhysics())
	m.StartJump()
	require.Equal(t, PhaseJumping, m.Phase())

	ys := []float64{m.Y()}
	for i := 0; i < 500 && m.Phase() == PhaseJumping; i++ {
		tick(m)
		ys = append(ys, m.Y())
	}

	require.Equal(t, PhaseGrounded, m.Phase(), "never landed")
	require.Less(t, len(ys), 500)

	apex := 0
	for i, y := range ys {
		if y < ys[apex] {
			apex = i
		}
	}
	require.Greater(t, apex, 0, "never rose")
	for i := 1; i <= apex; i++ {
		require.LessOrEqual(t, ys[i], ys[i-1], "not rising at step %d", i)
	}
	for i := apex + 1; i < len(ys); i++ {
		require.GreaterOrEqual(t, ys[i], ys[i-1], "not falling at step %d", i)
	}

	require.Equal(t, 400.0, m.Y())
	require.Zero(t, m.Velocity())
	require.Zero(t, m.Height())
}

func TestMotionHeightClamp(t *testing.T) {
	p := scenarioPhysics()
	p.MaxJumpHeight = 60
	p.HoldJumpForce = 0.3 // Stronger than gravity: only the clamp ends the ascent

	m, _ := newTestMotion(p)
	m.StartJump()

	clamped := false
	for i := 0; i < 1000 && m.Phase() == PhaseJumping; i++ {
		tick(m)
		require.LessOrEqual(t, m.Height(), p.MaxJumpHeight)
		require.GreaterOrEqual(t, m.Height(), 0.0)
		if m.Height() == p.MaxJumpHeight {
			clamped = true
		}
	}
	require.True(t, clamped, "never reached the clamp")
	require.Equal(t, PhaseGrounded, m.Phase())
}

func TestMotionAlwaysLands(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		m, _ := newTestMotion(scenarioPhysics())
		for i := 0; i < 300; i++ {
			switch rng.Intn(5) {
			case 0:
				m.StartJump()
			case 1:
				m.ReleaseJump()
			case 2:
				m.StartCrouch()
			case 3:
				m.ReleaseCrouch()
			default:
				m.Update(rng.Float64()*2, rng.Float64()*40)
			}
			require.LessOrEqual(t, m.Y(), m.GroundY())
		}

		m.ReleaseJump()
		m.ReleaseCrouch()
		for i := 0; i < 1000 && m.Phase() != PhaseGrounded; i++ {
			tick(m)
		}
		require.Equal(t, PhaseGrounded, m.Phase(), "run %d", run)
		require.Equal(t, m.GroundY(), m.Y())
		require.Zero(t, m.Velocity())
	}
}

func TestMotionReleaseHalvesUpwardVelocity(t *testing.T) {
	m, _ := newTestMotion(scenarioPhysics())
	m.StartJump()
	tick(m)
	v := m.Velocity()
	require.Less(t, v, 0.0)

	m.ReleaseJump()
	require.InDelta(t, v/2, m.Velocity(), 1e-9)
	require.False(t, m.HoldingJump())

	// Without the hold the next step falls at the fixed fall velocity.
	tick(m)
	require.InDelta(t, 4.5, m.Velocity(), 1e-9)
}

func TestMotionJumpIgnoredWhileJumping(t *testing.T) {
	m, q := newTestMotion(scenarioPhysics())
	m.StartJump()
	tick(m)
	y, v := m.Y(), m.Velocity()

	m.StartJump()
	require.Equal(t, y, m.Y())
	require.Equal(t, v, m.Velocity())

	jumps := 0
	for _, e := range q.Drain() {
		if e.Anim == AnimJump {
			jumps++
		}
	}
	require.Equal(t, 1, jumps)
}

func TestMotionJumpInterruptsCrouch(t *testing.T) {
	m, q := newTestMotion(scenarioPhysics())
	m.StartCrouch()
	m.Update(1, 300)
	require.Equal(t, PhaseCrouching, m.Phase())

	m.StartJump()
	require.Equal(t, PhaseJumping, m.Phase())
	require.Equal(t, -8.0, m.Velocity())
	require.Zero(t, m.Height())
	require.True(t, m.HoldingJump())

	events := q.Drain()
	require.Equal(t, AnimJump, events[len(events)-1].Anim)
}

func TestMotionCrouchRejectedWhileJumping(t *testing.T) {
	m, _ := newTestMotion(scenarioPhysics())
	m.StartJump()
	m.StartCrouch()
	require.Equal(t, PhaseJumping, m.Phase())
}

func TestMotionCrouchLifetime(t *testing.T) {
	t.Run("release ends crouch immediately", func(t *testing.T) {
		m, _ := newTestMotion(scenarioPhysics())
		m.StartCrouch()
		m.Update(1, 100)
		m.ReleaseCrouch()
		require.Equal(t, PhaseGrounded, m.Phase())
	})

	t.Run("held crouch outlasts the timer", func(t *testing.T) {
		m, _ := newTestMotion(scenarioPhysics())
		m.StartCrouch()
		for i := 0; i < 20; i++ {
			m.Update(6, 100)
		}
		require.Equal(t, PhaseCrouching, m.Phase())

		m.ReleaseCrouch()
		require.Equal(t, PhaseGrounded, m.Phase())
	})
}

func TestMotionRearmAfterLanding(t *testing.T) {
	m, _ := newTestMotion(scenarioPhysics())
	m.StartJump()
	for i := 0; i < 500 && m.Phase() == PhaseJumping; i++ {
		tick(m)
	}
	require.Equal(t, PhaseGrounded, m.Phase())
	require.True(t, m.RearmPending(), "jump still held at landing")

	m.StartJump()
	require.Equal(t, PhaseGrounded, m.Phase(), "jumped without a release")

	m.ReleaseJump()
	require.False(t, m.RearmPending())
	m.StartJump()
	require.Equal(t, PhaseJumping, m.Phase())
}

func TestMotionPendingCrouchOnLanding(t *testing.T) {
	m, q := newTestMotion(scenarioPhysics())
	m.StartJump()
	m.ReleaseJump()
	m.StartCrouch() // Rejected for now but remembered as held
	require.Equal(t, PhaseJumping, m.Phase())

	for i := 0; i < 500 && m.Phase() == PhaseJumping; i++ {
		tick(m)
	}
	require.Equal(t, PhaseCrouching, m.Phase())

	events := q.Drain()
	require.Equal(t, AnimCrouch, events[len(events)-1].Anim)
}
