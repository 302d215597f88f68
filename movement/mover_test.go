package movement

import (
	"testing"

	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/input"
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics/physicstest"
	"github.com/stretchr/testify/assert"
)

const dt = 1.0 / 60

func newMover() (*Mover, *physicstest.Body) {
	body := physicstest.NewBody("agent", mathutil.Vec2{}, 3)
	return New(config.Movement, body), body
}

func TestMoveTowardTarget(t *testing.T) {
	m, _ := newMover()

	m.Move(mathutil.Vec2{X: 50}, dt)
	right := m.VelocityX()
	assert.Greater(t, right, 0.0)
	assert.LessOrEqual(t, right, config.Movement.MoveSpeed)

	for i := 0; i < 30; i++ {
		m.Move(mathutil.Vec2{X: 50}, dt)
	}
	assert.Greater(t, m.VelocityX(), right)
	assert.InDelta(t, config.Movement.MoveSpeed, m.VelocityX(), 1)

	m.Stop()
	m.Move(mathutil.Vec2{X: -50}, dt)
	assert.Less(t, m.VelocityX(), 0.0)
}

func TestMoveNeverWritesPosition(t *testing.T) {
	m, body := newMover()
	m.Move(mathutil.Vec2{X: 50}, dt)
	m.Tick(dt)
	assert.Empty(t, body.Writes)
}

func TestApproachStopsWhenClose(t *testing.T) {
	m, body := newMover()

	assert.False(t, m.Approach(mathutil.Vec2{X: 100}, dt))
	assert.NotZero(t, m.VelocityX())

	body.Pos = mathutil.Vec2{X: 100 - config.Movement.CloseDistance/2}
	assert.True(t, m.Approach(mathutil.Vec2{X: 100}, dt))
	assert.Zero(t, m.VelocityX())
}

func TestFlee(t *testing.T) {
	m, _ := newMover()

	assert.True(t, m.Flee(mathutil.Vec2{X: 5}, dt))
	assert.Less(t, m.VelocityX(), 0.0)

	assert.False(t, m.Flee(mathutil.Vec2{X: 500}, dt))
	assert.Zero(t, m.VelocityX())
}

func TestLookAt(t *testing.T) {
	m, _ := newMover()
	assert.Equal(t, mathutil.Vec2{X: 1}, m.Forward())

	m.LookAt(mathutil.Vec2{X: -3, Y: 8})
	assert.Equal(t, mathutil.Vec2{X: -1}, m.Forward())

	m.LookAt(mathutil.Vec2{Y: 8})
	assert.Equal(t, mathutil.Vec2{X: -1}, m.Forward())
}

func TestHitStunLocksForDuration(t *testing.T) {
	m, _ := newMover()
	m.Move(mathutil.Vec2{X: 50}, dt)

	m.HitStun(0.5)
	assert.True(t, m.IsStunned())
	assert.Zero(t, m.VelocityX())
	assert.InDelta(t, 0.5, m.StunRemaining(), 1e-6)

	m.Move(mathutil.Vec2{X: 50}, dt)
	assert.Zero(t, m.VelocityX())

	for i := 0; i < 29; i++ {
		m.Tick(dt)
	}
	assert.True(t, m.IsStunned())
	for i := 0; i < 2; i++ {
		m.Tick(dt)
	}
	assert.False(t, m.IsStunned())

	m.Move(mathutil.Vec2{X: 50}, dt)
	assert.Greater(t, m.VelocityX(), 0.0)
}

func TestShorterStunDoesNotShorten(t *testing.T) {
	m, _ := newMover()
	m.HitStun(1)
	m.HitStun(0.1)
	assert.InDelta(t, 1, m.StunRemaining(), 1e-6)
}

func TestDashStunFromBus(t *testing.T) {
	m, body := newMover()
	other := physicstest.NewBody("other", mathutil.Vec2{}, 3)
	bus := input.NewBus()
	unsub := m.Listen(bus)

	bus.Stun(other, 1)
	assert.False(t, m.IsStunned())

	bus.Stun(body, 1)
	assert.True(t, m.IsStunned())

	unsub()
	assert.Equal(t, 0, bus.Len())
}

func TestLockMovement(t *testing.T) {
	m, _ := newMover()
	m.LockMovement(true)
	m.Move(mathutil.Vec2{X: 50}, dt)
	assert.Zero(t, m.VelocityX())
	assert.False(t, m.CanMove())

	m.LockMovement(false)
	m.Move(mathutil.Vec2{X: 50}, dt)
	assert.NotZero(t, m.VelocityX())
}
