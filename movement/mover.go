// Package movement steers AI agents horizontally and tracks stun time.
package movement

import (
	"math"

	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/gamemath"
	"github.com/automoto/hookshot/input"
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
	"github.com/rs/zerolog"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type Option func(*Mover)

func WithLogger(l zerolog.Logger) Option {
	return func(m *Mover) { m.log = l }
}

// Mover computes an agent's horizontal velocity. It never writes the body's
// position; the physics step integrates VelocityX.
type Mover struct {
	cfg  config.MovementConfig
	body physics.Body
	log  zerolog.Logger

	facing    float64
	velocityX float64
	smooth    float64
	smoothVel float64

	locked bool
	stun   *gween.Tween
}

// New builds a mover for body, facing right.
func New(cfg config.MovementConfig, body physics.Body, opts ...Option) *Mover {
	m := &Mover{
		cfg:    cfg,
		body:   body,
		log:    zerolog.Nop(),
		facing: 1,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func (m *Mover) Body() physics.Body { return m.body }

// Position is the body's current center.
func (m *Mover) Position() mathutil.Vec2 {
	if m.body == nil {
		return mathutil.Vec2{}
	}
	return m.body.Position()
}

// Forward is the unit facing direction along X.
func (m *Mover) Forward() mathutil.Vec2 { return mathutil.Vec2{X: m.facing} }

func (m *Mover) VelocityX() float64 { return m.velocityX }

// CanMove reports whether Move has any effect.
func (m *Mover) CanMove() bool { return !m.locked && !m.IsStunned() }

func (m *Mover) IsStunned() bool { return m.stun != nil }

// StunRemaining is the stun time left in seconds.
func (m *Mover) StunRemaining() float64 {
	if m.stun == nil {
		return 0
	}
	cur, _ := m.stun.Update(0)
	return float64(cur)
}

// LockMovement blocks or unblocks Move.
func (m *Mover) LockMovement(locked bool) {
	m.locked = locked
	if locked {
		m.velocityX = 0
	}
}

// Move steers toward target, stopping ApproachOffset short on the near side.
func (m *Mover) Move(target mathutil.Vec2, dt float64) {
	if m.body == nil || !m.CanMove() {
		return
	}
	pos := m.body.Position()
	offset := mathutil.Vec2{X: m.cfg.ApproachOffset * mathutil.Sign(target.X-pos.X)}
	if target.X-pos.X == 0 {
		offset.X = -offset.X
	}
	dir := target.Sub(offset).Sub(pos).Normalized()

	m.smoothVel = 0
	m.smooth = gamemath.SmoothDamp(m.smooth, dir.X, &m.smoothVel, m.cfg.SmoothTime, math.Inf(1), dt)
	m.velocityX = m.smooth * m.cfg.MoveSpeed
}

// Approach moves toward target until within CloseDistance, then stops.
// It reports whether the agent is close enough.
func (m *Mover) Approach(target mathutil.Vec2, dt float64) bool {
	if m.body == nil {
		return false
	}
	if m.body.Position().Dist(target) <= m.cfg.CloseDistance {
		m.Stop()
		return true
	}
	m.Move(target, dt)
	return false
}

// Flee moves away from threat while it is closer than FleeDistance.
func (m *Mover) Flee(threat mathutil.Vec2, dt float64) bool {
	if m.body == nil {
		return false
	}
	pos := m.body.Position()
	if pos.Dist(threat) >= m.cfg.FleeDistance {
		m.Stop()
		return false
	}
	away := pos.Add(pos.Sub(threat))
	if away.X == pos.X {
		away.X = pos.X + m.facing
	}
	m.Move(away, dt)
	return true
}

// Stop zeroes horizontal velocity and smoothing state.
func (m *Mover) Stop() {
	m.velocityX = 0
	m.smooth = 0
	m.smoothVel = 0
}

// LookAt turns to face target horizontally. A target straight above or below
// keeps the current facing.
func (m *Mover) LookAt(target mathutil.Vec2) {
	if m.body == nil {
		return
	}
	dx := target.X - m.body.Position().X
	if dx != 0 {
		m.facing = mathutil.Sign(dx)
	}
}

// HitStun stops the agent for seconds. A longer stun replaces a shorter one.
func (m *Mover) HitStun(seconds float64) {
	if seconds <= 0 || seconds < m.StunRemaining() {
		return
	}
	m.stun = gween.New(float32(seconds), 0, float32(seconds), ease.Linear)
	m.Stop()
	m.log.Debug().Float64("seconds", seconds).Msg("stunned")
}

// DashStun stuns only when target is this mover's body.
func (m *Mover) DashStun(target physics.Body, seconds float64) {
	if target == nil || target != m.body {
		return
	}
	m.HitStun(seconds)
}

// Listen applies stun events from bus to this mover.
func (m *Mover) Listen(bus *input.Bus) (unsubscribe func()) {
	return bus.Subscribe(func(e input.Event) {
		if e.Kind == input.Stun {
			m.DashStun(e.Target, e.Seconds)
		}
	})
}

// Tick counts down an active stun.
func (m *Mover) Tick(dt float64) {
	if m.stun == nil {
		return
	}
	if _, done := m.stun.Update(float32(dt)); done {
		m.stun = nil
		m.log.Debug().Msg("stun over")
	}
}
