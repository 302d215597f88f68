// Package hook drives the snatch hook: validating a pull, easing the hooked
// body toward its anchor one fixed tick at a time, and releasing it when the
// line is blocked, the anchor leaves the ground or the player acts.
package hook

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/gamemath"
	"github.com/automoto/hookshot/input"
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/tanema/gween/ease"
)

var (
	// ErrNotTarget is returned by Launch for a body that is not the assigned target.
	ErrNotTarget = errors.New("body is not the assigned hook target")
	// ErrPrecondition is returned by Launch when validation fails.
	ErrPrecondition = errors.New("hook precondition failed")
)

// travelEpsilon snaps accumulated tick error onto the end of the pull.
const travelEpsilon = 1e-9

type Option func(*Controller)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithCurve overrides the easing curve named in the config.
func WithCurve(fn ease.TweenFunc) Option {
	return func(c *Controller) { c.curve = fn }
}

// WithGravity sets the gravity magnitude used by Launch.
func WithGravity(g float64) Option {
	return func(c *Controller) { c.gravity = g }
}

// Controller runs one hook session at a time for a single hooking agent.
// It must be driven from the simulation goroutine.
type Controller struct {
	cfg     config.HookConfig
	queries physics.Queries
	bus     *input.Bus
	curve   ease.TweenFunc
	gravity float64
	log     zerolog.Logger

	target  physics.Body
	state   State
	reason  ReleaseReason
	session *Session

	unsubscribe func()
	listeners   listeners
}

// New builds a controller. bus may be nil, in which case only Release and
// the per-tick checks end a session.
func New(cfg config.HookConfig, queries physics.Queries, bus *input.Bus, opts ...Option) *Controller {
	c := &Controller{
		cfg:     cfg,
		queries: queries,
		bus:     bus,
		gravity: config.Ballistic.Gravity,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.curve == nil {
		fn, err := config.Easing(cfg.Easing)
		if err != nil {
			c.log.Warn().Err(err).Msg("falling back to linear easing")
			fn = ease.Linear
		}
		c.curve = fn
	}
	return c
}

func (c *Controller) State() State { return c.state }

// Reason is why the last session was released, or ReasonNone.
func (c *Controller) Reason() ReleaseReason { return c.reason }

// Session returns the current or most recent session, nil before the first.
func (c *Controller) Session() *Session { return c.session }

func (c *Controller) Target() physics.Body { return c.target }

// Subscribe registers l for session notifications.
func (c *Controller) Subscribe(l Listener) (unsubscribe func()) {
	return c.listeners.add(l)
}

// AssignTarget makes b the only body Interact will act on. Reassigning while
// a different body is being pulled releases that pull.
func (c *Controller) AssignTarget(b physics.Body) {
	if b == c.target {
		return
	}
	if c.state.Live() && c.session != nil && c.session.Body != b {
		c.release(ReasonRetarget)
	}
	c.target = b
}

// Interact starts a pull of target toward anchor. It does nothing unless
// target is the assigned target. Pressing interact during a pull releases it.
func (c *Controller) Interact(anchor, target physics.Body) {
	if target == nil || target != c.target {
		return
	}
	if c.state == Traveling {
		c.release(ReasonInteract)
		return
	}
	if anchor == nil || c.queries == nil {
		c.log.Warn().Bool("anchor", anchor != nil).Bool("queries", c.queries != nil).
			Msg("hook interact skipped, missing collaborator")
		return
	}

	s := c.newSession(anchor, target)
	c.session = s
	c.state = Validating
	c.reason = ReasonNone

	if reason := c.validate(s, target.Position()); reason != ReasonNone {
		c.log.Debug().Str("session", s.ID.String()).Stringer("reason", reason).Msg("hook precondition failed")
		c.release(reason)
		return
	}

	s.TravelDuration = s.Start.Dist(anchor.Position()) / s.PullForce
	s.Elapsed = 0
	c.state = Traveling
	if c.bus != nil {
		c.unsubscribe = c.bus.Subscribe(c.onInput)
	}
	c.log.Debug().Str("session", s.ID.String()).Float64("duration", s.TravelDuration).Msg("hook traveling")
}

func (c *Controller) newSession(anchor, target physics.Body) *Session {
	force := c.cfg.PullForce
	if force <= 0 {
		force = math.SmallestNonzeroFloat64
	}
	return &Session{
		ID:         uuid.New(),
		Anchor:     anchor,
		Body:       target,
		Start:      target.Position(),
		PullForce:  force,
		PullOffset: c.cfg.PullOffset,
		Curve:      c.curve,
	}
}

// validate runs the checks shared by Interact, Launch and every travel tick.
// from is the horizontal reference for pull eligibility.
func (c *Controller) validate(s *Session, from mathutil.Vec2) ReleaseReason {
	anchorPos := s.Anchor.Position()
	if !pullEligible(from, anchorPos, s.PullOffset) {
		return ReasonOutOfRange
	}
	if blocked, _ := physics.Occluded(c.queries, s.Body.Position(), anchorPos, c.cfg.ObstacleMask, s.Body, s.Anchor); blocked {
		return ReasonObstructed
	}
	if !c.queries.IsGrounded(s.Anchor) {
		return ReasonUngrounded
	}
	return ReasonNone
}

// Tick advances a traveling session by dt seconds: release checks first, then
// at most one position write.
func (c *Controller) Tick(dt float64) {
	if c.state != Traveling || dt <= 0 {
		return
	}
	s := c.session

	if s.ReleaseRequested {
		c.release(ReasonRequested)
		return
	}
	// Eligibility uses the start point so the pull's own progress never trips it.
	if reason := c.validate(s, s.Start); reason != ReasonNone {
		c.release(reason)
		return
	}

	s.Elapsed = mathutil.MoveTowards(s.Elapsed, s.TravelDuration, dt*s.PullForce)
	if s.TravelDuration-s.Elapsed <= travelEpsilon {
		s.Elapsed = s.TravelDuration
	}
	pos := mathutil.Lerp(s.Start, s.Anchor.Position(), s.eased())
	s.Body.SetPosition(pos)
	s.Ticks++
	c.listeners.each(func(l Listener) { l.OnMove(s, pos) })
	// A listener may have released the session.
	if c.state != Traveling {
		return
	}

	if s.Elapsed >= s.TravelDuration {
		c.complete()
	}
}

func (c *Controller) complete() {
	s := c.session
	c.state = Completed
	c.detachInput()
	c.log.Debug().Str("session", s.ID.String()).Int("ticks", s.Ticks).Msg("hook completed")
	c.listeners.each(func(l Listener) { l.OnCompleted(s) })
}

// RequestRelease flags the session to be released on the next Tick.
func (c *Controller) RequestRelease() {
	if c.state == Traveling {
		c.session.ReleaseRequested = true
	}
}

// Release ends a live session. The body stays at its last written position.
// Calling it with no live session only clears pending flags.
func (c *Controller) Release() {
	if !c.state.Live() {
		if c.session != nil {
			c.session.ReleaseRequested = false
		}
		c.detachInput()
		return
	}
	c.release(ReasonManual)
}

func (c *Controller) release(reason ReleaseReason) {
	s := c.session
	c.state = Released
	c.reason = reason
	s.ReleaseRequested = false
	c.detachInput()
	c.log.Debug().Str("session", s.ID.String()).Stringer("reason", reason).Int("ticks", s.Ticks).Msg("hook released")
	c.listeners.each(func(l Listener) { l.OnReleased(s, reason) })
}

func (c *Controller) detachInput() {
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
}

func (c *Controller) onInput(e input.Event) {
	if c.state != Traveling {
		return
	}
	switch e.Kind {
	case input.InteractPressed:
		c.release(ReasonInteract)
	case input.Move:
		if math.Abs(e.Axis.X) > c.cfg.MoveThreshold {
			c.release(ReasonMove)
		}
	case input.JumpPressed:
		c.release(ReasonJump)
	case input.DashPressed:
		c.release(ReasonDash)
	}
}

// Launch flings target ballistically at anchor instead of pulling it, peaking
// apex units above the target. The solution goes to OnLaunch listeners;
// integrating it is up to the caller. The session ends Completed.
func (c *Controller) Launch(anchor, target physics.Body, apex float64) (gamemath.LaunchSolution, error) {
	if target == nil || target != c.target {
		return gamemath.LaunchSolution{}, ErrNotTarget
	}
	if anchor == nil || c.queries == nil {
		return gamemath.LaunchSolution{}, fmt.Errorf("launch without anchor or physics: %w", ErrPrecondition)
	}
	if c.state.Live() {
		c.release(ReasonRetarget)
	}

	s := c.newSession(anchor, target)
	c.session = s
	c.state = Validating
	c.reason = ReasonNone
	if reason := c.validate(s, s.Start); reason != ReasonNone {
		c.release(reason)
		return gamemath.LaunchSolution{}, fmt.Errorf("launch %s: %w", reason, ErrPrecondition)
	}

	sol, err := gamemath.Solve2D(c.gravity, apex, s.Start, anchor.Position())
	if err != nil {
		c.release(ReasonOutOfRange)
		return gamemath.LaunchSolution{}, fmt.Errorf("launch session %s: %w", s.ID, err)
	}
	s.TravelDuration = sol.TimeToTarget
	s.Elapsed = sol.TimeToTarget
	c.state = Completed
	c.listeners.each(func(l Listener) { l.OnLaunch(s, sol) })
	return sol, nil
}
