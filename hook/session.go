package hook

import (
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
	"github.com/google/uuid"
	"github.com/tanema/gween/ease"
)

// Session is one pull of Body toward Anchor.
type Session struct {
	ID     uuid.UUID
	Anchor physics.Body
	Body   physics.Body
	Start  mathutil.Vec2

	PullForce  float64
	PullOffset float64
	Curve      ease.TweenFunc

	Elapsed        float64
	TravelDuration float64
	Ticks          int

	ReleaseRequested bool
}

// Progress is Elapsed/TravelDuration in [0, 1].
func (s *Session) Progress() float64 {
	if s.TravelDuration <= 0 {
		return 1
	}
	return mathutil.ClampFloat(s.Elapsed/s.TravelDuration, 0, 1)
}

// eased maps progress through the curve.
func (s *Session) eased() float64 {
	p := s.Progress()
	if s.Curve == nil {
		return p
	}
	return float64(s.Curve(float32(p), 0, 1, 1))
}

// pullEligible reports whether the start and anchor are far enough apart
// horizontally for a pull.
func pullEligible(from, anchor mathutil.Vec2, offset float64) bool {
	return from.X > anchor.X+offset || from.X < anchor.X-offset
}
