// Package sensor keeps track of the bodies an agent can currently see: inside a
// detection circle, inside its field-of-view cone and not hidden behind an
// obstacle.
package sensor

import (
	"errors"
	"fmt"

	"github.com/automoto/hookshot/config"
	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
	"github.com/rs/zerolog"
)

// ErrConfiguration is returned by single-result queries given an ambiguous mask.
var ErrConfiguration = errors.New("sensor configuration error")

// angleEpsilon absorbs float noise so a body exactly on the cone edge is kept.
const angleEpsilon = 1e-9

// Origin supplies the sensor's world position and facing each tick.
type Origin interface {
	Position() mathutil.Vec2
	Forward() mathutil.Vec2
}

// StaticOrigin is an Origin that never moves.
type StaticOrigin struct {
	Pos mathutil.Vec2
	Fwd mathutil.Vec2
}

func (o StaticOrigin) Position() mathutil.Vec2 { return o.Pos }
func (o StaticOrigin) Forward() mathutil.Vec2  { return o.Fwd }

// Delta is the change to the visible set produced by one Tick.
type Delta struct {
	Added   []physics.Body
	Removed []physics.Body
}

// Empty reports whether nothing changed.
func (d Delta) Empty() bool {
	return len(d.Added) == 0 && len(d.Removed) == 0
}

// Listener is notified of visibility changes.
type Listener interface {
	OnFound(b physics.Body)
	OnLost(b physics.Body)
}

// Funcs adapts plain functions to Listener. Nil fields are skipped.
type Funcs struct {
	Found func(physics.Body)
	Lost  func(physics.Body)
}

func (f Funcs) OnFound(b physics.Body) {
	if f.Found != nil {
		f.Found(b)
	}
}

func (f Funcs) OnLost(b physics.Body) {
	if f.Lost != nil {
		f.Lost(b)
	}
}

type Option func(*Sensor)

// WithLogger sets the sensor's diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Sensor) { s.log = l }
}

// Sensor is a field-of-view sensor. It must be driven from a single goroutine.
type Sensor struct {
	cfg     config.SensorConfig
	origin  Origin
	queries physics.Queries
	log     zerolog.Logger

	enabled bool
	visible []physics.Body
	loss    lossTimer

	listeners    map[int]Listener
	listenerKeys []int
	nextListener int

	warnedNoQueries bool
}

// New builds a sensor reading its position from origin and querying the world
// through queries.
func New(cfg config.SensorConfig, origin Origin, queries physics.Queries, opts ...Option) *Sensor {
	s := &Sensor{
		cfg:       cfg,
		origin:    origin,
		queries:   queries,
		log:       zerolog.Nop(),
		enabled:   true,
		listeners: map[int]Listener{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Sensor) Config() config.SensorConfig { return s.cfg }

func (s *Sensor) Enabled() bool { return s.enabled }

// SetEnabled turns detection on or off. A disabled sensor keeps its visible
// set untouched and its Tick does nothing.
func (s *Sensor) SetEnabled(on bool) { s.enabled = on }

// Subscribe registers l for found/lost notifications.
func (s *Sensor) Subscribe(l Listener) (unsubscribe func()) {
	s.nextListener++
	id := s.nextListener
	s.listeners[id] = l
	s.listenerKeys = append(s.listenerKeys, id)
	return func() {
		if _, ok := s.listeners[id]; !ok {
			return
		}
		delete(s.listeners, id)
		for i, k := range s.listenerKeys {
			if k == id {
				s.listenerKeys = append(s.listenerKeys[:i:i], s.listenerKeys[i+1:]...)
				break
			}
		}
	}
}

// Visible returns the visible bodies in detection order.
func (s *Sensor) Visible() []physics.Body {
	return append([]physics.Body(nil), s.visible...)
}

// Tick re-evaluates visibility and advances the lost-target countdown by dt.
// The countdown keeps running while detection is disabled.
func (s *Sensor) Tick(dt float64) Delta {
	s.loss.advance(dt)
	if !s.enabled {
		return Delta{}
	}

	if s.queries == nil || s.origin == nil {
		if !s.warnedNoQueries {
			s.log.Warn().Msg("sensor has no physics queries or origin, detection disabled")
			s.warnedNoQueries = true
		}
		return Delta{}
	}

	pos := s.origin.Position()
	fwd := s.origin.Forward()

	candidates := s.queries.OverlapCircle(pos, s.cfg.DetectionRadius, s.cfg.TargetMask)
	inRange := make(map[physics.Body]bool, len(candidates))
	for _, c := range candidates {
		if c != nil && c.Active() {
			inRange[c] = true
		}
	}

	var delta Delta
	kept := s.visible[:0:0]
	tracked := make(map[physics.Body]bool, len(s.visible))
	for _, b := range s.visible {
		tracked[b] = true
		if inRange[b] && s.sees(pos, fwd, b) {
			kept = append(kept, b)
			continue
		}
		delta.Removed = append(delta.Removed, b)
	}
	for _, c := range candidates {
		if !inRange[c] || tracked[c] {
			continue
		}
		tracked[c] = true
		if s.sees(pos, fwd, c) {
			kept = append(kept, c)
			delta.Added = append(delta.Added, c)
		}
	}
	s.visible = kept

	if len(delta.Added) > 0 {
		s.loss.reset()
	}
	s.notify(delta)
	return delta
}

// sees runs the cone and line-of-sight tests for one body.
func (s *Sensor) sees(pos, fwd mathutil.Vec2, b physics.Body) bool {
	target := b.Position()
	if mathutil.AngleDeg(fwd, target.Sub(pos)) > s.cfg.FieldOfViewDegrees/2+angleEpsilon {
		return false
	}
	blocked, _ := physics.Occluded(s.queries, pos, target, s.cfg.ObstacleMask, b)
	return !blocked
}

func (s *Sensor) notify(d Delta) {
	if d.Empty() {
		return
	}
	for _, id := range append([]int(nil), s.listenerKeys...) {
		l, ok := s.listeners[id]
		if !ok {
			continue
		}
		for _, b := range d.Removed {
			l.OnLost(b)
		}
		for _, b := range d.Added {
			l.OnFound(b)
		}
	}
	s.log.Debug().Int("added", len(d.Added)).Int("removed", len(d.Removed)).Int("visible", len(s.visible)).Msg("visibility changed")
}

// HasLostTarget polls the lost-target debounce. The first call starts a
// countdown of TargetLostGrace seconds (advanced by Tick) and returns false;
// the first call after it runs out returns true and clears the countdown, so
// the next call starts a fresh one.
func (s *Sensor) HasLostTarget() bool {
	return s.loss.poll(s.cfg.TargetLostGrace)
}

// Searching reports whether a lost-target countdown is running.
func (s *Sensor) Searching() bool { return s.loss.searching }

// ResetLostTarget cancels a running countdown.
func (s *Sensor) ResetLostTarget() { s.loss.reset() }

// QueryByMask returns the first visible, active body whose layer is in mask.
// A mask naming more than one layer is rejected with ErrConfiguration.
func (s *Sensor) QueryByMask(mask physics.LayerMask) (physics.Body, error) {
	if mask.Count() > 1 {
		return nil, fmt.Errorf("query by mask %032b spans %d layers: %w", uint32(mask), mask.Count(), ErrConfiguration)
	}
	for _, b := range s.visible {
		if b.Active() && physics.HasLayer(b, mask) {
			return b, nil
		}
	}
	return nil, nil
}

// OverlapsPoint reports whether p lies inside the detection circle.
func (s *Sensor) OverlapsPoint(p mathutil.Vec2) bool {
	if s.origin == nil {
		return false
	}
	return s.origin.Position().Dist(p) <= s.cfg.DetectionRadius
}
