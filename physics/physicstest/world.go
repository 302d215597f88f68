// Package physicstest provides a deterministic in-memory physics backend for tests.
package physicstest

import (
	"math"

	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
)

// Body is a point body that records every position write.
type Body struct {
	Name     string
	Pos      mathutil.Vec2
	L        physics.Layer
	Inactive bool

	Writes []mathutil.Vec2
}

func NewBody(name string, pos mathutil.Vec2, layer physics.Layer) *Body {
	return &Body{Name: name, Pos: pos, L: layer}
}

func (b *Body) Position() mathutil.Vec2 { return b.Pos }

func (b *Body) SetPosition(p mathutil.Vec2) {
	b.Pos = p
	b.Writes = append(b.Writes, p)
}

func (b *Body) Layer() physics.Layer { return b.L }

func (b *Body) Active() bool { return !b.Inactive }

func (b *Body) String() string { return b.Name }

// Wall is a static box obstacle.
type Wall struct {
	Min, Max mathutil.Vec2
	L        physics.Layer
}

// World implements physics.Queries over plain slices.
// Bodies are also raycast targets, as boxes of BodyHalfExtent around their center.
type World struct {
	Bodies         []*Body
	Walls          []*Wall
	Grounded       map[physics.Body]bool
	BodyHalfExtent float64

	RaycastCalls int
}

var _ physics.Queries = (*World)(nil)

func NewWorld() *World {
	return &World{Grounded: map[physics.Body]bool{}, BodyHalfExtent: 0.25}
}

// Add registers bodies and returns the first for convenience.
func (w *World) Add(bodies ...*Body) *Body {
	w.Bodies = append(w.Bodies, bodies...)
	if len(bodies) == 0 {
		return nil
	}
	return bodies[0]
}

// AddWall adds a box obstacle spanning min..max.
func (w *World) AddWall(min, max mathutil.Vec2, layer physics.Layer) *Wall {
	wall := &Wall{Min: min, Max: max, L: layer}
	w.Walls = append(w.Walls, wall)
	return wall
}

// RemoveWall drops a previously added wall.
func (w *World) RemoveWall(wall *Wall) {
	for i, other := range w.Walls {
		if other == wall {
			w.Walls = append(w.Walls[:i], w.Walls[i+1:]...)
			return
		}
	}
}

func (w *World) SetGrounded(b physics.Body, grounded bool) {
	w.Grounded[b] = grounded
}

func (w *World) OverlapCircle(center mathutil.Vec2, radius float64, mask physics.LayerMask) []physics.Body {
	var out []physics.Body
	for _, b := range w.Bodies {
		if !b.Active() || !mask.Has(b.L) {
			continue
		}
		if center.Dist(b.Pos) <= radius {
			out = append(out, b)
		}
	}
	return out
}

func (w *World) Raycast(origin, dir mathutil.Vec2, maxDistance float64, mask physics.LayerMask) (physics.Hit, bool) {
	w.RaycastCalls++

	best := physics.Hit{Distance: math.Inf(1)}
	found := false
	try := func(body physics.Body, min, max mathutil.Vec2) {
		if origin.X > min.X && origin.X < max.X && origin.Y > min.Y && origin.Y < max.Y {
			return
		}
		dist, ok := physics.RayAABB(origin, dir, maxDistance, min, max)
		if !ok || dist >= best.Distance {
			return
		}
		best = physics.Hit{Body: body, Point: origin.Add(dir.Normalized().Scale(dist)), Distance: dist}
		found = true
	}

	for _, wall := range w.Walls {
		if mask.Has(wall.L) {
			try(nil, wall.Min, wall.Max)
		}
	}
	ext := mathutil.Vec2{X: w.BodyHalfExtent, Y: w.BodyHalfExtent}
	for _, b := range w.Bodies {
		if b.Active() && mask.Has(b.L) {
			try(b, b.Pos.Sub(ext), b.Pos.Add(ext))
		}
	}
	return best, found
}

func (w *World) IsGrounded(b physics.Body) bool {
	return w.Grounded[b]
}
