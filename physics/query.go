package physics

import "github.com/automoto/hookshot/mathutil"

// Body is a physics body handle owned by the physics backend.
// Position is the body's world-space center.
type Body interface {
	Position() mathutil.Vec2
	SetPosition(p mathutil.Vec2)
	Layer() Layer
	Active() bool
}

// Hit is the nearest raycast contact.
type Hit struct {
	Body     Body
	Point    mathutil.Vec2
	Distance float64
}

// Overlapper is the broad-phase query.
type Overlapper interface {
	OverlapCircle(center mathutil.Vec2, radius float64, mask LayerMask) []Body
}

// Raycaster returns the nearest hit along a ray. dir need not be normalized.
type Raycaster interface {
	Raycast(origin, dir mathutil.Vec2, maxDistance float64, mask LayerMask) (Hit, bool)
}

// GroundProbe reports whether a body is standing on something solid.
type GroundProbe interface {
	IsGrounded(b Body) bool
}

// Queries is the full capability set the sensing and hook code depends on.
// Implementations are read-only from the caller's point of view.
type Queries interface {
	Overlapper
	Raycaster
	GroundProbe
}

// Occluded casts from -> to against mask and reports whether the nearest hit is
// something other than the allowed bodies. The returned hit is the blocker.
func Occluded(r Raycaster, from, to mathutil.Vec2, mask LayerMask, allowed ...Body) (bool, Hit) {
	dir := to.Sub(from)
	dist := dir.Len()
	if dist == 0 {
		return false, Hit{}
	}

	hit, ok := r.Raycast(from, dir, dist, mask)
	if !ok {
		return false, Hit{}
	}
	for _, a := range allowed {
		if a != nil && hit.Body == a {
			return false, Hit{}
		}
	}
	return true, hit
}

// RayAABB intersects a ray with an axis-aligned box using the slab method.
// It returns the entry distance along dir (normalized internally) when the
// hit lies within [0, maxDistance]. Rays starting inside the box report 0.
func RayAABB(origin, dir mathutil.Vec2, maxDistance float64, min, max mathutil.Vec2) (float64, bool) {
	d := dir.Normalized()
	if d == (mathutil.Vec2{}) {
		return 0, false
	}

	tmin, tmax := 0.0, maxDistance
	for axis := 0; axis < 2; axis++ {
		o, v, lo, hi := origin.X, d.X, min.X, max.X
		if axis == 1 {
			o, v, lo, hi = origin.Y, d.Y, min.Y, max.Y
		}

		if v == 0 {
			if o < lo || o > hi {
				return 0, false
			}
			continue
		}

		t1 := (lo - o) / v
		t2 := (hi - o) / v
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return 0, false
		}
	}
	return tmin, true
}
