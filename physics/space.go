package physics

import (
	"math"

	"github.com/automoto/hookshot/mathutil"
	"github.com/solarlune/resolv"
)

// TagSolid marks resolv objects that bodies can stand on.
const TagSolid = "solid"

// Space is a Queries implementation over a resolv space. Object bounds are
// axis-aligned boxes; +Y is up, so ground is probed below a body.
type Space struct {
	space       *resolv.Space
	groundProbe float64
}

// Object is a body living in a Space.
type Object struct {
	*resolv.Object
	layer  Layer
	active bool

	// Owner links back to whatever game entity owns this body.
	Owner any
}

var (
	_ Queries = (*Space)(nil)
	_ Body    = (*Object)(nil)
)

// NewSpace creates a space of the given size partitioned into cells.
// groundProbe is how far below a body IsGrounded looks for a solid.
func NewSpace(width, height, cellWidth, cellHeight int, groundProbe float64) *Space {
	if groundProbe <= 0 {
		groundProbe = 1
	}
	return &Space{
		space:       resolv.NewSpace(width, height, cellWidth, cellHeight),
		groundProbe: groundProbe,
	}
}

// Resolv exposes the underlying space.
func (s *Space) Resolv() *resolv.Space {
	return s.space
}

// AddBody creates a box body centered on center and adds it to the space.
func (s *Space) AddBody(center mathutil.Vec2, w, h float64, layer Layer, tags ...string) *Object {
	obj := resolv.NewObject(center.X-w/2, center.Y-h/2, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))

	o := &Object{Object: obj, layer: layer, active: true}
	obj.Data = o
	s.space.Add(obj)
	return o
}

// RemoveBody takes a body out of the space.
func (s *Space) RemoveBody(o *Object) {
	if o == nil {
		return
	}
	o.active = false
	s.space.Remove(o.Object)
}

func (s *Space) objects(mask LayerMask) []*Object {
	var out []*Object
	for _, obj := range s.space.Objects() {
		o, ok := obj.Data.(*Object)
		if !ok || !o.active || !mask.Has(o.layer) {
			continue
		}
		out = append(out, o)
	}
	return out
}

// OverlapCircle returns active bodies in mask whose box touches the circle.
func (s *Space) OverlapCircle(center mathutil.Vec2, radius float64, mask LayerMask) []Body {
	var out []Body
	for _, o := range s.objects(mask) {
		cx := mathutil.ClampFloat(center.X, o.X, o.X+o.W)
		cy := mathutil.ClampFloat(center.Y, o.Y, o.Y+o.H)
		if math.Hypot(center.X-cx, center.Y-cy) <= radius {
			out = append(out, o)
		}
	}
	return out
}

// Raycast returns the nearest body in mask along the ray. Bodies that contain
// the origin are skipped so a caster never hits its own box.
func (s *Space) Raycast(origin, dir mathutil.Vec2, maxDistance float64, mask LayerMask) (Hit, bool) {
	best := Hit{Distance: math.Inf(1)}
	found := false

	for _, o := range s.objects(mask) {
		if o.contains(origin) {
			continue
		}
		min, max := o.bounds()
		dist, ok := RayAABB(origin, dir, maxDistance, min, max)
		if !ok || dist >= best.Distance {
			continue
		}
		best = Hit{Body: o, Point: origin.Add(dir.Normalized().Scale(dist)), Distance: dist}
		found = true
	}
	return best, found
}

// IsGrounded reports whether a solid lies within the ground probe below b.
func (s *Space) IsGrounded(b Body) bool {
	o, ok := b.(*Object)
	if !ok || o == nil || !o.active {
		return false
	}

	check := o.Check(0, -s.groundProbe, TagSolid)
	if check == nil {
		return false
	}
	for _, solid := range check.ObjectsByTags(TagSolid) {
		// cells are coarse; confirm the probe box actually overlaps
		if o.X < solid.X+solid.W && o.X+o.W > solid.X &&
			o.Y-s.groundProbe < solid.Y+solid.H && o.Y+o.H-s.groundProbe > solid.Y {
			return true
		}
	}
	return false
}

// MoveX moves o horizontally by up to dx, stopping flush against the first
// solid in the way. It returns the distance moved and the solid that
// stopped it, if any.
func (s *Space) MoveX(o *Object, dx float64) (float64, *Object) {
	moved, hit := s.sweep(o, dx, 0)
	o.X += moved
	o.Update()
	return moved, hit
}

// MoveY is MoveX along the vertical axis.
func (s *Space) MoveY(o *Object, dy float64) (float64, *Object) {
	moved, hit := s.sweep(o, 0, dy)
	o.Y += moved
	o.Update()
	return moved, hit
}

// sweep resolves a single-axis move against solids. resolv only checks the
// cells under the destination box, so the broad phase walks the path in
// strides no longer than a cell or the box itself; boxes are then tested
// exactly against the swept bounds.
func (s *Space) sweep(o *Object, dx, dy float64) (float64, *Object) {
	move := dx + dy
	if move == 0 {
		return 0, nil
	}
	candidates := s.solidsAlong(o, dx, dy)
	if len(candidates) == 0 {
		return move, nil
	}

	minX, maxX := math.Min(o.X, o.X+dx), math.Max(o.X, o.X+dx)+o.W
	minY, maxY := math.Min(o.Y, o.Y+dy), math.Max(o.Y, o.Y+dy)+o.H
	var hit *Object
	for _, solid := range candidates {
		if !(minX < solid.X+solid.W && maxX > solid.X && minY < solid.Y+solid.H && maxY > solid.Y) {
			continue
		}

		var allowed float64
		switch {
		case dx > 0:
			allowed = solid.X - (o.X + o.W)
		case dx < 0:
			allowed = solid.X + solid.W - o.X
		case dy > 0:
			allowed = solid.Y - (o.Y + o.H)
		default:
			allowed = solid.Y + solid.H - o.Y
		}
		// already overlapping: don't push further in
		if allowed*move < 0 {
			allowed = 0
		}
		if math.Abs(allowed) < math.Abs(move) {
			move = allowed
			hit = solid
		}
	}
	return move, hit
}

// solidsAlong gathers active solids from every cell the box crosses on its way
// to o+(dx, dy), in the order resolv reports them.
func (s *Space) solidsAlong(o *Object, dx, dy float64) []*Object {
	dist, cell, size := math.Abs(dx), float64(s.space.CellWidth), o.W
	if dx == 0 {
		dist, cell, size = math.Abs(dy), float64(s.space.CellHeight), o.H
	}
	stride := math.Max(math.Min(cell, size), 1)
	steps := int(math.Ceil(dist / stride))

	seen := make(map[*Object]bool)
	var out []*Object
	for i := 1; i <= steps; i++ {
		f := math.Min(float64(i)*stride/dist, 1)
		check := o.Check(dx*f, dy*f, TagSolid)
		if check == nil {
			continue
		}
		for _, other := range check.ObjectsByTags(TagSolid) {
			solid, ok := other.Data.(*Object)
			if !ok || solid == o || !solid.active || seen[solid] {
				continue
			}
			seen[solid] = true
			out = append(out, solid)
		}
	}
	return out
}

// Position returns the box center.
func (o *Object) Position() mathutil.Vec2 {
	return mathutil.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetPosition moves the box so its center is p.
func (o *Object) SetPosition(p mathutil.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
	o.Update()
}

func (o *Object) Layer() Layer { return o.layer }

func (o *Object) Active() bool { return o.active }

// SetActive toggles whether queries see the body.
func (o *Object) SetActive(active bool) { o.active = active }

func (o *Object) bounds() (mathutil.Vec2, mathutil.Vec2) {
	return mathutil.Vec2{X: o.X, Y: o.Y}, mathutil.Vec2{X: o.X + o.W, Y: o.Y + o.H}
}

func (o *Object) contains(p mathutil.Vec2) bool {
	return p.X > o.X && p.X < o.X+o.W && p.Y > o.Y && p.Y < o.Y+o.H
}
