package physics_test

import (
	"testing"

	"github.com/automoto/hookshot/mathutil"
	"github.com/automoto/hookshot/physics"
	"github.com/automoto/hookshot/physics/physicstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRayAABB(t *testing.T) {
	min, max := mathutil.Vec2{X: 4, Y: -1}, mathutil.Vec2{X: 6, Y: 1}

	dist, ok := physics.RayAABB(mathutil.Vec2{}, mathutil.Vec2{X: 1}, 10, min, max)
	require.True(t, ok)
	assert.InDelta(t, 4, dist, 1e-12)

	_, ok = physics.RayAABB(mathutil.Vec2{}, mathutil.Vec2{X: 1}, 3, min, max)
	assert.False(t, ok, "box beyond max distance")

	_, ok = physics.RayAABB(mathutil.Vec2{}, mathutil.Vec2{X: -1}, 10, min, max)
	assert.False(t, ok, "box behind the ray")

	_, ok = physics.RayAABB(mathutil.Vec2{Y: 3}, mathutil.Vec2{X: 1}, 10, min, max)
	assert.False(t, ok, "parallel miss")

	_, ok = physics.RayAABB(mathutil.Vec2{}, mathutil.Vec2{}, 10, min, max)
	assert.False(t, ok, "zero direction")
}

func TestOccluded(t *testing.T) {
	const obstacle, target physics.Layer = 1, 2

	w := physicstest.NewWorld()
	body := w.Add(physicstest.NewBody("target", mathutil.Vec2{X: 10}, target))
	mask := physics.Of(obstacle, target)

	blocked, _ := physics.Occluded(w, mathutil.Vec2{}, body.Pos, mask, body)
	assert.False(t, blocked, "only the target itself is hit")

	w.AddWall(mathutil.Vec2{X: 4, Y: -1}, mathutil.Vec2{X: 5, Y: 1}, obstacle)
	blocked, hit := physics.Occluded(w, mathutil.Vec2{}, body.Pos, mask, body)
	assert.True(t, blocked)
	assert.InDelta(t, 4, hit.Distance, 1e-12)

	blocked, _ = physics.Occluded(w, body.Pos, body.Pos, mask)
	assert.False(t, blocked, "zero-length segment")
}
