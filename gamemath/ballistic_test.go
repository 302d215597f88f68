package gamemath

import (
	"math"
	"testing"

	"github.com/automoto/hookshot/mathutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveLandsOnTarget(t *testing.T) {
	cases := []struct {
		name           string
		gravity, apex  float64
		launch, target mathutil.Vec3
	}{
		{"level ground", 9.81, 2, mathutil.Vec3{}, mathutil.Vec3{X: 6}},
		{"target below", 9.81, 1.5, mathutil.Vec3{X: 1, Y: 3}, mathutil.Vec3{X: -4, Y: 0, Z: 2}},
		{"target at apex", 20, 3, mathutil.Vec3{}, mathutil.Vec3{X: 2, Y: 3, Z: -1}},
		{"negative gravity sign", -9.81, 4, mathutil.Vec3{Z: 1}, mathutil.Vec3{X: 3, Y: 1, Z: 8}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := Solve(tc.gravity, tc.apex, tc.launch, tc.target)
			require.NoError(t, err)
			assert.Greater(t, sol.TimeToTarget, 0.0)

			landed := tc.launch.Add(Displacement(sol.InitialVelocity, tc.gravity, sol.TimeToTarget))
			assert.True(t, landed.Approx(tc.target, 1e-9), "landed at %+v, want %+v", landed, tc.target)
		})
	}
}

func TestSolve2DMatches3D(t *testing.T) {
	launch := mathutil.Vec2{X: 2, Y: 1}
	target := mathutil.Vec2{X: 9, Y: -2}

	sol2, err := Solve2D(9.81, 2.5, launch, target)
	require.NoError(t, err)
	sol3, err := Solve(9.81, 2.5, launch.Vec3(), target.Vec3())
	require.NoError(t, err)

	assert.InDelta(t, sol3.TimeToTarget, sol2.TimeToTarget, 1e-12)
	assert.True(t, sol2.InitialVelocity.Approx(sol3.InitialVelocity, 1e-12))
	assert.Zero(t, sol2.InitialVelocity.Z)
}

func TestSolveApexRiseTime(t *testing.T) {
	sol, err := Solve2D(10, 5, mathutil.Vec2{}, mathutil.Vec2{X: 10})
	require.NoError(t, err)

	// 1s up, 1s down, 10 units across
	assert.InDelta(t, 2.0, sol.TimeToTarget, 1e-12)
	assert.InDelta(t, 10.0, sol.InitialVelocity.Y, 1e-12)
	assert.InDelta(t, 5.0, sol.InitialVelocity.X, 1e-12)
}

func TestSolveDomainErrors(t *testing.T) {
	cases := []struct {
		name          string
		gravity, apex float64
		target        mathutil.Vec3
	}{
		{"zero gravity", 0, 2, mathutil.Vec3{X: 5}},
		{"nan gravity", math.NaN(), 2, mathutil.Vec3{X: 5}},
		{"zero apex", 9.81, 0, mathutil.Vec3{X: 5}},
		{"negative apex", 9.81, -1, mathutil.Vec3{X: 5}},
		{"target above apex", 9.81, 1, mathutil.Vec3{X: 5, Y: 1.5}},
		{"nan target x", 9.81, 2, mathutil.Vec3{X: math.NaN()}},
		{"inf target x", 9.81, 2, mathutil.Vec3{X: math.Inf(1)}},
		{"inf target z", 9.81, 2, mathutil.Vec3{Z: math.Inf(-1)}},
		{"nan target y", 9.81, 2, mathutil.Vec3{X: 5, Y: math.NaN()}},
		{"target at -inf height", 9.81, 2, mathutil.Vec3{X: 5, Y: math.Inf(-1)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sol, err := Solve(tc.gravity, tc.apex, mathutil.Vec3{}, tc.target)
			require.ErrorIs(t, err, ErrDomain)
			assert.Equal(t, LaunchSolution{}, sol)
		})
	}
}

func TestSmoothDampConverges(t *testing.T) {
	var vel float64
	x := 0.0
	for i := 0; i < 600; i++ {
		x = SmoothDamp(x, 1, &vel, 0.05, math.Inf(1), 1.0/60)
		assert.LessOrEqual(t, x, 1.0)
	}
	assert.InDelta(t, 1.0, x, 1e-6)
	assert.Equal(t, 0.5, SmoothDamp(0.5, 1, &vel, 0.05, 10, 0))
}

func TestApplyFriction(t *testing.T) {
	assert.Equal(t, 1.5, ApplyFriction(2, 0.5))
	assert.Equal(t, -1.5, ApplyFriction(-2, 0.5))
	assert.Equal(t, 0.0, ApplyFriction(0.2, 0.5))
	assert.Equal(t, 3.0, ClampSpeed(7, 3))
}
