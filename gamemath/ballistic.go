package gamemath

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/hookshot/mathutil"
)

// ErrDomain is returned when a ballistic solve has no real flight time.
var ErrDomain = errors.New("ballistic solve has no real solution")

// LaunchSolution is the initial velocity that lands a projectile on its target
// and the time it takes to get there.
type LaunchSolution struct {
	InitialVelocity mathutil.Vec3
	TimeToTarget    float64
}

// Projection splits a vector into its horizontal (planar) part and its height.
type Projection func(v mathutil.Vec3) (planar mathutil.Vec3, height float64)

// PlaneXZ treats X/Z as the ground plane and Y as height.
func PlaneXZ(v mathutil.Vec3) (mathutil.Vec3, float64) {
	return mathutil.Vec3{X: v.X, Z: v.Z}, v.Y
}

// AxisX treats X as the only horizontal axis (2D side view).
func AxisX(v mathutil.Vec3) (mathutil.Vec3, float64) {
	return mathutil.Vec3{X: v.X}, v.Y
}

// SolveWith computes a two-phase flight: rise to apexHeight above launch, then
// fall to the target's height. gravity is a magnitude; its sign is ignored.
func SolveWith(proj Projection, gravity, apexHeight float64, launch, target mathutil.Vec3) (LaunchSolution, error) {
	g := math.Abs(gravity)
	if g == 0 || math.IsNaN(g) || math.IsInf(g, 0) {
		return LaunchSolution{}, fmt.Errorf("gravity %v: %w", gravity, ErrDomain)
	}
	if !(apexHeight > 0) || math.IsInf(apexHeight, 0) {
		return LaunchSolution{}, fmt.Errorf("apex height %v must be positive: %w", apexHeight, ErrDomain)
	}

	planar, dy := proj(target.Sub(launch))
	if !finite(planar.X) || !finite(planar.Y) || !finite(planar.Z) || !finite(dy) {
		return LaunchSolution{}, fmt.Errorf("offset %v: %w", target.Sub(launch), ErrDomain)
	}
	if dy > apexHeight {
		return LaunchSolution{}, fmt.Errorf("target %.3f above launch exceeds apex %.3f: %w", dy, apexHeight, ErrDomain)
	}

	rise := math.Sqrt(2 * apexHeight / g)
	fall := math.Sqrt(2 * (apexHeight - dy) / g)
	t := rise + fall
	if !(t > 0) || math.IsInf(t, 0) {
		return LaunchSolution{}, fmt.Errorf("flight time %v: %w", t, ErrDomain)
	}

	vy := mathutil.Vec3{Y: math.Sqrt(2 * g * apexHeight)}

	return LaunchSolution{
		InitialVelocity: planar.Scale(1 / t).Add(vy),
		TimeToTarget:    t,
	}, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Solve is the 3D variant with X/Z as the horizontal plane.
func Solve(gravity, apexHeight float64, launch, target mathutil.Vec3) (LaunchSolution, error) {
	return SolveWith(PlaneXZ, gravity, apexHeight, launch, target)
}

// Solve2D is the side-view variant with X as the horizontal axis.
func Solve2D(gravity, apexHeight float64, launch, target mathutil.Vec2) (LaunchSolution, error) {
	return SolveWith(AxisX, gravity, apexHeight, launch.Vec3(), target.Vec3())
}

// Displacement integrates a launch under constant downward gravity for t seconds.
func Displacement(v0 mathutil.Vec3, gravity, t float64) mathutil.Vec3 {
	g := math.Abs(gravity)
	return mathutil.Vec3{
		X: v0.X * t,
		Y: v0.Y*t - 0.5*g*t*t,
		Z: v0.Z * t,
	}
}
