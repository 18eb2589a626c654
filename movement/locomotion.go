package movement

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// ClampAxis limits a movement axis to [-1, 1].
func ClampAxis(axis float64) float64 {
	return math.Max(-1, math.Min(1, axis))
}

// RunVelocity sets the horizontal component from the input axis and keeps the
// vertical component as is.
func RunVelocity(v dmath.Vec2, axis, runSpeed float64) dmath.Vec2 {
	return dmath.Vec2{X: ClampAxis(axis) * runSpeed, Y: v.Y}
}

// JumpVelocity sets the vertical component to an upward speed and keeps the
// horizontal component. Screen space: up is negative Y.
func JumpVelocity(v dmath.Vec2, jumpSpeed float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X, Y: -jumpSpeed}
}

// HasHorizontalSpeed reports whether vx is meaningfully non-zero.
func HasHorizontalSpeed(vx float64) bool {
	return math.Abs(vx) > Epsilon
}

// FacingFor returns the facing sign for a horizontal speed, or current when
// the body is at rest.
func FacingFor(vx, current float64) float64 {
	if !HasHorizontalSpeed(vx) {
		return current
	}
	if vx < 0 {
		return -1
	}
	return 1
}
