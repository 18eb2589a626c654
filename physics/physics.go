// Package physics moves resolv boxes through a level: gravity, axis-separated
// ground collision and the contact queries the player controller needs.
package physics

import (
	"math"

	"github.com/solarlune/resolv"
	dmath "github.com/yohamta/donburi/features/math"
)

// Resolv tags for collision layers
const (
	TagGround = "Ground"
	TagWater  = "Water"
	TagExit   = "Exit"
	TagPlayer = "Player"
)

// groundTolerance is how far below the box a ground top may sit and still
// count as standing on it.
const groundTolerance = 0.5

// Params are the world constants for one step. Speeds are pixels per second.
type Params struct {
	Gravity      float64
	MaxFallSpeed float64
	MaxRiseSpeed float64
}

// Result reports what a Step ran into.
type Result struct {
	Velocity dmath.Vec2
	Landed   bool
	HitHead  bool
	HitWall  bool
}

// ApplyGravity accelerates v downward for dt seconds and clamps the vertical
// speed.
func ApplyGravity(v dmath.Vec2, dt float64, p Params) dmath.Vec2 {
	if dt <= 0 {
		return v
	}
	v.Y += p.Gravity * dt
	if p.MaxFallSpeed > 0 && v.Y > p.MaxFallSpeed {
		v.Y = p.MaxFallSpeed
	}
	if p.MaxRiseSpeed > 0 && v.Y < -p.MaxRiseSpeed {
		v.Y = -p.MaxRiseSpeed
	}
	return v
}

// Step applies gravity, then moves obj horizontally and vertically against
// Ground objects. Blocked axes have their speed zeroed.
func Step(obj *resolv.Object, v dmath.Vec2, dt float64, p Params) Result {
	if dt <= 0 {
		return Result{Velocity: v}
	}
	v = ApplyGravity(v, dt, p)
	res := Result{}

	if dx := v.X * dt; dx != 0 {
		moved := MoveX(obj, dx)
		if moved != dx {
			res.HitWall = true
			v.X = 0
		}
	}

	if dy := v.Y * dt; dy != 0 {
		moved := MoveY(obj, dy)
		if moved != dy {
			if dy > 0 {
				res.Landed = true
			} else {
				res.HitHead = true
			}
			v.Y = 0
		}
	}

	res.Velocity = v
	return res
}

// MoveX moves obj by up to dx, stopping flush against the first Ground object
// in the way. It returns the distance actually moved.
func MoveX(obj *resolv.Object, dx float64) float64 {
	limit := dx
	if check := obj.Check(dx, 0, TagGround); check != nil {
		for _, o := range check.ObjectsByTags(TagGround) {
			if !overlapsY(obj, o) {
				continue
			}
			if dx > 0 && o.X >= obj.X+obj.W-groundTolerance {
				limit = math.Min(limit, o.X-(obj.X+obj.W))
			} else if dx < 0 && o.X+o.W <= obj.X+groundTolerance {
				limit = math.Max(limit, o.X+o.W-obj.X)
			}
		}
	}
	if sameSign(limit, dx) || limit == 0 {
		obj.X += limit
		obj.Update()
		return limit
	}
	return 0
}

// MoveY moves obj by up to dy, landing on or bumping into Ground objects.
func MoveY(obj *resolv.Object, dy float64) float64 {
	limit := dy
	if check := obj.Check(0, dy, TagGround); check != nil {
		for _, o := range check.ObjectsByTags(TagGround) {
			if !overlapsX(obj, o) {
				continue
			}
			if dy > 0 && o.Y >= obj.Y+obj.H-groundTolerance {
				limit = math.Min(limit, o.Y-(obj.Y+obj.H))
			} else if dy < 0 && o.Y+o.H <= obj.Y+groundTolerance {
				limit = math.Max(limit, o.Y+o.H-obj.Y)
			}
		}
	}
	if sameSign(limit, dy) || limit == 0 {
		obj.Y += limit
		obj.Update()
		return limit
	}
	return 0
}

// IsGrounded reports whether a Ground top sits directly under obj.
func IsGrounded(obj *resolv.Object) bool {
	check := obj.Check(0, 1, TagGround)
	if check == nil {
		return false
	}
	bottom := obj.Y + obj.H
	for _, o := range check.ObjectsByTags(TagGround) {
		if overlapsX(obj, o) && math.Abs(o.Y-bottom) <= groundTolerance {
			return true
		}
	}
	return false
}

// Touching returns the first object with tag whose box overlaps obj.
func Touching(obj *resolv.Object, tag string) *resolv.Object {
	check := obj.Check(0, 0, tag)
	if check == nil {
		return nil
	}
	for _, o := range check.ObjectsByTags(tag) {
		if Overlaps(obj, o) {
			return o
		}
	}
	return nil
}

// Overlaps reports whether two boxes share a non-empty area.
func Overlaps(a, b *resolv.Object) bool {
	return overlapsX(a, b) && overlapsY(a, b)
}

func overlapsX(a, b *resolv.Object) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X
}

func overlapsY(a, b *resolv.Object) bool {
	return a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

func sameSign(a, b float64) bool {
	return (a > 0 && b > 0) || (a < 0 && b < 0)
}
