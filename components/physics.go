package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// Vector represents a 2D vector.
type Vector struct {
	X, Y float64
}

// PhysicsData is the body's velocity in pixels per second and the ground
// contact from the last physics step.
type PhysicsData struct {
	SpeedX      float64
	SpeedY      float64
	OnGround    bool
	WasOnGround bool
}

var Physics = donburi.NewComponentType[PhysicsData]()

// Body exposes an entry's Physics component as a steerable body. It reads
// through the entry each call so it never holds a stale component pointer.
type Body struct {
	Entry *donburi.Entry
}

func (b Body) Velocity() dmath.Vec2 {
	p := Physics.Get(b.Entry)
	return dmath.Vec2{X: p.SpeedX, Y: p.SpeedY}
}

func (b Body) SetVelocity(v dmath.Vec2) {
	p := Physics.Get(b.Entry)
	p.SpeedX = v.X
	p.SpeedY = v.Y
}
