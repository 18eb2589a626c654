package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position   math.Vec2 // World point at the screen center
	LookAheadX float64   // Current smoothed X offset for look-ahead
	Snapped    bool      // Position has been placed on the player once
}

var Camera = donburi.NewComponentType[CameraData]()
