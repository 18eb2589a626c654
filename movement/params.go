// Package movement holds the per-frame player rules: the coyote/jump-buffer
// timer, horizontal locomotion, death sequencing and level-exit index math.
// It has no rendering or input dependencies; collaborators are injected.
package movement

import (
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

// Epsilon is the speed below which the body counts as standing still.
const Epsilon = 1e-4

// Animator parameter names.
const (
	ParamRunning = "isRunning"
	TriggerDying = "Dying"
)

// Params are the tuning values for one controller. They are copied at
// construction and never change while the controller is alive.
type Params struct {
	RunSpeed       float64
	JumpSpeed      float64
	CoyoteTime     float64 // seconds
	JumpBufferTime float64 // seconds
	DeathKick      dmath.Vec2
	ReloadDelay    time.Duration
}

// Sanitized returns a copy with negative values clamped to zero.
func (p Params) Sanitized() Params {
	p.RunSpeed = nonNegative(p.RunSpeed)
	p.JumpSpeed = nonNegative(p.JumpSpeed)
	p.CoyoteTime = nonNegative(p.CoyoteTime)
	p.JumpBufferTime = nonNegative(p.JumpBufferTime)
	if p.ReloadDelay < 0 {
		p.ReloadDelay = 0
	}
	return p
}

func nonNegative(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}
