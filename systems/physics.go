package systems

import (
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// WorldParams returns the physics constants from the current config.
func WorldParams() physics.Params {
	return physics.Params{
		Gravity:      cfg.Physics.Gravity,
		MaxFallSpeed: cfg.Physics.MaxFallSpeed,
		MaxRiseSpeed: cfg.Physics.MaxRiseSpeed,
	}
}

// UpdatePhysics integrates gravity and moves every body through the level.
// Dead players keep falling; only their controller stops steering.
func UpdatePhysics(ecs *ecs.ECS) {
	if IsPaused(ecs) {
		return
	}
	dt := DeltaTime()
	params := WorldParams()

	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.Object) {
			return
		}
		body := components.Physics.Get(e)
		obj := components.Object.Get(e).Object

		res := physics.Step(obj, dmath.Vec2{X: body.SpeedX, Y: body.SpeedY}, dt, params)
		body.SpeedX = res.Velocity.X
		body.SpeedY = res.Velocity.Y

		body.WasOnGround = body.OnGround
		body.OnGround = physics.IsGrounded(obj)

		if body.OnGround && !body.WasOnGround && res.Landed {
			startSquash(e, 1.25, 0.75)
		}
	})
}
