package systems

import (
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateStates derives each player's animation state from its controller
// and body, and switches the animation clip on change.
func UpdateStates(ecs *ecs.ECS) {
	if IsPaused(ecs) {
		return
	}
	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		body := components.Physics.Get(e)
		state := components.State.Get(e)
		anim := components.Animation.Get(e)

		alive := player.Controller == nil || player.Controller.Alive()
		next := PlayerState(alive, body.OnGround, body.SpeedY, anim.Bool(movement.ParamRunning))

		if next != state.CurrentState {
			state.PreviousState = state.CurrentState
			state.CurrentState = next
			state.StateTimer = 0
			anim.SetAnimation(next)
		} else {
			state.StateTimer++
		}
	})
}

// PlayerState picks the animation state. Screen space: negative vy rises.
func PlayerState(alive, grounded bool, vy float64, running bool) cfg.StateID {
	switch {
	case !alive:
		return cfg.Dying
	case !grounded && vy < 0:
		return cfg.Jumping
	case !grounded:
		return cfg.Falling
	case running:
		return cfg.Running
	}
	return cfg.Idle
}
