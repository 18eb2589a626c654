package systems

import (
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer feeds this frame's input into each player's controller and
// runs it once. Must run after UpdateInput and before UpdatePhysics.
func UpdatePlayer(ecs *ecs.ECS) {
	if IsPaused(ecs) {
		return
	}
	input := getOrCreateInput(ecs)
	dt := DeltaTime()

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		player := components.Player.Get(e)
		ctrl := player.Controller
		if ctrl == nil {
			return
		}

		ctrl.OnMove(input.MoveAxis)
		// Only primed edges reach the controller, so a button held through a
		// scene load never counts as a press on the new controller
		if input.JustPressed(cfg.ActionJump) {
			ctrl.OnJump(true)
		} else if !input.Pressed(cfg.ActionJump) {
			ctrl.OnJump(false)
		}

		before := components.Physics.Get(e).SpeedY
		ctrl.Update(dt)

		// A fresh upward impulse stretches the body
		if ctrl.Alive() && components.Physics.Get(e).SpeedY < before-1 {
			startSquash(e, 0.8, 1.25)
			PlaySFX(ecs, cfg.SoundJump)
		}
	})
}
