package systems

import (
	"github.com/automoto/coyote-run/components"
	"github.com/automoto/coyote-run/movement"
	"github.com/automoto/coyote-run/physics"
	"github.com/automoto/coyote-run/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateExits returns a system that advances to the next scene the first
// time a living player overlaps an exit.
func NewUpdateExits(scenes movement.SceneLoader) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		playerEntry, ok := tags.Player.First(ecs.World)
		if !ok {
			return
		}
		player := components.Player.Get(playerEntry)
		playerObj := components.Object.Get(playerEntry).Object

		components.Exit.Each(ecs.World, func(e *donburi.Entry) {
			exit := components.Exit.Get(e)
			exitObj := components.Object.Get(e).Object

			overlapping := physics.Overlaps(playerObj, exitObj)
			entered := overlapping && !exit.Occupied
			exit.Occupied = overlapping

			if !entered || exit.Triggered {
				return
			}
			if player.Controller == nil || !player.Controller.Alive() {
				return
			}
			exit.Triggered = true

			from := scenes.ActiveScene()
			to := movement.EnterExit(scenes)
			ExitReachedEvent.Publish(ecs.World, ExitReached{From: from, To: to})
		})
	}
}
