package systems

import (
	"math"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateBounds keeps players inside the level horizontally and kills any
// player that falls past the bottom edge.
func UpdateBounds(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	level := components.Level.Get(levelEntry).CurrentLevel
	if level == nil {
		return
	}
	width := float64(level.Width)
	floor := float64(level.Height) + cfg.Physics.FallMargin

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)

		if x := math.Max(0, math.Min(width-obj.W, obj.X)); x != obj.X {
			obj.X = x
			obj.Update()
			components.Physics.Get(e).SpeedX = 0
		}

		if FellOut(obj.Y, floor) {
			if ctrl := components.Player.Get(e).Controller; ctrl != nil {
				ctrl.Kill()
			}
		}
	})
}

// FellOut reports whether a box whose top is at y has dropped below floor.
func FellOut(y, floor float64) bool {
	return y > floor
}
