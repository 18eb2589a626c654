package systems

import (
	"github.com/automoto/coyote-run/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects eases squash and stretch back to the rest shape.
func UpdateEffects(ecs *ecs.ECS) {
	components.SquashStretch.Each(ecs.World, func(e *donburi.Entry) {
		ss := components.SquashStretch.Get(e)
		ss.ScaleX += (1 - ss.ScaleX) * ss.LerpSpeed
		ss.ScaleY += (1 - ss.ScaleY) * ss.LerpSpeed
	})
}

// startSquash deforms the body; UpdateEffects relaxes it.
func startSquash(e *donburi.Entry, sx, sy float64) {
	if !e.HasComponent(components.SquashStretch) {
		return
	}
	ss := components.SquashStretch.Get(e)
	ss.ScaleX = sx
	ss.ScaleY = sy
}
