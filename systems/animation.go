package systems

import (
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/movement"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateAnimations advances clips and consumes controller triggers. The
// Dying trigger starts the shrink-and-fade tween.
func UpdateAnimations(ecs *ecs.ECS) {
	if IsPaused(ecs) {
		return
	}
	dt := float32(DeltaTime())

	components.Animation.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		if anim.CurrentAnimation != nil {
			anim.CurrentAnimation.Update()
		}

		for _, trigger := range anim.TakeTriggers() {
			if trigger == movement.TriggerDying && anim.Dying == nil {
				anim.Dying = gween.New(0, 1, cfg.DyingTween, ease.OutQuad)
			}
		}

		if anim.Dying != nil {
			progress, _ := anim.Dying.Update(dt)
			anim.DyingProgress = progress
		}
	})
}
