package factory

import (
	"github.com/automoto/coyote-run/assets/animations"
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
)

// GenerateAnimations builds the player's clip set, starting in Idle.
func GenerateAnimations() *components.AnimationData {
	animData := &components.AnimationData{
		Animations:   animations.NewSet(cfg.PlayerAnimations),
		Params:       map[string]bool{},
		CurrentSheet: cfg.Idle,
	}
	animData.CurrentAnimation = animData.Animations[cfg.Idle]
	return animData
}
