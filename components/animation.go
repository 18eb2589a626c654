package components

import (
	"github.com/automoto/coyote-run/assets/animations"
	"github.com/automoto/coyote-run/config"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	CurrentSheet     config.StateID
	Animations       map[config.StateID]*animations.Animation

	// Parameters written by the movement controller
	Params   map[string]bool
	Triggers []string

	// Shrink-and-fade played once the Dying trigger fires. Progress runs 0..1.
	Dying         *gween.Tween
	DyingProgress float32
}

func (a *AnimationData) SetAnimation(state config.StateID) {
	if a.CurrentSheet == state && (a.CurrentAnimation != nil || a.Animations[state] == nil) {
		return
	}

	anim, ok := a.Animations[state]
	if ok {
		if a.CurrentAnimation != anim {
			a.CurrentAnimation = anim
			a.CurrentSheet = state
			a.CurrentAnimation.Restart()
		}
	} else {
		a.CurrentAnimation = nil
		a.CurrentSheet = state
	}
}

func (a *AnimationData) Bool(name string) bool {
	return a.Params[name]
}

// TakeTriggers returns and clears the pending triggers.
func (a *AnimationData) TakeTriggers() []string {
	t := a.Triggers
	a.Triggers = nil
	return t
}

var Animation = donburi.NewComponentType[AnimationData]()

// Animator forwards controller parameters into an entry's Animation component.
type Animator struct {
	Entry *donburi.Entry
}

func (a Animator) SetBool(name string, value bool) {
	anim := Animation.Get(a.Entry)
	if anim.Params == nil {
		anim.Params = map[string]bool{}
	}
	anim.Params[name] = value
}

func (a Animator) SetTrigger(name string) {
	anim := Animation.Get(a.Entry)
	anim.Triggers = append(anim.Triggers, name)
}
