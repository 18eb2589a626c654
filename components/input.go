package components

import (
	cfg "github.com/automoto/coyote-run/config"
	"github.com/yohamta/donburi"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputGamepad
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool
	Previous        [cfg.ActionCount]bool
	MoveAxis        float64 // -1..1, analog stick or digital left/right
	LastInputMethod InputMethod
	Primed          bool // First poll done
}

func (d *InputData) Pressed(action cfg.ActionID) bool {
	return d.Current[action]
}

func (d *InputData) JustPressed(action cfg.ActionID) bool {
	return d.Current[action] && !d.Previous[action]
}

func (d *InputData) JustReleased(action cfg.ActionID) bool {
	return !d.Current[action] && d.Previous[action]
}

var Input = donburi.NewComponentType[InputData]()
