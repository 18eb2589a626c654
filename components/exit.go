package components

import "github.com/yohamta/donburi"

// ExitData tracks overlap with a level exit. Triggered latches after the
// first entry so the scene only advances once.
type ExitData struct {
	Occupied  bool
	Triggered bool
}

var Exit = donburi.NewComponentType[ExitData]()
