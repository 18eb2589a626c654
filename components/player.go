package components

import (
	"github.com/automoto/coyote-run/movement"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction  Vector
	Controller *movement.Controller
	SpawnX     float64
	SpawnY     float64
}

var Player = donburi.NewComponentType[PlayerData]()

// Facing exposes the player's Direction.X as the render mirror.
type Facing struct {
	Entry *donburi.Entry
}

func (f Facing) Facing() float64 {
	return Player.Get(f.Entry).Direction.X
}

func (f Facing) SetFacing(sign float64) {
	Player.Get(f.Entry).Direction.X = sign
}
