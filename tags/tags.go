package tags

import (
	"github.com/automoto/coyote-run/physics"
	"github.com/yohamta/donburi"
)

var (
	Player = donburi.NewTag().SetName("Player")
	Ground = donburi.NewTag().SetName("Ground")
	Water  = donburi.NewTag().SetName("Water")
	Exit   = donburi.NewTag().SetName("Exit")
)

// Resolv tags for physics collision
const (
	ResolvGround = physics.TagGround
	ResolvWater  = physics.TagWater
	ResolvExit   = physics.TagExit
	ResolvPlayer = physics.TagPlayer
)
