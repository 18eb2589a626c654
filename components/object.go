package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space holds the collision space of the loaded level. One per scene.
var Space = donburi.NewComponentType[resolv.Space]()
