package components

import (
	"github.com/automoto/coyote-run/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	SceneIndex   int
}

var Level = donburi.NewComponentType[LevelData]()
