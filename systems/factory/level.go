package factory

import (
	"github.com/automoto/coyote-run/archetypes"
	"github.com/automoto/coyote-run/assets"
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns the level entity, its collision space and every ground,
// water and exit object. The player is created separately.
func CreateLevel(ecs *ecs.ECS, level *assets.Level, sceneIndex int) *donburi.Entry {
	entry := archetypes.Level.Spawn(ecs)
	components.Level.Set(entry, &components.LevelData{
		CurrentLevel: level,
		SceneIndex:   sceneIndex,
	})

	cell := cfg.Level.CellSize
	CreateSpace(ecs, level.Width, level.Height, cell, cell)

	for _, r := range level.Ground {
		CreateGround(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Water {
		CreateWater(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, r := range level.Exits {
		CreateExit(ecs, r.X, r.Y, r.W, r.H)
	}

	return entry
}
