package factory

import (
	"github.com/automoto/coyote-run/archetypes"
	"github.com/automoto/coyote-run/components"
	"github.com/automoto/coyote-run/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGround creates a solid block the player stands on and collides with.
func CreateGround(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvGround)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = ground

	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return ground
}

// CreateWater creates a hazard volume. Overlapping it kills the player.
func CreateWater(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	water := archetypes.Water.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvWater)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = water

	components.Object.SetValue(water, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return water
}

// CreateExit creates the trigger that advances to the next scene.
func CreateExit(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	exit := archetypes.Exit.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvExit)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = exit

	components.Object.SetValue(exit, components.ObjectData{Object: obj})
	components.Exit.SetValue(exit, components.ExitData{})
	addToSpace(ecs, obj)

	return exit
}
