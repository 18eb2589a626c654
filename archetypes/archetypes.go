package archetypes

import (
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Animation,
		components.Physics,
		components.State,
		components.SquashStretch,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
	)
	Water = newArchetype(
		tags.Water,
		components.Object,
	)
	Exit = newArchetype(
		tags.Exit,
		components.Exit,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
		components.ScreenShake,
	)
	Session = newArchetype(
		components.Session,
		components.Debug,
		components.Pause,
	)
	Input = newArchetype(
		components.Input,
	)
	Menu = newArchetype(
		components.Menu,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return ecs.World.Entry(ecs.Create(cfg.Default, all...))
}
