package factory

import (
	"fmt"

	"github.com/automoto/coyote-run/archetypes"
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/movement"
	"github.com/automoto/coyote-run/physics"
	"github.com/automoto/coyote-run/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// PlayerParams builds controller tuning from the current config values.
func PlayerParams() movement.Params {
	return movement.Params{
		RunSpeed:       cfg.Player.RunSpeed,
		JumpSpeed:      cfg.Player.JumpSpeed,
		CoyoteTime:     cfg.Player.CoyoteTime,
		JumpBufferTime: cfg.Player.JumpBufferTime,
		DeathKick:      dmath.Vec2{X: cfg.Player.DeathKickX, Y: cfg.Player.DeathKickY},
		ReloadDelay:    cfg.Player.ReloadDelay,
	}
}

// CreatePlayer spawns the player with its spawn point as the top-left of the
// collision box and wires a movement controller to its components.
func CreatePlayer(ecs *ecs.ECS, x, y float64, scheduler movement.Scheduler, scenes movement.SceneLoader) (*donburi.Entry, error) {
	player := archetypes.Player.Spawn(ecs)

	w, h := float64(cfg.Player.CollisionWidth), float64(cfg.Player.CollisionHeight)
	obj := resolv.NewObject(x, y, w, h, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})

	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Physics.SetValue(player, components.PhysicsData{})
	components.SquashStretch.SetValue(player, components.SquashStretchData{
		ScaleX:    1,
		ScaleY:    1,
		LerpSpeed: 0.2,
	})
	components.Animation.Set(player, GenerateAnimations())

	ctrl, err := movement.NewController(PlayerParams(), movement.Deps{
		Body:      components.Body{Entry: player},
		Animator:  components.Animator{Entry: player},
		Facing:    components.Facing{Entry: player},
		Contacts:  physics.Contacts{Object: obj},
		Scheduler: scheduler,
		Scenes:    scenes,
	})
	if err != nil {
		ecs.World.Remove(player.Entity())
		return nil, fmt.Errorf("factory: create player: %w", err)
	}

	components.Player.SetValue(player, components.PlayerData{
		Direction:  components.Vector{X: cfg.DirectionRight},
		Controller: ctrl,
		SpawnX:     x,
		SpawnY:     y,
	})
	addToSpace(ecs, obj)

	return player, nil
}
