package factory

import (
	"github.com/automoto/coyote-run/archetypes"
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/progress"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSession spawns the scene-wide singleton holding the run statistics,
// the debug overlay switch and the pause state.
func CreateSession(ecs *ecs.ECS, session *progress.Session) *donburi.Entry {
	entry := archetypes.Session.Spawn(ecs)
	components.Session.SetValue(entry, components.SessionData{Session: session})
	components.Debug.SetValue(entry, components.DebugData{Enabled: cfg.Debug.Draw})
	return entry
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Input.Spawn(ecs)
}
