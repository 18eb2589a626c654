package systems

import (
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/movement"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

// PlayerDied is published when a player's controller leaves the alive state.
type PlayerDied struct {
	Scene int
	X, Y  float64
}

// ExitReached is published when an exit hands control to the next scene.
type ExitReached struct {
	From, To int
}

var (
	PlayerDiedEvent  = events.NewEventType[PlayerDied]()
	ExitReachedEvent = events.NewEventType[ExitReached]()
)

// SubscribeSessionEvents records deaths and level progress into the
// session and shakes the camera on death.
func SubscribeSessionEvents(e *ecs.ECS) {
	PlayerDiedEvent.Subscribe(e.World, func(w donburi.World, ev PlayerDied) {
		if s := sessionOf(w); s != nil {
			s.Session.RecordDeath(ev.Scene)
		}
		TriggerScreenShake(e, 4, 20)
		PlaySFX(e, cfg.SoundDeath)
	})
	// Level entries are recorded when the scene loads; only a wrap back to
	// the menu counts here, as a clear.
	ExitReachedEvent.Subscribe(e.World, func(w donburi.World, ev ExitReached) {
		PlaySFX(e, cfg.SoundExit)
		if ev.To != 0 {
			return
		}
		if s := sessionOf(w); s != nil {
			s.Session.RecordReached(0)
		}
	})
}

// PublishPlayerDeaths raises PlayerDied when player's controller dies.
func PublishPlayerDeaths(e *ecs.ECS, player *donburi.Entry) {
	ctrl := components.Player.Get(player).Controller
	if ctrl == nil {
		return
	}
	ctrl.OnDeath(func(ev movement.DeathEvent) {
		obj := components.Object.Get(player)
		PlayerDiedEvent.Publish(e.World, PlayerDied{
			Scene: ev.Scene,
			X:     obj.X,
			Y:     obj.Y,
		})
	})
}

// ProcessEvents delivers queued events. Run it last in the system order.
func ProcessEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

func sessionOf(w donburi.World) *components.SessionData {
	entry, ok := components.Session.First(w)
	if !ok {
		return nil
	}
	s := components.Session.Get(entry)
	if s.Session == nil {
		return nil
	}
	return s
}
