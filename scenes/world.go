package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/coyote-run/assets"
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/progress"
	"github.com/automoto/coyote-run/systems"
	"github.com/automoto/coyote-run/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene plays one level.
type PlatformerScene struct {
	ecs      *ecs.ECS
	director *Director
	level    *assets.Level
	index    int
	session  *progress.Session
	player   *donburi.Entry
	once     sync.Once

	// Restarts after a death skip the title banner
	showTitle bool
}

func NewPlatformerScene(d *Director, level *assets.Level, index int, session *progress.Session) *PlatformerScene {
	return &PlatformerScene{director: d, level: level, index: index, session: session}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Dispose cancels a pending death reload so it cannot fire into the next
// scene.
func (ps *PlatformerScene) Dispose() {
	if ps.player == nil {
		return
	}
	if ctrl := components.Player.Get(ps.player).Controller; ctrl != nil {
		ctrl.Cancel()
	}
}

func (ps *PlatformerScene) configure() {
	ps.ecs = ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ps.ecs.AddSystem(systems.UpdateInput)
	ps.ecs.AddSystem(systems.UpdateDebug)
	ps.ecs.AddSystem(systems.NewUpdatePause(ps.director))

	// Gameplay, skipped internally while paused
	ps.ecs.AddSystem(systems.UpdatePlayer)
	ps.ecs.AddSystem(systems.UpdatePhysics)
	ps.ecs.AddSystem(systems.UpdateBounds)
	ps.ecs.AddSystem(systems.NewUpdateExits(ps.director))
	ps.ecs.AddSystem(systems.UpdateStates)
	ps.ecs.AddSystem(systems.UpdateAnimations)
	ps.ecs.AddSystem(systems.UpdateEffects)
	ps.ecs.AddSystem(systems.UpdateCamera)
	ps.ecs.AddSystem(systems.UpdateMessage)
	ps.ecs.AddSystem(systems.ProcessEvents)
	ps.ecs.AddSystem(systems.UpdateAudio)

	ps.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ps.ecs.AddRenderer(cfg.Default, systems.DrawPlayer)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawHUD)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawMessage)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawDebug)
	ps.ecs.AddRenderer(cfg.Overlay, systems.DrawPause)

	factory.CreateSession(ps.ecs, ps.session)
	factory.CreateInput(ps.ecs)
	systems.SubscribeSessionEvents(ps.ecs)

	factory.CreateLevel(ps.ecs, ps.level, ps.index)

	spawn := ps.level.Spawn
	player, err := factory.CreatePlayer(ps.ecs, spawn.X, spawn.Y, ps.director.Scheduler(), ps.director)
	if err != nil {
		log.Printf("Warning: %v, returning to menu", err)
		ps.director.LoadScene(0)
		return
	}
	ps.player = player

	systems.PublishPlayerDeaths(ps.ecs, player)

	// Start the camera on the player so the first frame doesn't pan in
	factory.CreateCamera(ps.ecs, spawn.X, spawn.Y)

	if ps.showTitle {
		systems.ShowMessage(ps.ecs, fmt.Sprintf("%d. %s", ps.index, ps.level.Name))
	}
}
