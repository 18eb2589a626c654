package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/progress"
	"github.com/automoto/coyote-run/systems"
	"github.com/automoto/coyote-run/systems/factory"
	"github.com/automoto/coyote-run/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs        *ecs.ECS
	ui         *ui.MainMenuUI
	director   *Director
	session    *progress.Session
	levelCount int
	chosen     bool
	once       sync.Once
}

func NewMenuScene(d *Director, session *progress.Session, levelCount int) *MenuScene {
	return &MenuScene{director: d, session: session, levelCount: levelCount}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
	ms.ui.UI.Update()
	ms.ui.SetSelected(systems.GetOrCreateMenu(ms.ecs).SelectedIndex)
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ui.UI.Draw(screen)
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) Dispose() {}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())

	var stats *progress.Stats
	if ms.session != nil {
		stats = ms.session.Stats
	}
	options, continueLevel := systems.MenuOptions(stats, ms.levelCount)
	menu := systems.GetOrCreateMenu(ms.ecs)
	menu.VisibleOptions = options
	menu.ContinueLevel = continueLevel

	ms.ecs.AddSystem(systems.UpdateInput)
	ms.ecs.AddSystem(systems.NewUpdateMenu(ms.choose))
	ms.ecs.AddSystem(systems.UpdateAudio)
	ms.ecs.AddRenderer(cfg.Overlay, systems.DrawMenuTitle)

	factory.CreateInput(ms.ecs)

	ms.ui = ui.NewMainMenuUI(options, systems.MenuStatsLine(stats, ms.levelCount), ms.choose)
}

// choose acts on the first selection only; clicks and key presses in the
// same frame must not load two scenes.
func (ms *MenuScene) choose(option components.MainMenuOption) {
	if ms.chosen {
		return
	}
	ms.chosen = true

	switch option {
	case components.MainMenuStart:
		ms.director.LoadScene(1)
	case components.MainMenuContinue:
		ms.director.LoadScene(systems.GetOrCreateMenu(ms.ecs).ContinueLevel)
	case components.MainMenuExit:
		ms.director.Quit()
	}
}
