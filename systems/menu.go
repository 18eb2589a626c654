package systems

import (
	"fmt"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/fonts"
	"github.com/automoto/coyote-run/progress"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"
)

const titleAlphaLow = 0.45

// MenuOptions lists the main menu entries. Continue is offered when the
// saved run stopped on a level that still exists.
func MenuOptions(stats *progress.Stats, levelCount int) (options []components.MainMenuOption, continueLevel int) {
	options = []components.MainMenuOption{components.MainMenuStart}
	if stats != nil && stats.LastLevel >= 1 && stats.LastLevel <= levelCount {
		options = append(options, components.MainMenuContinue)
		continueLevel = stats.LastLevel
	}
	options = append(options, components.MainMenuExit)
	return options, continueLevel
}

// NewUpdateMenu returns the keyboard/gamepad navigation system for the
// main menu. onSelect receives the chosen option.
func NewUpdateMenu(onSelect func(components.MainMenuOption)) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		updateTitlePulse(menu, float32(DeltaTime()))

		numOptions := len(menu.VisibleOptions)
		if numOptions == 0 {
			return
		}

		if input.JustPressed(cfg.ActionMenuUp) {
			menu.SelectedIndex = WrapIndex(menu.SelectedIndex, -1, numOptions)
			PlaySFX(e, cfg.SoundMenuMove)
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			menu.SelectedIndex = WrapIndex(menu.SelectedIndex, 1, numOptions)
			PlaySFX(e, cfg.SoundMenuMove)
		}

		if input.JustPressed(cfg.ActionMenuSelect) || input.JustPressed(cfg.ActionJump) {
			PlaySFX(e, cfg.SoundMenuSelect)
			onSelect(menu.VisibleOptions[menu.SelectedIndex])
			return
		}
		if input.JustPressed(cfg.ActionMenuBack) {
			onSelect(components.MainMenuExit)
		}
	}
}

// updateTitlePulse ping-pongs the title alpha with a pair of tweens.
func updateTitlePulse(menu *components.MenuData, dt float32) {
	if menu.TitlePulse == nil {
		menu.TitlePulse = gween.New(titleAlphaLow, 1, cfg.Menu.TitlePulse, ease.InOutSine)
		menu.PulseUp = true
	}
	alpha, done := menu.TitlePulse.Update(dt)
	menu.TitleAlpha = alpha
	if done {
		if menu.PulseUp {
			menu.TitlePulse = gween.New(1, titleAlphaLow, cfg.Menu.TitlePulse, ease.InOutSine)
		} else {
			menu.TitlePulse = gween.New(titleAlphaLow, 1, cfg.Menu.TitlePulse, ease.InOutSine)
		}
		menu.PulseUp = !menu.PulseUp
	}
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Menu))
	}
	return components.Menu.Get(entry)
}

// DrawMenuTitle draws the pulsing game title above the menu buttons.
func DrawMenuTitle(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)
	face := fonts.Title.Get()

	bounds := text.BoundString(face, cfg.Menu.Title) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := screen.Bounds().Dy() / 4

	alpha := menu.TitleAlpha
	if menu.TitlePulse == nil {
		alpha = 1
	}
	text.Draw(screen, cfg.Menu.Title, face, x, y, fade(cfg.Menu.TitleColor, alpha)) //nolint:staticcheck // TODO: migrate to text/v2
}

// MenuStatsLine summarises the saved run under the menu buttons.
func MenuStatsLine(stats *progress.Stats, levelCount int) string {
	if stats == nil {
		return ""
	}
	furthest := stats.FurthestLevel
	if furthest > levelCount {
		furthest = levelCount
	}
	return fmt.Sprintf("Deaths: %d   Furthest: %d/%d   Clears: %d", stats.TotalDeaths, furthest, levelCount, stats.Clears)
}
