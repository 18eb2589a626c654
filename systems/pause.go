package systems

import (
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/fonts"
	"github.com/automoto/coyote-run/movement"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var pauseOptions = [components.PauseOptionCount]string{"Resume", "Main Menu"}

// NewUpdatePause returns the pause toggle and menu navigation system.
// It should run AFTER UpdateInput but BEFORE other game systems.
func NewUpdatePause(scenes movement.SceneLoader) func(*ecs.ECS) {
	return func(ecs *ecs.ECS) {
		pause := GetOrCreatePause(ecs)
		input := getOrCreateInput(ecs)

		if input.JustPressed(cfg.ActionMenuBack) {
			pause.IsPaused = !pause.IsPaused
			pause.SelectedOption = components.MenuResume
		}
		if !pause.IsPaused {
			return
		}

		if input.JustPressed(cfg.ActionMenuUp) {
			pause.SelectedOption = components.PauseMenuOption(WrapIndex(int(pause.SelectedOption), -1, components.PauseOptionCount))
			PlaySFX(ecs, cfg.SoundMenuMove)
		}
		if input.JustPressed(cfg.ActionMenuDown) {
			pause.SelectedOption = components.PauseMenuOption(WrapIndex(int(pause.SelectedOption), 1, components.PauseOptionCount))
			PlaySFX(ecs, cfg.SoundMenuMove)
		}

		if input.JustPressed(cfg.ActionMenuSelect) {
			PlaySFX(ecs, cfg.SoundMenuSelect)
			switch pause.SelectedOption {
			case components.MenuResume:
				pause.IsPaused = false
			case components.MenuExit:
				scenes.LoadScene(0)
			}
		}
	}
}

// WrapIndex moves i by delta within [0, n), wrapping at both ends.
func WrapIndex(i, delta, n int) int {
	if n <= 0 {
		return 0
	}
	return ((i+delta)%n + n) % n
}

// IsPaused reports whether the scene's pause menu is open.
func IsPaused(ecs *ecs.ECS) bool {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		return false
	}
	return components.Pause.Get(entry).IsPaused
}

// GetOrCreatePause returns the singleton Pause component, creating if needed
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	entry, ok := components.Pause.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Pause))
	}
	return components.Pause.Get(entry)
}

// DrawPause renders the pause overlay and menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(ecs) {
		return
	}
	pause := GetOrCreatePause(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, float32(width), float32(height), cfg.BlackOverlay, false)

	fontFace := fonts.Bold.Get()
	rowHeight := cfg.HUD.LineHeight * 1.5
	startY := (height - rowHeight*float64(len(pauseOptions))) / 2

	for i, option := range pauseOptions {
		textColor := cfg.Menu.TextColor
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.BrightOrange
		}
		bounds := text.BoundString(fontFace, option) //nolint:staticcheck // TODO: migrate to text/v2
		x := int((width - float64(bounds.Dx())) / 2)
		y := int(startY + rowHeight*float64(i+1))
		text.Draw(screen, option, fontFace, x, y, textColor) //nolint:staticcheck // TODO: migrate to text/v2
	}
}
