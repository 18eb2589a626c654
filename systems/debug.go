package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/fonts"
	"github.com/automoto/coyote-run/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay on F1.
func UpdateDebug(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)
	if !input.JustPressed(cfg.ActionToggleDebug) {
		return
	}
	if entry, ok := components.Debug.First(ecs.World); ok {
		d := components.Debug.Get(entry)
		d.Enabled = !d.Enabled
	}
}

func debugEnabled(ecs *ecs.ECS) bool {
	entry, ok := components.Debug.First(ecs.World)
	return ok && components.Debug.Get(entry).Enabled
}

// DrawDebug outlines every collision object and prints the controller's
// timers in the top-right corner.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !debugEnabled(ecs) {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		width, height := float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy())

		for _, obj := range space.Objects() {
			x := obj.X + camX
			y := obj.Y + camY
			if x+obj.W < 0 || x > width || y+obj.H < 0 || y > height {
				continue
			}

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			switch {
			case obj.HasTags(tags.ResolvGround):
				c = color.RGBA{100, 100, 100, 255}
			case obj.HasTags(tags.ResolvWater):
				c = color.RGBA{255, 0, 0, 255}
			case obj.HasTags(tags.ResolvExit):
				c = color.RGBA{0, 255, 0, 255}
			case obj.HasTags(tags.ResolvPlayer):
				c = color.RGBA{0, 0, 255, 255}
			}

			vector.FillRect(screen, float32(x), float32(y), float32(obj.W), 1, c, false)         // Top
			vector.FillRect(screen, float32(x), float32(y+obj.H-1), float32(obj.W), 1, c, false) // Bottom
			vector.FillRect(screen, float32(x), float32(y), 1, float32(obj.H), c, false)         // Left
			vector.FillRect(screen, float32(x+obj.W-1), float32(y), 1, float32(obj.H), c, false) // Right
		}
	}

	playerEntry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	player := components.Player.Get(playerEntry)
	if player.Controller == nil {
		return
	}
	ctrl := player.Controller
	body := components.Physics.Get(playerEntry)
	state := components.State.Get(playerEntry)
	timer := ctrl.Timer()

	lines := []string{
		fmt.Sprintf("state %s / %s", ctrl.State(), state.CurrentState),
		fmt.Sprintf("coyote %.3f buffer %.3f axis %.2f", timer.Coyote, timer.Buffer, ctrl.MoveAxis()),
		fmt.Sprintf("v (%.0f, %.0f) ground %v", body.SpeedX, body.SpeedY, ctrl.Grounded()),
		fmt.Sprintf("tps %.0f scale %.2f", ebiten.ActualTPS(), cfg.Debug.TimeScale),
	}
	face := fonts.Small.Get()
	x := screen.Bounds().Dx() - 170
	for i, line := range lines {
		drawShadowedText(screen, line, face, x, int(cfg.HUD.Margin)+12*(i+1), cfg.HUD.DebugColor)
	}
}
