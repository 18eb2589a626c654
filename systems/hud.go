package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders the level name and death counters in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	lines := []string{levelData.CurrentLevel.Name}
	if s := sessionOf(ecs.World); s != nil {
		lines = append(lines, HUDLines(levelData.SceneIndex, s.Session.Stats.DeathsOn(levelData.SceneIndex), s.Session.Stats.TotalDeaths)...)
	}

	face := fonts.Regular.Get()
	for i, line := range lines {
		y := int(cfg.HUD.Margin + cfg.HUD.LineHeight*float64(i+1))
		drawShadowedText(screen, line, face, int(cfg.HUD.Margin), y, cfg.HUD.TextColor)
	}
}

// HUDLines formats the counter rows under the level name.
func HUDLines(level, levelDeaths, totalDeaths int) []string {
	return []string{
		fmt.Sprintf("Level %d  Deaths: %d", level, levelDeaths),
		fmt.Sprintf("Total deaths: %d", totalDeaths),
	}
}

func drawShadowedText(screen *ebiten.Image, s string, face font.Face, x, y int, c color.Color) {
	text.Draw(screen, s, face, x+1, y+1, cfg.HUD.ShadowColor) //nolint:staticcheck // TODO: migrate to text/v2
	text.Draw(screen, s, face, x, y, c)                       //nolint:staticcheck // TODO: migrate to text/v2
}
