package systems

import (
	"math"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var levelDrawOp = &ebiten.DrawImageOptions{}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(width)/2 - camera.Position.X, float64(height)/2 - camera.Position.Y, true
}

func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Level.SkyColor)

	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	levelDrawOp.GeoM.Reset()
	levelDrawOp.GeoM.Translate(math.Round(camX), math.Round(camY))
	screen.DrawImage(levelData.CurrentLevel.Background(), levelDrawOp)

	drawExits(ecs, screen, camX, camY)
}

// drawExits draws each exit as a door that glows while occupied.
func drawExits(ecs *ecs.ECS, screen *ebiten.Image, camX, camY float64) {
	components.Exit.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		exit := components.Exit.Get(e)

		x, y := float32(obj.X+camX), float32(obj.Y+camY)
		c := cfg.Level.ExitColor
		if exit.Occupied {
			c = cfg.BrightGreen
		}
		vector.StrokeRect(screen, x, y, float32(obj.W), float32(obj.H), 2, c, false)
		vector.FillRect(screen, x+float32(obj.W)/2-2, y+float32(obj.H)/2, 4, 4, c, false)
	})
}
