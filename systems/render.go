package systems

import (
	"image/color"

	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawPlayer renders players as boxes. Run frames bob the body, squash and
// stretch scale it around the feet, and the dying tween shrinks and fades it.
func DrawPlayer(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		player := components.Player.Get(e)
		anim := components.Animation.Get(e)

		scaleX, scaleY := 1.0, 1.0
		if e.HasComponent(components.SquashStretch) {
			ss := components.SquashStretch.Get(e)
			scaleX, scaleY = ss.ScaleX, ss.ScaleY
		}

		body := cfg.PlayerLook.BodyColor
		alpha := float32(1)
		if anim.Dying != nil {
			shrink := 1 - 0.6*float64(anim.DyingProgress)
			scaleX *= shrink
			scaleY *= shrink
			body = cfg.PlayerLook.DyingColor
			alpha = 1 - anim.DyingProgress
		}

		bob := 0.0
		if anim.CurrentSheet == cfg.Running && anim.CurrentAnimation != nil && anim.CurrentAnimation.Frame()%2 == 1 {
			bob = cfg.PlayerLook.BobHeight
		}

		w, h := obj.W*scaleX, obj.H*scaleY
		x := obj.X + camX + (obj.W-w)/2
		y := obj.Y + camY + obj.H - h + bob

		vector.FillRect(screen, float32(x), float32(y), float32(w), float32(h), fade(body, alpha), false)

		// Eye on the facing side
		eyeX := x + w*0.65
		if player.Direction.X < 0 {
			eyeX = x + w*0.35 - 3
		}
		vector.FillRect(screen, float32(eyeX), float32(y+h*0.25), 3, 3, fade(cfg.PlayerLook.EyeColor, alpha), false)
	})
}

func fade(c color.RGBA, alpha float32) color.RGBA {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}
	// color.RGBA is alpha-premultiplied
	return color.RGBA{
		R: uint8(float32(c.R) * alpha),
		G: uint8(float32(c.G) * alpha),
		B: uint8(float32(c.B) * alpha),
		A: uint8(float32(c.A) * alpha),
	}
}
