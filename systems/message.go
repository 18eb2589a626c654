package systems

import (
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// ShowMessage puts s on the banner for cfg.Message.DisplayFrames frames,
// replacing whatever was showing.
func ShowMessage(ecs *ecs.ECS, s string) {
	state := getOrCreateMessageState(ecs)
	state.Text = s
	state.DisplayTimer = cfg.Message.DisplayFrames
}

// UpdateMessage counts down the banner. The banner stays put while paused.
func UpdateMessage(ecs *ecs.ECS) {
	if IsPaused(ecs) {
		return
	}
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// MessageAlpha is the banner opacity with timer frames left out of total,
// ramping over fadeFrames at both ends.
func MessageAlpha(timer, total, fadeFrames int) float32 {
	if timer <= 0 || total <= 0 {
		return 0
	}
	if fadeFrames <= 0 {
		return 1
	}
	elapsed := total - timer
	alpha := float32(1)
	if elapsed < fadeFrames {
		alpha = float32(elapsed+1) / float32(fadeFrames)
	}
	if timer < fadeFrames {
		alpha = min(alpha, float32(timer)/float32(fadeFrames))
	}
	return min(max(alpha, 0), 1)
}

// DrawMessage renders the active banner centered near the top of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer == 0 || state.Text == "" {
		return
	}
	alpha := MessageAlpha(state.DisplayTimer, cfg.Message.DisplayFrames, cfg.Message.FadeFrames)

	face := fonts.Bold.Get()
	bounds := text.BoundString(face, state.Text) //nolint:staticcheck // TODO: migrate to text/v2
	x := (screen.Bounds().Dx() - bounds.Dx()) / 2
	y := int(cfg.Message.OffsetY)

	const pad = 8
	vector.FillRect(screen,
		float32(x-pad), float32(y+bounds.Min.Y-pad),
		float32(bounds.Dx()+pad*2), float32(bounds.Dy()+pad*2),
		fade(cfg.BlackOverlay, alpha), false)
	text.Draw(screen, state.Text, face, x, y, fade(cfg.HUD.TextColor, alpha)) //nolint:staticcheck // TODO: migrate to text/v2
}

func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageData {
	entry, ok := components.Message.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Message))
	}
	return components.Message.Get(entry)
}
