package systems

import (
	"math"

	"github.com/automoto/coyote-run/components"
	"github.com/automoto/coyote-run/config"
	"github.com/automoto/coyote-run/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	playerObject := components.Object.Get(playerEntry)
	playerData := components.Player.Get(playerEntry)
	physics := components.Physics.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	// Only update look-ahead when player is moving - freeze offset when idle
	if math.Abs(physics.SpeedX) > config.Camera.LookAheadSpeedThreshold {
		targetLookAhead := playerData.Direction.X * config.Camera.LookAheadDistanceX
		camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing
	}

	targetX := playerObject.X + playerObject.W/2 + camera.LookAheadX
	targetY := playerObject.Y + playerObject.H/2
	targetX, targetY = ClampCamera(targetX, targetY,
		float64(config.C.Width), float64(config.C.Height),
		float64(levelData.CurrentLevel.Width), float64(levelData.CurrentLevel.Height))

	if !camera.Snapped {
		camera.Position.X, camera.Position.Y = targetX, targetY
		camera.Snapped = true
	} else {
		camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
		camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
	}

	updateScreenShake(cameraEntry, camera)
}

// ClampCamera keeps the view inside the level. Levels smaller than the
// screen are centered.
func ClampCamera(x, y, screenW, screenH, levelW, levelH float64) (float64, float64) {
	clamp := func(v, screen, level float64) float64 {
		if level <= screen {
			return level / 2
		}
		return math.Max(screen/2, math.Min(level-screen/2, v))
	}
	return clamp(x, screenW, levelW), clamp(y, screenH, levelH)
}

// updateScreenShake applies screen shake offset to camera and counts it down
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	if shake.Duration <= 0 || shake.Elapsed >= shake.Duration {
		return
	}
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	currentIntensity := shake.Intensity * progress

	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok || !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}
	shake := components.ScreenShake.Get(cameraEntry)
	active := shake.Elapsed < shake.Duration
	// Only override a running shake if the new one is stronger
	if active && intensity <= shake.Intensity {
		return
	}
	shake.Intensity = intensity
	shake.Duration = duration
	shake.Elapsed = 0
}
