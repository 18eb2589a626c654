package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement, pixels per second
	RunSpeed  float64
	JumpSpeed float64

	// Forgiveness windows, seconds
	CoyoteTime     float64
	JumpBufferTime float64

	// Death. A zero kick leaves the body's velocity alone.
	DeathKickX  float64
	DeathKickY  float64
	ReloadDelay time.Duration

	// Dimensions
	CollisionWidth  int
	CollisionHeight int
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 // pixels per second squared
	MaxFallSpeed float64
	MaxRiseSpeed float64

	// Pixels below the level floor before the player counts as fallen out
	FallMargin float64
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing         float64 // How fast camera follows player (0.0-1.0)
	LookAheadDistanceX      float64 // Max horizontal look-ahead offset in pixels
	LookAheadSmoothing      float64 // How fast look-ahead offset changes (0.0-1.0)
	LookAheadSpeedThreshold float64 // Minimum speed to update look-ahead
}

// LevelConfig contains level geometry and palette values
type LevelConfig struct {
	CellSize    int
	SkyColor    color.RGBA
	GroundColor color.RGBA
	GroundEdge  color.RGBA
	WaterColor  color.RGBA
	ExitColor   color.RGBA
}

// PlayerLookConfig controls how the player box is drawn
type PlayerLookConfig struct {
	BodyColor  color.RGBA
	EyeColor   color.RGBA
	DyingColor color.RGBA
	BobHeight  float64 // pixels the body dips on odd run frames
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin      float64
	LineHeight  float64
	TextColor   color.RGBA
	ShadowColor color.RGBA
	DebugColor  color.RGBA
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	ButtonIdle      color.RGBA
	ButtonHover     color.RGBA
	ButtonPressed   color.RGBA
	Title           string
	TitlePulse      float32 // seconds per half pulse
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Level LevelConfig
var PlayerLook PlayerLookConfig
var HUD HUDConfig
var Menu MenuConfig
var Debug DebugConfig
var Message MessageConfig

// MessageConfig controls the level title banner
type MessageConfig struct {
	DisplayFrames int     // total frames on screen
	FadeFrames    int     // frames spent fading in and out
	OffsetY       float64 // baseline distance from the top of the screen
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool    // Skip menu and go directly to a level
	Level      int     // Scene index to start in when skipping the menu
	Draw       bool    // Draw collision boxes and controller state
	TimeScale  float64 // Multiplies game time; reloads still use wall-clock time
	TuningPath string  // Optional tuning.yaml read at startup
	Watch      bool    // Reload TuningPath when it changes
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Coyote Run",
	}

	Physics = PhysicsConfig{
		Gravity:      1100,
		MaxFallSpeed: 600,
		MaxRiseSpeed: 900,
		FallMargin:   64,
	}

	Player = PlayerConfig{
		RunSpeed:  150,
		JumpSpeed: 380, // ~65px apex at the default gravity

		CoyoteTime:     0.1,
		JumpBufferTime: 0.12,

		ReloadDelay: time.Second,

		CollisionWidth:  14,
		CollisionHeight: 24,
	}

	Camera = CameraConfig{
		FollowSmoothing:         0.1,
		LookAheadDistanceX:      60.0, // ~10% of 640px screen width
		LookAheadSmoothing:      0.05,
		LookAheadSpeedThreshold: 5,
	}

	Level = LevelConfig{
		CellSize:    16,
		SkyColor:    color.RGBA{R: 24, G: 28, B: 48, A: 255},
		GroundColor: color.RGBA{R: 92, G: 70, B: 52, A: 255},
		GroundEdge:  color.RGBA{R: 120, G: 180, B: 80, A: 255},
		WaterColor:  color.RGBA{R: 40, G: 110, B: 220, A: 200},
		ExitColor:   color.RGBA{R: 255, G: 220, B: 90, A: 255},
	}

	PlayerLook = PlayerLookConfig{
		BodyColor:  color.RGBA{R: 230, G: 150, B: 70, A: 255},
		EyeColor:   White,
		DyingColor: LightRed,
		BobHeight:  2,
	}

	HUD = HUDConfig{
		Margin:      10,
		LineHeight:  16,
		TextColor:   White,
		ShadowColor: BlackOverlay,
		DebugColor:  Cyan,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		ButtonIdle:      color.RGBA{R: 60, G: 60, B: 80, A: 255},
		ButtonHover:     color.RGBA{R: 80, G: 80, B: 110, A: 255},
		ButtonPressed:   color.RGBA{R: 40, G: 40, B: 60, A: 255},
		Title:           "COYOTE RUN",
		TitlePulse:      0.8,
	}

	Audio = AudioConfig{
		SampleRate: 44100,
		SFXVolume:  0.5,
		Tones: map[SoundID]Tone{
			SoundJump:       {Wave: WaveSquare, StartHz: 330, EndHz: 660, Duration: 90 * time.Millisecond, Volume: 0.35},
			SoundDeath:      {Wave: WaveNoise, Duration: 350 * time.Millisecond, Volume: 0.5},
			SoundExit:       {Wave: WaveTriangle, StartHz: 520, EndHz: 1040, Duration: 300 * time.Millisecond, Volume: 0.6},
			SoundMenuMove:   {Wave: WaveSquare, StartHz: 440, EndHz: 440, Duration: 40 * time.Millisecond, Volume: 0.2},
			SoundMenuSelect: {Wave: WaveTriangle, StartHz: 660, EndHz: 880, Duration: 120 * time.Millisecond, Volume: 0.4},
		},
	}

	Message = MessageConfig{
		DisplayFrames: 150,
		FadeFrames:    30,
		OffsetY:       70,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu:  false,
		Level:     1,
		TimeScale: 1,
	}
}
