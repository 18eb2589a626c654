package systems

import (
	"log"
	"sync"

	"github.com/automoto/coyote-run/assets"
	"github.com/automoto/coyote-run/components"
	cfg "github.com/automoto/coyote-run/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAudioLoader  *assets.AudioLoader
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the global audio context (called once)
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		globalAudioLoader = assets.NewAudioLoader(globalAudioContext)
	})
}

// PreloadAllSFX renders every sound effect at startup so the first jump
// doesn't stall on synthesis.
func PreloadAllSFX() {
	if cfg.Audio.SFXVolume <= 0 {
		return
	}
	initGlobalAudio()

	for id := range cfg.Audio.Tones {
		if err := globalAudioLoader.PreloadSFX(id); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
}

// UpdateAudio plays the sound effects queued this frame. Run it after
// ProcessEvents so event handlers can still queue sounds.
func UpdateAudio(e *ecs.ECS) {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	if len(audioData.PendingSFX) == 0 {
		return
	}
	if cfg.Audio.SFXVolume > 0 {
		initGlobalAudio()
		for _, id := range audioData.PendingSFX {
			playSFX(id)
		}
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

func playSFX(id cfg.SoundID) {
	player, err := globalAudioLoader.LoadSFX(id)
	if err != nil {
		log.Printf("Warning: Could not play sound: %v", err)
		return
	}
	player.SetVolume(cfg.Audio.SFXVolume)
	player.Play()
}

// PlaySFX queues a sound effect to be played
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

// GetOrCreateAudio returns the singleton Audio component for this ECS, creating it if needed
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
	}
	return components.Audio.Get(entry)
}
