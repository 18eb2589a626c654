package config

import "time"

// SoundID identifies a sound effect.
type SoundID int

const (
	SoundJump SoundID = iota
	SoundDeath
	SoundExit
	SoundMenuMove
	SoundMenuSelect
)

// Waveform selects the oscillator used for a Tone.
type Waveform int

const (
	WaveSquare Waveform = iota
	WaveTriangle
	WaveNoise
)

// Tone is a synthesized effect: a pitch sweep from StartHz to EndHz that
// fades linearly to silence over Duration.
type Tone struct {
	Wave     Waveform
	StartHz  float64
	EndHz    float64
	Duration time.Duration
	Volume   float64 // 0.0 - 1.0, baked into the samples
}

// AudioConfig holds audio settings
type AudioConfig struct {
	SampleRate int
	SFXVolume  float64 // 0 mutes and never opens an audio device
	Tones      map[SoundID]Tone
}

var Audio AudioConfig
