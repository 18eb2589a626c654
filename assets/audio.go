package assets

import (
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"

	cfg "github.com/automoto/coyote-run/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesizes sound effects on first use and caches the PCM.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX renders a sound effect into the cache without creating a
// player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	tone, ok := cfg.Audio.Tones[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	l.sfxCache[id] = SynthesizeTone(tone, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for the sound each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// SynthesizeTone renders t as 16-bit little-endian stereo PCM, the format
// audio.Context players read.
func SynthesizeTone(t cfg.Tone, sampleRate int) []byte {
	n := int(t.Duration.Seconds() * float64(sampleRate))
	if n <= 0 {
		return nil
	}
	volume := math.Max(0, math.Min(1, t.Volume))
	rng := rand.New(rand.NewSource(int64(n)))

	buf := make([]byte, n*4)
	phase := 0.0
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.StartHz + (t.EndHz-t.StartHz)*progress
		phase += freq / float64(sampleRate)
		phase -= math.Floor(phase)

		var v float64
		switch t.Wave {
		case cfg.WaveSquare:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case cfg.WaveTriangle:
			v = 4*math.Abs(phase-0.5) - 1
		case cfg.WaveNoise:
			v = rng.Float64()*2 - 1
		}

		s := int16(v * volume * (1 - progress) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*4:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*4+2:], uint16(s))
	}
	return buf
}
