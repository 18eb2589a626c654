package config

import (
	_ "embed"
	"errors"
	"fmt"
	"math"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

//go:embed tuning.yaml
var DefaultTuning []byte

// Tuning is a partial override of the player and physics configuration.
// Nil fields keep the current value.
type Tuning struct {
	Player  PlayerTuning  `yaml:"player"`
	Physics PhysicsTuning `yaml:"physics"`
}

type PlayerTuning struct {
	RunSpeed       *float64   `yaml:"run_speed"`
	JumpSpeed      *float64   `yaml:"jump_speed"`
	CoyoteTime     *float64   `yaml:"coyote_time"`
	JumpBufferTime *float64   `yaml:"jump_buffer_time"`
	DeathKick      *VecTuning `yaml:"death_kick"`
	ReloadDelay    *float64   `yaml:"reload_delay"` // seconds
}

type VecTuning struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type PhysicsTuning struct {
	Gravity      *float64 `yaml:"gravity"`
	MaxFallSpeed *float64 `yaml:"max_fall_speed"`
	MaxRiseSpeed *float64 `yaml:"max_rise_speed"`
}

var ErrInvalidTuning = errors.New("invalid tuning")

// ParseTuning decodes and validates a tuning document.
func ParseTuning(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("config: unmarshal tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

// LoadTuning reads and parses a tuning file from disk.
func LoadTuning(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: load %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects non-finite values and negative speeds, windows and
// delays.
func (t *Tuning) Validate() error {
	check := func(name string, v *float64) error {
		if v == nil {
			return nil
		}
		if !isFinite(*v) {
			return fmt.Errorf("%w: %s must be a finite number (got %v)", ErrInvalidTuning, name, *v)
		}
		if *v < 0 {
			return fmt.Errorf("%w: %s must not be negative (got %v)", ErrInvalidTuning, name, *v)
		}
		return nil
	}
	if k := t.Player.DeathKick; k != nil && (!isFinite(k.X) || !isFinite(k.Y)) {
		return fmt.Errorf("%w: player.death_kick must be finite (got %v, %v)", ErrInvalidTuning, k.X, k.Y)
	}
	fields := []struct {
		name string
		v    *float64
	}{
		{"player.run_speed", t.Player.RunSpeed},
		{"player.jump_speed", t.Player.JumpSpeed},
		{"player.coyote_time", t.Player.CoyoteTime},
		{"player.jump_buffer_time", t.Player.JumpBufferTime},
		{"player.reload_delay", t.Player.ReloadDelay},
		{"physics.gravity", t.Physics.Gravity},
		{"physics.max_fall_speed", t.Physics.MaxFallSpeed},
		{"physics.max_rise_speed", t.Physics.MaxRiseSpeed},
	}
	for _, f := range fields {
		if err := check(f.name, f.v); err != nil {
			return err
		}
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Apply copies every set field onto the given configs.
func (t *Tuning) Apply(player *PlayerConfig, physics *PhysicsConfig) {
	setFloat := func(dst *float64, v *float64) {
		if v != nil {
			*dst = *v
		}
	}

	setFloat(&player.RunSpeed, t.Player.RunSpeed)
	setFloat(&player.JumpSpeed, t.Player.JumpSpeed)
	setFloat(&player.CoyoteTime, t.Player.CoyoteTime)
	setFloat(&player.JumpBufferTime, t.Player.JumpBufferTime)
	if k := t.Player.DeathKick; k != nil {
		player.DeathKickX = k.X
		player.DeathKickY = k.Y
	}
	if d := t.Player.ReloadDelay; d != nil {
		player.ReloadDelay = time.Duration(*d * float64(time.Second))
	}

	setFloat(&physics.Gravity, t.Physics.Gravity)
	setFloat(&physics.MaxFallSpeed, t.Physics.MaxFallSpeed)
	setFloat(&physics.MaxRiseSpeed, t.Physics.MaxRiseSpeed)
}

// ApplyTuningFile loads path and applies it to the global Player and Physics
// configs. Running levels keep the parameters they were built with.
func ApplyTuningFile(path string) error {
	t, err := LoadTuning(path)
	if err != nil {
		return err
	}
	t.Apply(&Player, &Physics)
	return nil
}
