package controller

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid controller config")

// Config tunes the movement controller. The zero value is not usable; start
// from DefaultConfig.
type Config struct {
	PointerSensitivity float32 `yaml:"pointer_sensitivity"`
	Acceleration       float32 `yaml:"acceleration"`
	MaxSpeed           float32 `yaml:"max_speed"`            // sprint speed
	SprintToWalkRatio  float32 `yaml:"sprint_to_walk_ratio"` // walk speed = MaxSpeed * ratio
	Decay              float32 `yaml:"decay"`                // fraction of velocity lost per second while idle, in [0,1)

	SprintDurationMaxMs   float32 `yaml:"sprint_duration_max_ms"`
	StaminaRecoveryFactor float32 `yaml:"stamina_recovery_factor"` // ms of stamina regained per ms rested
	IdleRecoveryBoost     float32 `yaml:"idle_recovery_boost"`
	// SprintTimeoutMs blocks sprinting and recovery for this long after
	// stamina runs out. nil or <= 0 disables the timeout.
	SprintTimeoutMs *float32 `yaml:"sprint_timeout_ms"`

	InputGatedByFocus bool    `yaml:"input_gated_by_focus"`
	MaxDeltaTime      float32 `yaml:"max_delta_time"` // seconds; longer frames are clamped
}

func DefaultConfig() Config {
	timeout := float32(3000)
	return Config{
		PointerSensitivity:    0.002,
		Acceleration:          20,
		MaxSpeed:              5,
		SprintToWalkRatio:     0.6,
		Decay:                 0.996,
		SprintDurationMaxMs:   5000,
		StaminaRecoveryFactor: 0.15,
		IdleRecoveryBoost:     5,
		SprintTimeoutMs:       &timeout,
		InputGatedByFocus:     true,
		MaxDeltaTime:          0.25,
	}
}

// WalkSpeed is the speed cap whenever the player is not sprinting.
func (c Config) WalkSpeed() float32 {
	return c.MaxSpeed * c.SprintToWalkRatio
}

func (c Config) sprintTimeout() (float32, bool) {
	if c.SprintTimeoutMs == nil || *c.SprintTimeoutMs <= 0 {
		return 0, false
	}
	return *c.SprintTimeoutMs, true
}

func (c Config) Validate() error {
	switch {
	case c.PointerSensitivity <= 0:
		return fmt.Errorf("%w: pointer_sensitivity must be positive, got %v", ErrInvalidConfig, c.PointerSensitivity)
	case c.Acceleration <= 0:
		return fmt.Errorf("%w: acceleration must be positive, got %v", ErrInvalidConfig, c.Acceleration)
	case c.MaxSpeed <= 0:
		return fmt.Errorf("%w: max_speed must be positive, got %v", ErrInvalidConfig, c.MaxSpeed)
	case c.SprintToWalkRatio <= 0 || c.SprintToWalkRatio > 1:
		return fmt.Errorf("%w: sprint_to_walk_ratio must be in (0,1], got %v", ErrInvalidConfig, c.SprintToWalkRatio)
	case c.Decay < 0 || c.Decay >= 1:
		return fmt.Errorf("%w: decay must be in [0,1), got %v", ErrInvalidConfig, c.Decay)
	case c.SprintDurationMaxMs <= 0:
		return fmt.Errorf("%w: sprint_duration_max_ms must be positive, got %v", ErrInvalidConfig, c.SprintDurationMaxMs)
	case c.StaminaRecoveryFactor < 0:
		return fmt.Errorf("%w: stamina_recovery_factor must not be negative, got %v", ErrInvalidConfig, c.StaminaRecoveryFactor)
	case c.IdleRecoveryBoost < 1:
		return fmt.Errorf("%w: idle_recovery_boost must be at least 1, got %v", ErrInvalidConfig, c.IdleRecoveryBoost)
	case c.MaxDeltaTime <= 0:
		return fmt.Errorf("%w: max_delta_time must be positive, got %v", ErrInvalidConfig, c.MaxDeltaTime)
	}
	return nil
}
