package movement

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("movement: invalid config")

// Config holds the tuning for a single actor. Durations are in seconds,
// speeds in world units per second.
type Config struct {
	BaseSpeed         float64
	MaxMomentum       float64
	MomentumTime      float64
	MomentumIncrement float64

	JumpPower        float64
	GroundedJumpOnly bool

	DashPower    float64
	DashDuration float64
	DashCooldown float64

	AscendPower    float64
	AscendDuration float64
	AscendCooldown float64

	BlinkEnabled  bool
	BlinkDistance float64
	BlinkDuration float64
	BlinkRecovery float64

	Gravity   float64
	FallSpeed float64
}

// DefaultConfig mirrors the shipped movement prefab.
func DefaultConfig() Config {
	return Config{
		BaseSpeed:         8,
		MaxMomentum:       10,
		MomentumTime:      2,
		MomentumIncrement: 1,
		JumpPower:         16,
		DashPower:         24,
		DashDuration:      0.01,
		DashCooldown:      2,
		AscendPower:       800,
		AscendDuration:    0.1,
		AscendCooldown:    10,
		BlinkEnabled:      true,
		BlinkDistance:     10,
		BlinkDuration:     0.01,
		BlinkRecovery:     1,
		Gravity:           9.81,
		FallSpeed:         50,
	}
}

func (c Config) Validate() error {
	switch {
	case c.BaseSpeed < 0:
		return fmt.Errorf("%w: base speed %.2f is negative", ErrInvalidConfig, c.BaseSpeed)
	case c.MaxMomentum < c.BaseSpeed:
		return fmt.Errorf("%w: max momentum %.2f below base speed %.2f", ErrInvalidConfig, c.MaxMomentum, c.BaseSpeed)
	case c.MomentumTime < 0, c.MomentumIncrement < 0:
		return fmt.Errorf("%w: momentum ramp must not be negative", ErrInvalidConfig)
	case c.DashDuration <= 0, c.AscendDuration <= 0:
		return fmt.Errorf("%w: ability durations must be positive", ErrInvalidConfig)
	case c.DashCooldown < 0, c.AscendCooldown < 0:
		return fmt.Errorf("%w: cooldowns must not be negative", ErrInvalidConfig)
	case c.BlinkEnabled && (c.BlinkDuration <= 0 || c.BlinkRecovery < 0):
		return fmt.Errorf("%w: blink duration must be positive", ErrInvalidConfig)
	case c.BlinkDistance < 0:
		return fmt.Errorf("%w: blink distance %.2f is negative", ErrInvalidConfig, c.BlinkDistance)
	case c.JumpPower < 0:
		return fmt.Errorf("%w: jump power %.2f is negative", ErrInvalidConfig, c.JumpPower)
	case c.Gravity < 0:
		return fmt.Errorf("%w: gravity %.2f is negative", ErrInvalidConfig, c.Gravity)
	case c.FallSpeed < 0:
		return fmt.Errorf("%w: fall speed %.2f is negative", ErrInvalidConfig, c.FallSpeed)
	}
	return nil
}
