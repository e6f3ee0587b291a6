package movement

import (
	"errors"
	"fmt"
	"math"
)

var ErrMissingDisplayTarget = errors.New("movement: missing display target")

// TextTarget receives formatted readouts.
type TextTarget interface {
	SetText(text string)
}

// HUD holds the display targets the controller reports to. DashCooldown and
// AscendCooldown are required.
type HUD struct {
	DashCooldown   TextTarget
	AscendCooldown TextTarget
	Momentum       TextTarget
	LastKey        TextTarget
}

func (h HUD) validate() error {
	if h.DashCooldown == nil {
		return fmt.Errorf("%w: dash cooldown text", ErrMissingDisplayTarget)
	}
	if h.AscendCooldown == nil {
		return fmt.Errorf("%w: ascend cooldown text", ErrMissingDisplayTarget)
	}
	return nil
}

func DashCooldownText(timer float64) string {
	return fmt.Sprintf("Dash Cooldown: %.2f", DisplayCooldown(timer))
}

func AscendCooldownText(timer float64) string {
	return fmt.Sprintf("Ascend Cooldown: %.2f", DisplayCooldown(timer))
}

func MomentumText(speed float64) string {
	return fmt.Sprintf("Momentum: %.1f", speed)
}

func LastKeyText(key string) string {
	return "Last key pressed: " + key
}

// DisplayCooldown clamps a cooldown timer for display. Timers can dip just
// below zero between ticks.
func DisplayCooldown(timer float64) float64 {
	return math.Max(0, timer)
}

func (h HUD) refresh(c *Controller) {
	h.DashCooldown.SetText(DashCooldownText(c.dashTimer))
	h.AscendCooldown.SetText(AscendCooldownText(c.ascendTimer))
	if h.Momentum != nil {
		h.Momentum.SetText(MomentumText(c.speed))
	}
	if h.LastKey != nil && c.lastKey != "" {
		h.LastKey.SetText(LastKeyText(c.lastKey))
	}
}
