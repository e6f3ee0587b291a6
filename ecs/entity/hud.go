package entity

import (
	"fmt"

	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
)

const (
	hudLayer    = 1000
	hudPaddingX = 12.0
	hudPaddingY = 12.0
	hudLineH    = 18.0
)

var hudSlots = []component.HUDSlot{
	component.HUDDashCooldown,
	component.HUDAscendCooldown,
	component.HUDMomentum,
	component.HUDLastKey,
}

// NewHUD creates one screen-space text entity per readout, stacked in the
// top-left corner.
func NewHUD(w *ecs.World) ([]ecs.Entity, error) {
	entities := make([]ecs.Entity, 0, len(hudSlots))
	for i, slot := range hudSlots {
		e, err := NewHUDText(w, slot, hudPaddingX, hudPaddingY+float64(i)*hudLineH)
		if err != nil {
			return nil, err
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func NewHUDText(w *ecs.World, slot component.HUDSlot, x, y float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.HUDTextComponent.Kind(), &component.HUDText{Slot: slot}); err != nil {
		return 0, fmt.Errorf("hud: add text: %w", err)
	}
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("hud: add transform: %w", err)
	}
	// The HUD system renders the image once text arrives.
	if err := ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{}); err != nil {
		return 0, fmt.Errorf("hud: add sprite: %w", err)
	}
	if err := ecs.Add(w, e, component.DrawLayerComponent.Kind(), &component.DrawLayer{Order: hudLayer, Screen: true}); err != nil {
		return 0, fmt.Errorf("hud: add layer: %w", err)
	}
	return e, nil
}
