package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/prefabs"
)

const groundLayer = 0

var (
	defaultGroundColor = color.RGBA{R: 0x55, G: 0x8b, B: 0x2f, A: 0xff}
	defaultWallColor   = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0xff}
)

// NewLevel creates a static body per ground in the spec.
func NewLevel(w *ecs.World, spec *prefabs.LevelSpec) ([]ecs.Entity, error) {
	if spec == nil {
		return nil, fmt.Errorf("level: spec is nil")
	}

	entities := make([]ecs.Entity, 0, len(spec.Grounds))
	for i, g := range spec.Grounds {
		e, err := NewGround(w, g)
		if err != nil {
			return nil, fmt.Errorf("level %s: ground %d: %w", spec.Name, i, err)
		}
		entities = append(entities, e)
	}
	return entities, nil
}

func NewGround(w *ecs.World, g prefabs.GroundSpec) (ecs.Entity, error) {
	if g.Width <= 0 || g.Height <= 0 {
		return 0, fmt.Errorf("ground: invalid size %.2fx%.2f", g.Width, g.Height)
	}

	fallback := defaultWallColor
	ground := ecs.CreateEntity(w)
	if g.Tagged() {
		fallback = defaultGroundColor
		if err := ecs.Add(w, ground, component.GroundTagComponent.Kind(), &component.GroundTag{}); err != nil {
			return 0, fmt.Errorf("ground: add ground tag: %w", err)
		}
	}
	if err := ecs.Add(w, ground, component.TransformComponent.Kind(), &component.Transform{X: g.X, Y: g.Y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("ground: add transform: %w", err)
	}
	if err := ecs.Add(w, ground, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    g.Width,
		Height:   g.Height,
		Friction: g.Friction,
		Static:   true,
	}); err != nil {
		return 0, fmt.Errorf("ground: add physics body: %w", err)
	}
	if err := ecs.Add(w, ground, component.BoxComponent.Kind(), &component.Box{
		Width:  g.Width,
		Height: g.Height,
		Color:  g.Color.RGBA8(fallback),
	}); err != nil {
		return 0, fmt.Errorf("ground: add box: %w", err)
	}
	if err := ecs.Add(w, ground, component.DrawLayerComponent.Kind(), &component.DrawLayer{Order: groundLayer}); err != nil {
		return 0, fmt.Errorf("ground: add layer: %w", err)
	}
	return ground, nil
}
