package entity

import (
	"fmt"

	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
)

const particleLayer = 5

// NewParticle drops one trail particle at (x, y). It lives for the trail's
// lifetime and fades with its TTL.
func NewParticle(w *ecs.World, x, y float64, trail *component.ParticleTrail) (ecs.Entity, error) {
	lifetime := trail.LifetimeFrames
	if lifetime <= 0 {
		lifetime = 1
	}
	size := trail.Size
	if size <= 0 {
		size = 0.25
	}

	p := ecs.CreateEntity(w)
	if err := ecs.Add(w, p, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, fmt.Errorf("particle: add transform: %w", err)
	}
	if err := ecs.Add(w, p, component.BoxComponent.Kind(), &component.Box{Width: size, Height: size, Color: trail.Color}); err != nil {
		return 0, fmt.Errorf("particle: add box: %w", err)
	}
	if err := ecs.Add(w, p, component.ParticleComponent.Kind(), &component.Particle{}); err != nil {
		return 0, fmt.Errorf("particle: add particle: %w", err)
	}
	if err := ecs.Add(w, p, component.TTLComponent.Kind(), &component.TTL{Frames: lifetime, Total: lifetime}); err != nil {
		return 0, fmt.Errorf("particle: add ttl: %w", err)
	}
	if err := ecs.Add(w, p, component.DrawLayerComponent.Kind(), &component.DrawLayer{Order: particleLayer}); err != nil {
		return 0, fmt.Errorf("particle: add layer: %w", err)
	}
	return p, nil
}
