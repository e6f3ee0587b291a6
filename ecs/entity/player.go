package entity

import (
	"fmt"
	"image/color"

	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/movement"
	"github.com/milk9111/momentum/prefabs"
)

const playerLayer = 10

var (
	defaultPlayerColor = color.RGBA{R: 0x4f, G: 0xc3, B: 0xf7, A: 0xff}
	defaultTrailColor  = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xc0}
)

// NewPlayer spawns the controllable actor. The HUD must exist first: its
// dash and ascend cooldown texts are required by the controller.
func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, cfg movement.Config) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: spec is nil")
	}

	controller, err := movement.NewController(cfg, FindHUD(w))
	if err != nil {
		return 0, fmt.Errorf("player: %w", err)
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{
		X:      spec.Transform.X,
		Y:      spec.Transform.Y,
		ScaleX: 1,
		ScaleY: 1,
	}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{
		Width:    spec.Collider.Width,
		Height:   spec.Collider.Height,
		Mass:     spec.Collider.Mass,
		Friction: spec.Collider.Friction,
	}); err != nil {
		return 0, fmt.Errorf("player: add physics body: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerCollisionComponent.Kind(), &component.PlayerCollision{}); err != nil {
		return 0, fmt.Errorf("player: add player collision: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.MotionComponent.Kind(), &component.Motion{Controller: controller}); err != nil {
		return 0, fmt.Errorf("player: add motion: %w", err)
	}
	if err := ecs.Add(w, player, component.BoxComponent.Kind(), &component.Box{
		Width:  spec.Collider.Width,
		Height: spec.Collider.Height,
		Color:  spec.Color.RGBA8(defaultPlayerColor),
		Marker: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add box: %w", err)
	}
	if err := ecs.Add(w, player, component.ParticleTrailComponent.Kind(), &component.ParticleTrail{
		IntervalFrames: spec.Trail.IntervalFrames,
		LifetimeFrames: spec.Trail.LifetimeFrames,
		Size:           spec.Collider.Width / 2,
		Color:          spec.Trail.Color.RGBA8(defaultTrailColor),
	}); err != nil {
		return 0, fmt.Errorf("player: add particle trail: %w", err)
	}
	if err := ecs.Add(w, player, component.DrawLayerComponent.Kind(), &component.DrawLayer{Order: playerLayer}); err != nil {
		return 0, fmt.Errorf("player: add layer: %w", err)
	}

	return player, nil
}

// FindHUD collects the HUD text entities into display targets. Slots with no
// entity stay nil.
func FindHUD(w *ecs.World) movement.HUD {
	var hud movement.HUD
	ecs.ForEach(w, component.HUDTextComponent.Kind(), func(_ ecs.Entity, text *component.HUDText) {
		switch text.Slot {
		case component.HUDDashCooldown:
			hud.DashCooldown = text
		case component.HUDAscendCooldown:
			hud.AscendCooldown = text
		case component.HUDMomentum:
			hud.Momentum = text
		case component.HUDLastKey:
			hud.LastKey = text
		}
	})
	return hud
}

// PlayerController returns the movement controller of the first player.
func PlayerController(w *ecs.World) (*movement.Controller, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return nil, false
	}
	motion, ok := ecs.Get(w, player, component.MotionComponent.Kind())
	if !ok || motion.Controller == nil {
		return nil, false
	}
	return motion.Controller, true
}
