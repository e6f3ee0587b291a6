// Package sim assembles the world a front end drives: level, HUD texts,
// player and camera, plus the per-frame and fixed-tick schedules.
package sim

import (
	"fmt"

	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/ecs/entity"
	"github.com/milk9111/momentum/ecs/system"
	"github.com/milk9111/momentum/movement"
	"github.com/milk9111/momentum/prefabs"
)

// maxTicksPerFrame bounds catch-up after a long frame.
const maxTicksPerFrame = 5

type Options struct {
	Config movement.Config
	// Input writes the Input component each frame. Nil leaves it to the
	// caller (see SetInput).
	Input ecs.System
}

type Simulation struct {
	World  *ecs.World
	Player ecs.Entity

	frame   *ecs.Scheduler
	tick    *ecs.Scheduler
	late    *ecs.Scheduler
	physics *system.PhysicsSystem

	accumulator float64
	ticks       int
}

func New(opts Options) (*Simulation, error) {
	levelSpec, err := prefabs.LoadLevelSpec()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	w := ecs.NewWorld()
	if _, err := entity.NewLevel(w, levelSpec); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if _, err := entity.NewHUD(w); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	player, err := entity.NewPlayer(w, playerSpec, opts.Config)
	if err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}
	if _, err := entity.NewCamera(w, playerSpec.Transform.X, playerSpec.Transform.Y); err != nil {
		return nil, fmt.Errorf("sim: %w", err)
	}

	frameDT := 1.0 / common.TPS
	physics := system.NewPhysicsSystem(common.FixedDelta)

	frame := ecs.NewScheduler()
	frame.Add(opts.Input)
	frame.Add(system.NewMovementSystem(frameDT))
	frame.Add(system.NewParticleTrailSystem())
	frame.Add(system.NewCooldownSystem())
	frame.Add(system.NewTTLSystem())

	s := &Simulation{
		World:   w,
		Player:  player,
		frame:   frame,
		tick:    ecs.NewScheduler(system.NewMovementTickSystem(common.FixedDelta), physics),
		late:    ecs.NewScheduler(system.NewCameraSystem()),
		physics: physics,
	}
	// Create bodies before the first frame pass needs them.
	physics.Update(w)
	return s, nil
}

// LoadConfig reads the movement tuning prefab.
func LoadConfig() (movement.Config, error) {
	spec, err := prefabs.LoadMovementSpec()
	if err != nil {
		return movement.Config{}, err
	}
	return spec.Config()
}

// Update runs one frame pass, then as many fixed ticks as the elapsed time
// allows.
func (s *Simulation) Update(dt float64) {
	s.frame.Update(s.World)

	s.accumulator += dt
	n := 0
	for s.accumulator >= common.FixedDelta {
		s.tick.Update(s.World)
		s.accumulator -= common.FixedDelta
		s.ticks++
		n++
		if n == maxTicksPerFrame {
			s.accumulator = 0
			break
		}
	}

	s.late.Update(s.World)
}

func (s *Simulation) Physics() *system.PhysicsSystem {
	return s.physics
}

// Ticks is the number of fixed steps run so far.
func (s *Simulation) Ticks() int {
	return s.ticks
}

func (s *Simulation) Controller() *movement.Controller {
	motion, ok := ecs.Get(s.World, s.Player, component.MotionComponent.Kind())
	if !ok {
		return nil
	}
	return motion.Controller
}

// SetInput replaces the player's input for the next frame.
func (s *Simulation) SetInput(in movement.Input) {
	if input, ok := ecs.Get(s.World, s.Player, component.InputComponent.Kind()); ok {
		input.Input = in
	}
}

func (s *Simulation) PlayerPosition() (float64, float64) {
	t, ok := ecs.Get(s.World, s.Player, component.TransformComponent.Kind())
	if !ok {
		return 0, 0
	}
	return t.X, t.Y
}

// HUDTexts returns the current readouts in slot order.
func (s *Simulation) HUDTexts() []string {
	texts := make([]string, component.HUDLastKey+1)
	ecs.ForEach(s.World, component.HUDTextComponent.Kind(), func(_ ecs.Entity, text *component.HUDText) {
		if int(text.Slot) < len(texts) {
			texts[text.Slot] = text.Text
		}
	})
	return texts
}
