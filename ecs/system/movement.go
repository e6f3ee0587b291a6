package system

import (
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/movement"
)

// MovementSystem runs the per-frame pass of every movement controller and
// mirrors the result onto facing and the particle trail.
type MovementSystem struct {
	dt float64
}

func NewMovementSystem(dt float64) *MovementSystem {
	return &MovementSystem{dt: dt}
}

func (s *MovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w, component.MotionComponent.Kind(), component.InputComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, motion *component.Motion, input *component.Input, body *component.PhysicsBody) {
		if motion.Controller == nil || body.Actor == nil {
			return
		}

		motion.Controller.Frame(s.dt, input.Input, body.Actor)
		// Edges are consumed once.
		input.JumpPressed = false
		input.AscendPressed = false
		input.HoverPressed = false
		input.LastKey = ""

		syncFacing(w, e, motion.Controller)
		syncTrail(w, e, motion.Controller)
	})
}

// MovementTickSystem applies ground contacts reported by the previous physics
// step, then runs the fixed-step pass of every controller. It must run before
// the physics system within a tick.
type MovementTickSystem struct {
	dt float64
}

func NewMovementTickSystem(dt float64) *MovementTickSystem {
	return &MovementTickSystem{dt: dt}
}

func (s *MovementTickSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventTypeCollision {
			continue
		}
		collision, ok := evt.Data.(ecs.CollisionEvent)
		if !ok {
			continue
		}
		motion, ok := ecs.Get(w, collision.Entity, component.MotionComponent.Kind())
		if !ok || motion.Controller == nil {
			continue
		}
		switch collision.Kind {
		case ecs.CollisionEventGrounded:
			motion.Controller.Grounded()
		case ecs.CollisionEventAirborne:
			motion.Controller.Airborne()
		}
	}

	ecs.ForEach2(w, component.MotionComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, motion *component.Motion, body *component.PhysicsBody) {
		if motion.Controller == nil || body.Actor == nil {
			return
		}
		motion.Controller.Tick(s.dt, body.Actor)
		syncTrail(w, e, motion.Controller)
	})
}

func syncFacing(w *ecs.World, e ecs.Entity, c *movement.Controller) {
	transform, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return
	}
	transform.ScaleX = c.Facing().Sign()
}

func syncTrail(w *ecs.World, e ecs.Entity, c *movement.Controller) {
	trail, ok := ecs.Get(w, e, component.ParticleTrailComponent.Kind())
	if !ok {
		return
	}
	trail.Emitting = c.TrailActive()
}
