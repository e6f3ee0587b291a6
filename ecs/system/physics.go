package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/physics"
)

// PhysicsSystem mirrors PhysicsBody components into a Chipmunk space, steps
// it once per fixed tick and copies actor positions back to transforms.
// Contacts with ground-tagged shapes are pushed to the world event queue.
type PhysicsSystem struct {
	world *physics.World
	dt    float64

	entities map[ecs.Entity]*cp.Shape
	actors   map[*cp.Shape]ecs.Entity

	// current is only set while Update runs so contact callbacks can reach
	// the ECS world.
	current *ecs.World
}

func NewPhysicsSystem(dt float64) *PhysicsSystem {
	ps := &PhysicsSystem{
		world:    physics.NewWorld(),
		dt:       dt,
		entities: make(map[ecs.Entity]*cp.Shape),
		actors:   make(map[*cp.Shape]ecs.Entity),
	}
	ps.world.OnGroundContact(ps.onGroundContact)
	return ps
}

func (ps *PhysicsSystem) World() *physics.World {
	if ps == nil {
		return nil
	}
	return ps.world
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.syncEntities(w)

	ps.current = w
	ps.world.Step(ps.dt)
	ps.current = nil

	ps.syncTransforms(w)
}

func (ps *PhysicsSystem) syncEntities(w *ecs.World) {
	ps.cleanupEntities(w)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		if _, ok := ps.entities[e]; ok {
			return
		}

		if body.Static {
			tagged := ecs.Has(w, e, component.GroundTagComponent.Kind())
			body.Shape = ps.world.AddGround(transform.X, transform.Y, body.Width, body.Height, body.Friction, tagged)
			ps.entities[e] = body.Shape
			return
		}

		actor := ps.world.AddActor(transform.X, transform.Y, body.Width, body.Height, body.Mass, body.Friction)
		body.Actor = actor
		body.Shape = actor.Shape()
		ps.entities[e] = body.Shape
		ps.actors[body.Shape] = e
	})
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, shape := range ps.entities {
		if ecs.Has(w, e, component.PhysicsBodyComponent.Kind()) {
			continue
		}

		if _, ok := ps.actors[shape]; ok {
			ps.world.RemoveActor(ps.world.Actor(shape))
			delete(ps.actors, shape)
		} else {
			ps.world.RemoveShape(shape)
		}
		delete(ps.entities, e)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, body *component.PhysicsBody, transform *component.Transform) {
		if body.Static || body.Actor == nil {
			return
		}
		transform.X, transform.Y = body.Actor.Position()
	})
}

func (ps *PhysicsSystem) onGroundContact(shape *cp.Shape, kind physics.ContactKind) {
	w := ps.current
	if w == nil {
		return
	}
	e, ok := ps.actors[shape]
	if !ok || !ecs.IsAlive(w, e) {
		return
	}

	grounded := kind == physics.ContactBegin
	if pc, ok := ecs.Get(w, e, component.PlayerCollisionComponent.Kind()); ok {
		pc.Contacts = ps.world.ContactCount(ps.world.Actor(shape))
		pc.Grounded = pc.Contacts > 0
	}

	evt := ecs.CollisionEvent{Entity: e, Kind: ecs.CollisionEventAirborne}
	if grounded {
		evt.Kind = ecs.CollisionEventGrounded
	}
	w.Events().Push(ecs.Event{Type: ecs.EventTypeCollision, Data: evt})
}
