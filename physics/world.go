package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

const (
	collisionTypeActor cp.CollisionType = iota + 1
	collisionTypeGround
	collisionTypeSolid
)

// ContactKind reports a change in an actor's ground contact.
type ContactKind int

const (
	ContactBegin ContactKind = iota
	ContactEnd
)

// ContactFunc is called from inside Step.
type ContactFunc func(actor *cp.Shape, kind ContactKind)

// World owns the Chipmunk space. Gravity on the space is zero: actors get
// their gravity from their controller as a force.
type World struct {
	space         *cp.Space
	handlersReady bool

	actors   map[*cp.Shape]*Body
	contacts map[*cp.Shape]int
	onGround ContactFunc
}

func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})

	w := &World{
		space:    space,
		actors:   make(map[*cp.Shape]*Body),
		contacts: make(map[*cp.Shape]int),
	}
	w.setupHandlers()
	return w
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// OnGroundContact registers the ground contact callback.
func (w *World) OnGroundContact(fn ContactFunc) {
	w.onGround = fn
}

// AddActor creates a dynamic box centered on (x, y) that never rotates.
func (w *World) AddActor(x, y, width, height, mass, friction float64) *Body {
	if mass <= 0 {
		mass = 1
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: x, Y: y})
	body.SetAngle(0)

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(friction)
	shape.SetCollisionType(collisionTypeActor)

	w.space.AddBody(body)
	w.space.AddShape(shape)

	b := &Body{body: body, shape: shape}
	w.actors[shape] = b
	return b
}

// AddGround creates a static box centered on (x, y). Tagged ground restores
// abilities on contact; untagged ground is plain solid.
func (w *World) AddGround(x, y, width, height, friction float64, tagged bool) *cp.Shape {
	bb := cp.BB{L: x - width/2, B: y - height/2, R: x + width/2, T: y + height/2}
	shape := cp.NewBox2(w.space.StaticBody, bb, 0)
	shape.SetFriction(friction)
	if tagged {
		shape.SetCollisionType(collisionTypeGround)
	} else {
		shape.SetCollisionType(collisionTypeSolid)
	}
	w.space.AddShape(shape)
	return shape
}

// Actor returns the actor owning shape, or nil.
func (w *World) Actor(shape *cp.Shape) *Body {
	if w == nil {
		return nil
	}
	return w.actors[shape]
}

// RemoveActor drops an actor body and its shape from the space.
func (w *World) RemoveActor(b *Body) {
	if w == nil || b == nil {
		return
	}
	w.space.RemoveShape(b.shape)
	w.space.RemoveBody(b.body)
	delete(w.actors, b.shape)
	delete(w.contacts, b.shape)
}

// RemoveShape drops a static shape.
func (w *World) RemoveShape(shape *cp.Shape) {
	if w == nil || shape == nil {
		return
	}
	w.space.RemoveShape(shape)
}

// Grounded reports whether the actor touches any tagged ground.
func (w *World) Grounded(b *Body) bool {
	if w == nil || b == nil {
		return false
	}
	return w.contacts[b.shape] > 0
}

// ContactCount is the number of tagged ground shapes touching the actor.
func (w *World) ContactCount(b *Body) int {
	if w == nil || b == nil {
		return 0
	}
	return w.contacts[b.shape]
}

// Step advances the simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

func (w *World) setupHandlers() {
	if w.handlersReady {
		return
	}

	groundHandler := w.space.NewCollisionHandler(collisionTypeActor, collisionTypeGround)
	groundHandler.UserData = w
	groundHandler.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return true
		}
		actor := world.actorShape(arb)
		if actor == nil {
			return true
		}
		world.contacts[actor]++
		if world.onGround != nil {
			world.onGround(actor, ContactBegin)
		}
		return true
	}
	groundHandler.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world, ok := userData.(*World)
		if !ok || world == nil {
			return
		}
		actor := world.actorShape(arb)
		if actor == nil || world.contacts[actor] == 0 {
			return
		}
		world.contacts[actor]--
		if world.contacts[actor] == 0 && world.onGround != nil {
			world.onGround(actor, ContactEnd)
		}
	}

	w.handlersReady = true
}

func (w *World) actorShape(arb *cp.Arbiter) *cp.Shape {
	shapeA, shapeB := arb.Shapes()
	if _, ok := w.actors[shapeA]; ok {
		return shapeA
	}
	if _, ok := w.actors[shapeB]; ok {
		return shapeB
	}
	return nil
}
