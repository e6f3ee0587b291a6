package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/momentum/physics"
)

// PhysicsBody stores collider configuration. The physics system fills in
// Actor for dynamic bodies and Shape for every body.
type PhysicsBody struct {
	Actor    *physics.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	Static   bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
