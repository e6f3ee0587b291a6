package component

import "github.com/milk9111/momentum/movement"

// Motion binds a movement controller to its actor entity.
type Motion struct {
	Controller *movement.Controller
}

var MotionComponent = NewComponent[Motion]()
