package component

import "github.com/milk9111/momentum/movement"

// Input stores the latest frame of input for an entity.
type Input struct {
	movement.Input
}

var InputComponent = NewComponent[Input]()
