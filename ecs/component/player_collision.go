package component

// PlayerCollision stores ground contact derived from physics collisions with
// ground-tagged shapes.
type PlayerCollision struct {
	Grounded bool
	// Contacts counts ground shapes currently touching.
	Contacts int
}

var PlayerCollisionComponent = NewComponent[PlayerCollision]()
