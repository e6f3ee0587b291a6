package movement

// Facing is the horizontal direction the actor looks toward.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

// Sign returns +1 for right and -1 for left.
func (f Facing) Sign() float64 {
	if f == FacingLeft {
		return -1
	}
	return 1
}

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// ActionKind tags the timed ability currently running. Only one can be
// active, which keeps dash, ascend and blink mutually exclusive.
type ActionKind int

const (
	ActionIdle ActionKind = iota
	ActionDashing
	ActionAscending
	ActionBlinking
)

func (k ActionKind) String() string {
	switch k {
	case ActionDashing:
		return "dashing"
	case ActionAscending:
		return "ascending"
	case ActionBlinking:
		return "blinking"
	default:
		return "idle"
	}
}

// Action is the running timed ability and its progress.
type Action struct {
	Kind    ActionKind
	Elapsed float64

	// blink endpoints along x
	FromX float64
	ToX   float64
}

// suppressesMovement reports whether normal movement and gravity are
// skipped while the action runs.
func (a Action) suppressesMovement() bool {
	return a.Kind == ActionDashing || a.Kind == ActionBlinking
}

type recoveryPhase int

const (
	recoveryNone recoveryPhase = iota
	recoveryDelay
)

// Body is the rigid body the controller drives. Y grows upward.
type Body interface {
	Position() (x, y float64)
	Velocity() (x, y float64)
	SetVelocity(x, y float64)
	MovePosition(x, y float64)
	AddForce(x, y float64)
	Mass() float64
}

// Input is one frame of raw input. Pressed fields are edges, Held fields are
// levels.
type Input struct {
	Horizontal    float64
	JumpPressed   bool
	DashHeld      bool
	AscendPressed bool
	HoverPressed  bool
	BlinkHeld     bool
	BlinkLeft     bool
	BlinkRight    bool
	LastKey       string
}
