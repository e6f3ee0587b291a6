package component

// Cooldown is a frame-based countdown marker. The cooldown system removes it
// once Frames reaches zero; its absence means "ready".
type Cooldown struct {
	// Frames remaining for the cooldown (in update ticks)
	Frames int
}

var CooldownComponent = NewComponent[Cooldown]()
