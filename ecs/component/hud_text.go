package component

// HUDSlot names a readout on the heads-up display.
type HUDSlot int

const (
	HUDDashCooldown HUDSlot = iota
	HUDAscendCooldown
	HUDMomentum
	HUDLastKey
)

// HUDText is a screen-space text readout. It satisfies movement.TextTarget so
// controllers write to it directly; the HUD system re-renders only when Text
// differs from RenderedText.
type HUDText struct {
	Slot         HUDSlot
	Text         string
	RenderedText string
}

func (t *HUDText) SetText(text string) {
	if t == nil {
		return
	}
	t.Text = text
}

var HUDTextComponent = NewComponent[HUDText]()
