package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// TPS is the render frame rate ebiten drives Update at.
	TPS = 60
	// FixedDelta is the physics step in seconds.
	FixedDelta = 1.0 / 50.0

	// PixelsPerUnit converts world units to screen pixels.
	PixelsPerUnit = 32.0
)
