package component

// Camera centers the view on the player. Its transform holds the world point
// at the middle of the screen.
type Camera struct {
	Zoom       float64
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
