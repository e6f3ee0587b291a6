package component

// DrawLayer orders drawing; lower Order draws first. Screen layers are
// positioned in pixels and ignore the camera.
type DrawLayer struct {
	Order  int
	Screen bool
}

var DrawLayerComponent = NewComponent[DrawLayer]()
