package component

import "image/color"

// Box draws a filled rectangle centered on the transform, sized in world
// units. Marker draws a strip on the side the transform's ScaleX faces.
type Box struct {
	Width  float64
	Height float64
	Color  color.RGBA
	Marker bool
}

var BoxComponent = NewComponent[Box]()
