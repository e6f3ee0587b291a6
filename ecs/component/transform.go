package component

// Transform places an entity in world units with y up; screen layers use
// pixels. A negative ScaleX mirrors the entity to face left.
type Transform struct {
	X      float64
	Y      float64
	ScaleX float64
	ScaleY float64
}

var TransformComponent = NewComponent[Transform]()
