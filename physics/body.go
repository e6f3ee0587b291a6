package physics

import "github.com/jakecoffman/cp"

// Body adapts a Chipmunk body to movement.Body.
type Body struct {
	body  *cp.Body
	shape *cp.Shape
}

func (b *Body) CP() *cp.Body { return b.body }

func (b *Body) Shape() *cp.Shape { return b.shape }

func (b *Body) Position() (float64, float64) {
	p := b.body.Position()
	return p.X, p.Y
}

func (b *Body) Velocity() (float64, float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *Body) SetVelocity(x, y float64) {
	b.body.SetVelocity(x, y)
}

// MovePosition teleports the body. Velocity is kept; the shape is
// reindexed on the next Step.
func (b *Body) MovePosition(x, y float64) {
	b.body.SetPosition(cp.Vector{X: x, Y: y})
}

// AddForce accumulates a force for the next step. Chipmunk clears it after
// integrating.
func (b *Body) AddForce(x, y float64) {
	b.body.ApplyForceAtWorldPoint(cp.Vector{X: x, Y: y}, b.body.Position())
}

func (b *Body) Mass() float64 {
	return b.body.Mass()
}
