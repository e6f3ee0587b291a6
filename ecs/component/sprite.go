package component

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite draws Image at the transform, offset by the origin. A negative
// transform ScaleX mirrors it.
type Sprite struct {
	Image   *ebiten.Image
	OriginX float64
	OriginY float64
}

var SpriteComponent = NewComponent[Sprite]()
