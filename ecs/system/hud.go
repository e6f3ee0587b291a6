package system

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const hudTextH = 16

var hudTextColor = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// HUDSystem renders HUD text into its sprite image, only when the text
// changed since the last render.
type HUDSystem struct {
	face text.Face
}

func NewHUDSystem() *HUDSystem {
	return &HUDSystem{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (s *HUDSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.HUDTextComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, hud *component.HUDText, sprite *component.Sprite) {
		if hud.Text == hud.RenderedText && sprite.Image != nil {
			return
		}
		if hud.Text == "" {
			return
		}

		width := int(math.Ceil(text.Advance(hud.Text, s.face))) + 1
		img := ebiten.NewImage(width, hudTextH)
		op := &text.DrawOptions{}
		op.ColorScale.ScaleWithColor(hudTextColor)
		text.Draw(img, hud.Text, s.face, op)

		if sprite.Image != nil {
			sprite.Image.Deallocate()
		}
		sprite.Image = img
		hud.RenderedText = hud.Text
	})
}
