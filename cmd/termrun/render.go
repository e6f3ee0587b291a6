package main

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/sim"
)

// A cell is half a world unit wide and one unit tall, which keeps terminal
// glyphs roughly square.
const (
	cellW = 0.5
	cellH = 1.0
)

var (
	styleHUD      = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleGround   = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleWall     = tcell.StyleDefault.Foreground(tcell.ColorGray)
	stylePlayer   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleParticle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

type viewport struct {
	camX, camY    float64
	width, height int
}

func (v viewport) cellAt(x, y float64) (int, int) {
	col := v.width/2 + int(math.Floor((x-v.camX)/cellW))
	row := v.height/2 - 1 - int(math.Floor((y-v.camY)/cellH))
	return col, row
}

func drawWorld(screen tcell.Screen, s *sim.Simulation) {
	screen.Clear()
	w, h := screen.Size()
	view := viewport{width: w, height: h}

	if cam, ok := ecs.First(s.World, component.CameraComponent.Kind()); ok {
		if t, ok := ecs.Get(s.World, cam, component.TransformComponent.Kind()); ok {
			view.camX, view.camY = t.X, t.Y
		}
	}

	ecs.ForEach2(s.World, component.BoxComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, box *component.Box, t *component.Transform) {
		switch {
		case ecs.Has(s.World, e, component.ParticleComponent.Kind()):
			col, row := view.cellAt(t.X, t.Y)
			screen.SetContent(col, row, '·', nil, styleParticle)
		case ecs.Has(s.World, e, component.PlayerTagComponent.Kind()):
			fillBox(screen, view, t, box, '█', stylePlayer)
			head := '>'
			if t.ScaleX < 0 {
				head = '<'
			}
			col, row := view.cellAt(t.X, t.Y+box.Height/2-cellH/2)
			screen.SetContent(col, row, head, nil, stylePlayer.Reverse(true))
		case ecs.Has(s.World, e, component.GroundTagComponent.Kind()):
			fillBox(screen, view, t, box, '▀', styleGround)
		default:
			fillBox(screen, view, t, box, '▓', styleWall)
		}
	})

	for i, line := range s.HUDTexts() {
		drawText(screen, 1, i, line, styleHUD)
	}

	screen.Show()
}

// fillBox paints every cell the box overlaps.
func fillBox(screen tcell.Screen, view viewport, t *component.Transform, box *component.Box, r rune, style tcell.Style) {
	const eps = 1e-9
	c0, r0 := view.cellAt(t.X-box.Width/2, t.Y+box.Height/2-eps)
	c1, r1 := view.cellAt(t.X+box.Width/2-eps, t.Y-box.Height/2)
	for row := max(r0, 0); row <= min(r1, view.height-1); row++ {
		for col := max(c0, 0); col <= min(c1, view.width-1); col++ {
			screen.SetContent(col, row, r, nil, style)
		}
	}
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}
