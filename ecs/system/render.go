package system

import (
	"image/color"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
)

// View maps world units (y up) to screen pixels (y down) around a camera
// point at the center of the screen.
type View struct {
	CamX float64
	CamY float64
	Zoom float64
}

func (v View) scale() float64 {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return common.PixelsPerUnit * zoom
}

// ToScreen converts a world point to screen pixels.
func (v View) ToScreen(x, y float64) (float64, float64) {
	s := v.scale()
	return (x-v.CamX)*s + common.BaseWidth/2, common.BaseHeight/2 - (y-v.CamY)*s
}

type RenderSystem struct {
	camEntity ecs.Entity
	drawList  []ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

// View returns the current camera view.
func (r *RenderSystem) View(w *ecs.World) View {
	if !ecs.IsAlive(w, r.camEntity) {
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}

	view := View{Zoom: 1}
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		view.CamX = camTransform.X
		view.CamY = camTransform.Y
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		view.Zoom = cam.Zoom
	}
	return view
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}

	view := r.View(w)
	entities := r.sortedDrawList(w)

	for _, e := range entities {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			continue
		}
		layer, _ := ecs.Get(w, e, component.DrawLayerComponent.Kind())
		screenSpace := layer != nil && layer.Screen

		if box, ok := ecs.Get(w, e, component.BoxComponent.Kind()); ok && !screenSpace {
			r.drawBox(w, e, screen, view, t, box)
		}

		s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
		if !ok || s.Image == nil {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(-s.OriginX, -s.OriginY)
		sx := t.ScaleX
		if sx == 0 {
			sx = 1
		}
		sy := t.ScaleY
		if sy == 0 {
			sy = 1
		}
		op.GeoM.Scale(sx, sy)

		if screenSpace {
			op.GeoM.Translate(t.X, t.Y)
		} else {
			op.GeoM.Scale(view.Zoom, view.Zoom)
			x, y := view.ToScreen(t.X, t.Y)
			op.GeoM.Translate(x, y)
		}

		screen.DrawImage(s.Image, op)
	}
}

func (r *RenderSystem) sortedDrawList(w *ecs.World) []ecs.Entity {
	r.drawList = r.drawList[:0]
	ecs.ForEach(w, component.TransformComponent.Kind(), func(e ecs.Entity, _ *component.Transform) {
		if ecs.Has(w, e, component.BoxComponent.Kind()) || ecs.Has(w, e, component.SpriteComponent.Kind()) {
			r.drawList = append(r.drawList, e)
		}
	})

	layer := func(e ecs.Entity) int {
		if l, ok := ecs.Get(w, e, component.DrawLayerComponent.Kind()); ok {
			return l.Order
		}
		return 0
	}
	sort.SliceStable(r.drawList, func(i, j int) bool {
		li, lj := layer(r.drawList[i]), layer(r.drawList[j])
		if li != lj {
			return li < lj
		}
		return uint64(r.drawList[i]) < uint64(r.drawList[j])
	})
	return r.drawList
}

func (r *RenderSystem) drawBox(w *ecs.World, e ecs.Entity, screen *ebiten.Image, view View, t *component.Transform, box *component.Box) {
	c := box.Color
	if ecs.Has(w, e, component.ParticleComponent.Kind()) {
		if ttl, ok := ecs.Get(w, e, component.TTLComponent.Kind()); ok {
			c = fade(c, ttl.Remaining())
		}
	}

	scale := view.scale()
	x, y := view.ToScreen(t.X-box.Width/2, t.Y+box.Height/2)
	bw, bh := box.Width*scale, box.Height*scale
	vector.FillRect(screen, float32(x), float32(y), float32(bw), float32(bh), c, false)

	if !box.Marker {
		return
	}
	// Facing marker on the leading edge.
	mw := bw / 4
	mx := x + bw - mw
	if t.ScaleX < 0 {
		mx = x
	}
	vector.FillRect(screen, float32(mx), float32(y+bh/6), float32(mw), float32(bh/6), color.RGBA{A: 0xff}, false)
}

func fade(c color.RGBA, k float64) color.RGBA {
	k = common.Clamp(k, 0, 1)
	// Premultiplied alpha.
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: uint8(float64(c.A) * k),
	}
}
