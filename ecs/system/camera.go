package system

import (
	"github.com/milk9111/momentum/common"
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
)

type CameraSystem struct {
	camEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera transform toward the player.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	if !ecs.IsAlive(w, cs.camEntity) {
		camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
		if !ok {
			return
		}
		cs.camEntity = camEntity
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	target, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, cs.camEntity, component.CameraComponent.Kind())

	smooth := 1.0
	if cam != nil && cam.Smoothness > 0 && cam.Smoothness < 1 {
		smooth = cam.Smoothness
	}
	camTransform.X = common.Lerp(camTransform.X, target.X, smooth)
	camTransform.Y = common.Lerp(camTransform.Y, target.Y, smooth)
}
