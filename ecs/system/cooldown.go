package system

import (
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
)

// CooldownSystem decrements frame-based cooldowns and removes them on the
// update they reach zero.
type CooldownSystem struct{}

func NewCooldownSystem() *CooldownSystem {
	return &CooldownSystem{}
}

func (s *CooldownSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.CooldownComponent.Kind(), func(e ecs.Entity, cd *component.Cooldown) {
		if cd.Frames > 0 {
			cd.Frames--
		}
		if cd.Frames > 0 {
			return
		}

		// Absence means ready.
		_ = ecs.Remove(w, e, component.CooldownComponent.Kind())
	})
}
