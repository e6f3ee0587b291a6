package system

import (
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
)

// TTLSystem counts lifetimes down once per frame pass and destroys the
// entities that run out.
type TTLSystem struct {
	expired []ecs.Entity
}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	s.expired = s.expired[:0]
	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Frames--
		if ttl.Frames <= 0 {
			s.expired = append(s.expired, e)
		}
	})
	for _, e := range s.expired {
		ecs.DestroyEntity(w, e)
	}
}
