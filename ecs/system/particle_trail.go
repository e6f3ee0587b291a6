package system

import (
	"github.com/milk9111/momentum/ecs"
	"github.com/milk9111/momentum/ecs/component"
	"github.com/milk9111/momentum/ecs/entity"
)

// ParticleTrailSystem drops a particle behind each emitting trail, at most
// one per IntervalFrames.
type ParticleTrailSystem struct{}

func NewParticleTrailSystem() *ParticleTrailSystem {
	return &ParticleTrailSystem{}
}

func (s *ParticleTrailSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.ParticleTrailComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, trail *component.ParticleTrail, transform *component.Transform) {
		if !trail.Emitting || ecs.Has(w, e, component.CooldownComponent.Kind()) {
			return
		}

		if _, err := entity.NewParticle(w, transform.X, transform.Y, trail); err != nil {
			panic("particle trail system: spawn particle: " + err.Error())
		}
		if trail.IntervalFrames > 0 {
			if err := ecs.Add(w, e, component.CooldownComponent.Kind(), &component.Cooldown{Frames: trail.IntervalFrames}); err != nil {
				panic("particle trail system: add cooldown: " + err.Error())
			}
		}
	})
}
