package component

import "image/color"

// ParticleTrail emits particles behind its entity while Emitting. Spawn
// pacing uses the Cooldown component on the same entity.
type ParticleTrail struct {
	Emitting       bool
	IntervalFrames int
	LifetimeFrames int
	Size           float64
	Color          color.RGBA
}

var ParticleTrailComponent = NewComponent[ParticleTrail]()

// Particle marks trail particles; they fade as their TTL runs down.
type Particle struct{}

var ParticleComponent = NewComponent[Particle]()
