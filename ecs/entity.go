package ecs

// Entity is a handle into a World. The low half indexes the component
// stores; the high half is the slot's generation, bumped on every reuse so
// stale handles stop resolving. Zero is never alive.
type Entity uint64

type entityID uint32
type generation uint32

func makeEntity(id entityID, gen generation) Entity {
	return Entity(uint64(gen)<<32 | uint64(id))
}

func (e Entity) id() entityID { return entityID(e) }

func (e Entity) generation() generation { return generation(e >> 32) }
