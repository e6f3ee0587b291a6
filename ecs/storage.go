package ecs

// store is the type-erased view the world keeps of a component store.
type store interface {
	remove(id entityID) bool
	has(id entityID) bool
	len() int
}

// sparseStore packs components densely and indexes them by entity id.
type sparseStore[T any] struct {
	dense  []*T
	owners []entityID
	sparse []int
}

func (s *sparseStore[T]) has(id entityID) bool {
	if int(id) >= len(s.sparse) {
		return false
	}
	idx := s.sparse[id]
	return idx >= 0 && idx < len(s.owners) && s.owners[idx] == id
}

func (s *sparseStore[T]) get(id entityID) (*T, bool) {
	if !s.has(id) {
		return nil, false
	}
	return s.dense[s.sparse[id]], true
}

func (s *sparseStore[T]) set(id entityID, v *T) {
	for int(id) >= len(s.sparse) {
		s.sparse = append(s.sparse, -1)
	}
	if s.has(id) {
		s.dense[s.sparse[id]] = v
		return
	}
	s.owners = append(s.owners, id)
	s.dense = append(s.dense, v)
	s.sparse[id] = len(s.owners) - 1
}

func (s *sparseStore[T]) remove(id entityID) bool {
	if !s.has(id) {
		return false
	}
	idx := s.sparse[id]
	last := len(s.owners) - 1
	lastID := s.owners[last]

	s.owners[idx] = lastID
	s.dense[idx] = s.dense[last]
	s.sparse[lastID] = idx

	s.owners = s.owners[:last]
	s.dense[last] = nil
	s.dense = s.dense[:last]
	s.sparse[id] = -1
	return true
}

func (s *sparseStore[T]) len() int {
	return len(s.owners)
}
