package ecs

// System updates a world once per call.
type System interface {
	Update(w *World)
}

// Scheduler runs its systems in the order they were added. Nil systems are
// skipped, so optional stages can be passed unconditionally.
type Scheduler struct {
	systems []System
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, system := range systems {
		s.Add(system)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
}

// Len is the number of scheduled systems.
func (s *Scheduler) Len() int {
	return len(s.systems)
}
