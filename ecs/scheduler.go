package ecs

type System interface {
	Update(w *World)
}

// Scheduler runs systems in registration order, once per fixed tick.
type Scheduler struct {
	systems []System
	ticks   uint64
}

func NewScheduler(systems ...System) *Scheduler {
	s := &Scheduler{}
	for _, sys := range systems {
		s.Add(sys)
	}
	return s
}

func (s *Scheduler) Add(system System) {
	if system == nil {
		return
	}
	s.systems = append(s.systems, system)
}

// Update runs one tick. Events pushed during the tick are visible to every
// later system in the same tick and discarded afterwards.
func (s *Scheduler) Update(w *World) {
	for _, system := range s.systems {
		system.Update(w)
	}
	w.Events().flush()
	s.ticks++
}

// Ticks is the number of completed Update calls.
func (s *Scheduler) Ticks() uint64 {
	return s.ticks
}
