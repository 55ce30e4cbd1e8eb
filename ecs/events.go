package ecs

// EventType names an event payload kind.
type EventType string

// Event is a generic ECS event payload.
type Event struct {
	Type EventType
	Data any
}

// EventQueue is a FIFO of events raised during one tick. Consumers read it
// with Each; the scheduler clears it once every system has run.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Each visits every queued event of the given type.
func (q *EventQueue) Each(t EventType, fn func(Event)) {
	if q == nil {
		return
	}
	for _, evt := range q.items {
		if evt.Type == t {
			fn(evt)
		}
	}
}

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
