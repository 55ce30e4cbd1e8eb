package component

import "github.com/milk9111/polarities/movement"

// Checkpoint is a level exit trigger for one polarity. Occupied is true while
// that polarity's character stands inside it.
type Checkpoint struct {
	Polarity movement.Polarity
	Collider movement.ColliderID
	Occupied bool
}

var CheckpointComponent = NewComponent[Checkpoint]()
