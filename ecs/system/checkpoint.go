package system

import (
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/sirupsen/logrus"
)

// CheckpointSystem tracks which checkpoints hold their own character and asks
// for the next level once both do at the same time.
type CheckpointSystem struct {
	log logrus.FieldLogger
}

func NewCheckpointSystem(log logrus.FieldLogger) *CheckpointSystem {
	return &CheckpointSystem{log: log}
}

func (s *CheckpointSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	w.Events().Each(EventContact, func(evt ecs.Event) {
		contact, ok := evt.Data.(ecs.Contact)
		if !ok {
			return
		}
		var inside bool
		switch contact.Kind {
		case ecs.TriggerEnter:
			inside = true
		case ecs.TriggerExit:
		default:
			return
		}
		ch, ok := pw.Character(contact.Character)
		if !ok {
			return
		}
		ecs.ForEach(w, component.CheckpointComponent.Kind(), func(_ ecs.Entity, chk *component.Checkpoint) {
			if chk.Collider == contact.Collider.ID && chk.Polarity == ch.Polarity() {
				chk.Occupied = inside
			}
		})
	})

	total, occupied := 0, 0
	ecs.ForEach(w, component.CheckpointComponent.Kind(), func(_ ecs.Entity, chk *component.Checkpoint) {
		total++
		if chk.Occupied {
			occupied++
		}
	})
	if total < 2 || occupied < total {
		return
	}
	if _, pending := ecs.First(w, component.LevelChangeRequestComponent.Kind()); pending {
		return
	}

	req := &component.LevelChangeRequest{}
	if _, info, ok := ecs.GetFirst(w, component.LevelInfoComponent.Kind()); ok {
		req.TargetLevel = info.Next
		req.Completed = info.Index
		if s.log != nil {
			s.log.WithFields(logrus.Fields{"level": info.Name, "next": info.Next}).Info("level complete")
		}
	}
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.LevelChangeRequestComponent.Kind(), req)
}
