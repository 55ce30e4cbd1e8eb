package system

import (
	"fmt"

	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/movement"
)

// EventContact carries an ecs.Contact raised by the last physics step.
const EventContact ecs.EventType = "contact"

// PhysicsSystem steps the level's physics world, copies body positions into
// transforms and forwards enter/exit contacts to the character controllers.
type PhysicsSystem struct {
	dt float64
}

func NewPhysicsSystem() *PhysicsSystem {
	return &PhysicsSystem{dt: common.FixedStep}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	pw := w.PhysicsWorld()
	if pw == nil {
		return
	}

	pw.Step(ps.dt)

	ecs.ForEach2(w, component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, b *component.PhysicsBody, t *component.Transform) {
		pos := b.Body.Position()
		t.X, t.Y = pos.X, pos.Y
	})
	ecs.ForEach2(w, component.MovingPlatformComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, mp *component.MovingPlatform, t *component.Transform) {
		pos := mp.Body.Position()
		t.X, t.Y = pos.X, pos.Y
	})

	contacts := pw.DrainContacts()
	if len(contacts) == 0 {
		return
	}

	byBody := make(map[movement.ColliderID]*movement.Controller)
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if c.Controller == nil {
			panic("physics system: character " + e.String() + " has no controller")
		}
		byBody[c.Controller.Body().ID()] = c.Controller
	})

	for _, contact := range contacts {
		ctrl, ok := byBody[contact.Character]
		if !ok {
			panic(fmt.Sprintf("physics system: contact for unknown character body %d", contact.Character))
		}
		switch contact.Kind {
		case ecs.TriggerEnter:
			ctrl.OnTriggerEnter(contact.Collider)
		case ecs.TriggerExit:
			ctrl.OnTriggerExit(contact.Collider)
		case ecs.CollisionEnter:
			ctrl.OnCollisionEnter(contact.Collider)
		case ecs.CollisionExit:
			ctrl.OnCollisionExit(contact.Collider)
		}
		w.Events().Push(ecs.Event{Type: EventContact, Data: contact})
	}
}
