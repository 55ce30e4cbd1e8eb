package system

import (
	"sort"

	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/movement"
)

type MovementPhase int

const (
	// MovementInput runs Controller.HandleInput with the frame's intent.
	MovementInput MovementPhase = iota
	// MovementFixed runs Controller.FixedUpdate.
	MovementFixed
)

// MovementSystem drives every character controller through one phase of its
// pipeline. Characters are visited blue first.
type MovementSystem struct {
	phase MovementPhase
	dt    float64
}

func NewMovementSystem(phase MovementPhase) *MovementSystem {
	return &MovementSystem{phase: phase, dt: common.FixedStep}
}

func (m *MovementSystem) Update(w *ecs.World) {
	if m == nil || w == nil {
		return
	}

	var intent movement.Intent
	if _, input, ok := ecs.GetFirst(w, component.InputComponent.Kind()); ok {
		intent = input.Intent
	}

	for _, c := range characters(w) {
		switch m.phase {
		case MovementInput:
			c.Controller.HandleInput(intent, m.dt)
		case MovementFixed:
			c.Controller.FixedUpdate(m.dt)
		}
	}
}

func characters(w *ecs.World) []*component.Character {
	var out []*component.Character
	ecs.ForEach(w, component.CharacterComponent.Kind(), func(e ecs.Entity, c *component.Character) {
		if c.Controller == nil {
			panic("movement system: character " + e.String() + " has no controller")
		}
		out = append(out, c)
	})
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Polarity < out[j].Polarity
	})
	return out
}
