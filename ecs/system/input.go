package system

import (
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/movement"
)

// InputSource reports the device state for the current frame.
type InputSource interface {
	Sample() movement.RawInput
}

// InputSourceFunc adapts a function to InputSource.
type InputSourceFunc func() movement.RawInput

func (f InputSourceFunc) Sample() movement.RawInput { return f() }

// InputSystem samples the shared input once per frame and writes it to every
// Input component.
type InputSystem struct {
	source  InputSource
	sampler *movement.Sampler
	last    movement.RawInput
}

func NewInputSystem(source InputSource) *InputSystem {
	return &InputSystem{source: source, sampler: movement.NewSampler()}
}

func (i *InputSystem) Update(w *ecs.World) {
	if i == nil || w == nil || i.source == nil {
		return
	}

	raw := i.source.Sample()
	intent := i.sampler.Sample(raw)
	i.last = raw

	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		input.Raw = raw
		input.Intent = intent
	})
}

// Reset clears edge detection after a level rebuild so a held jump is not
// read as a new press.
func (i *InputSystem) Reset() {
	if i == nil {
		return
	}
	i.sampler.Reset(i.last)
}
