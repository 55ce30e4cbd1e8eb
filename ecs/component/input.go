package component

import "github.com/milk9111/polarities/movement"

// Input holds the shared input stream both characters consume. Raw is the
// device state sampled this frame and Intent the edge-detected result.
type Input struct {
	Raw    movement.RawInput
	Intent movement.Intent
}

var InputComponent = NewComponent[Input]()
