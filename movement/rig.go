package movement

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Rig holds the probe anchors of a character, as offsets from the body
// position in the character's local frame. Every anchor is required.
type Rig struct {
	GroundCheck  *cp.Vector `yaml:"groundCheck"`
	CeilingCheck *cp.Vector `yaml:"ceilingCheck"`
	CeilingBox   *cp.Vector `yaml:"ceilingBox"`
	Hurtbox      *cp.Vector `yaml:"hurtbox"`
}

// DefaultRig matches a 0.5 x 1.375 collider.
func DefaultRig() Rig {
	return Rig{
		GroundCheck:  &cp.Vector{X: 0, Y: -0.7},
		CeilingCheck: &cp.Vector{X: 0, Y: 0.7},
		CeilingBox:   &cp.Vector{X: 0, Y: 0.6},
		Hurtbox:      &cp.Vector{X: 0, Y: 0},
	}
}

func (r Rig) validate() error {
	missing := func(name string) error {
		return fmt.Errorf("%w: rig anchor %s", ErrMissingReference, name)
	}
	switch {
	case r.GroundCheck == nil:
		return missing("groundCheck")
	case r.CeilingCheck == nil:
		return missing("ceilingCheck")
	case r.CeilingBox == nil:
		return missing("ceilingBox")
	case r.Hurtbox == nil:
		return missing("hurtbox")
	}
	return nil
}
