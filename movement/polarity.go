package movement

import (
	"fmt"

	"github.com/jakecoffman/cp"
)

// Polarity selects which of the two mirrored characters a controller drives.
// Blue simulates in world space. Red simulates in a frame flipped on both
// axes: its "down" is world up and its "right" is world left, so the same
// shared input moves the two characters in opposite directions.
type Polarity uint8

const (
	Blue Polarity = iota + 1
	Red
)

func (p Polarity) Valid() bool {
	return p == Blue || p == Red
}

func (p Polarity) String() string {
	switch p {
	case Blue:
		return "blue"
	case Red:
		return "red"
	}
	return fmt.Sprintf("polarity(%d)", uint8(p))
}

func (p Polarity) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Polarity) UnmarshalText(text []byte) error {
	switch string(text) {
	case "blue":
		*p = Blue
	case "red":
		*p = Red
	default:
		return fmt.Errorf("%w: %q", ErrInvalidPolarity, string(text))
	}
	return nil
}

// Sign is the mirror multiplier between the local and world frames.
func (p Polarity) Sign() float64 {
	if p == Red {
		return -1
	}
	return 1
}

// ToWorld maps a local vector into world space. The mapping is its own
// inverse.
func (p Polarity) ToWorld(v cp.Vector) cp.Vector {
	s := p.Sign()
	return cp.Vector{X: v.X * s, Y: v.Y * s}
}

func (p Polarity) ToLocal(v cp.Vector) cp.Vector {
	return p.ToWorld(v)
}

// Other returns the mirrored polarity.
func (p Polarity) Other() Polarity {
	if p == Red {
		return Blue
	}
	return Red
}

// OwnOneWay is the one-way category this character stands on and drops
// through.
func (p Polarity) OwnOneWay() Category {
	if p == Red {
		return CategoryOneWayDown
	}
	return CategoryOneWayUp
}

// ForeignOneWay is the one-way category that never collides with this
// character.
func (p Polarity) ForeignOneWay() Category {
	return p.Other().OwnOneWay()
}

func (p Polarity) HurtboxCategory() Category {
	if p == Red {
		return CategoryHurtboxRed
	}
	return CategoryHurtboxBlue
}

func (p Polarity) HurtboxLayer() Layer {
	return p.HurtboxCategory().Layer()
}

func (p Polarity) CheckpointCategory() Category {
	if p == Red {
		return CategoryCheckpointRed
	}
	return CategoryCheckpointBlue
}

// DefaultSnapDirection is the world-space direction of the one-way snap
// raycast: toward the character's own floor.
func (p Polarity) DefaultSnapDirection() cp.Vector {
	return p.ToWorld(cp.Vector{X: 0, Y: -1})
}

// LocalBottom returns the bounds edge the character stands on, measured along
// its local up axis.
func (p Polarity) LocalBottom(bb cp.BB) float64 {
	if p == Red {
		return -bb.T
	}
	return bb.B
}

// LocalTop returns the bounds edge facing the character's local up axis.
func (p Polarity) LocalTop(bb cp.BB) float64 {
	if p == Red {
		return -bb.B
	}
	return bb.T
}
