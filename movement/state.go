package movement

import "github.com/jakecoffman/cp"

// State is the per-character simulation state. Velocity is kept in the
// character's local frame.
type State struct {
	Velocity         cp.Vector
	PreviousVelocity cp.Vector

	FacingRight bool
	IsJumping   bool

	CoyoteTimer float64
	BufferTimer float64

	AccelerationModifier float64

	IsOnLadder bool
	IsClimbing bool

	IgnoreGroundCollision bool
	// OneWay is the own-polarity one-way platform currently touched, or zero.
	OneWay ColliderID
}

func newState() State {
	return State{
		FacingRight:          true,
		AccelerationModifier: 1,
	}
}
