package component

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/movement"
)

// Kinematic is a body moved by setting its velocity.
type Kinematic interface {
	ID() movement.ColliderID
	Position() cp.Vector
	SetVelocity(v cp.Vector)
}

// MovingPlatform ping-pongs a kinematic collider between Start and
// Start+Direction*TargetDistance.
type MovingPlatform struct {
	Body           Kinematic
	Size           cp.Vector
	Start          cp.Vector
	Direction      cp.Vector
	TargetDistance float64
	MaxSpeed       float64
	Acceleration   float64
	Pause          float64

	Speed   float64
	Wait    float64
	Reverse bool
}

var MovingPlatformComponent = NewComponent[MovingPlatform]()
