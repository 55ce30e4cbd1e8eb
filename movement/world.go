package movement

import "github.com/jakecoffman/cp"

// World answers collision queries against the shared level. Queries never
// fail; an empty result means nothing was found.
type World interface {
	// OverlapBox returns every collider on mask overlapping the axis-aligned
	// box centered at center with full extents size.
	OverlapBox(center, size cp.Vector, mask Layer) []Collider
	// OverlapCapsule reports whether any collider on mask overlaps the
	// capsule.
	OverlapCapsule(center, size cp.Vector, dir CapsuleDirection, mask Layer) bool
	// Raycast returns the nearest collider on mask hit by the ray.
	Raycast(origin, dir cp.Vector, maxDistance float64, mask Layer) (Hit, bool)
	// SetCollisionEnabled toggles solid collision between two colliders.
	SetCollisionEnabled(a, b ColliderID, enabled bool)
}

// Body is the rigid body the controller drives. All vectors are in world
// space.
type Body interface {
	ID() ColliderID
	Position() cp.Vector
	SetPosition(p cp.Vector)
	Bounds() cp.BB
	SetVelocity(v cp.Vector)
	ApplyImpulse(j cp.Vector)
}

// RestartCause says why an attempt ended.
type RestartCause uint8

const (
	RestartHazard RestartCause = iota + 1
	RestartOtherCharacter
)

func (c RestartCause) String() string {
	switch c {
	case RestartHazard:
		return "hazard"
	case RestartOtherCharacter:
		return "other_character"
	}
	return "unknown"
}

// Signals receives the controller's outbound notifications.
type Signals interface {
	RestartAttempt(p Polarity, cause RestartCause)
}

// SignalsFunc adapts a function to Signals.
type SignalsFunc func(p Polarity, cause RestartCause)

func (f SignalsFunc) RestartAttempt(p Polarity, cause RestartCause) {
	f(p, cause)
}
