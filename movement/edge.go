package movement

import (
	"math"

	"github.com/jakecoffman/cp"
)

// resolveEdges de-clips the character from inside corners and bounces it off
// ceilings. It returns the local-frame impulse to apply this step. Corner
// de-clipping takes precedence over the ceiling bounce, and a hit on both
// sides is not a corner.
func (c *Controller) resolveEdges() cp.Vector {
	left := c.sideHit(-1)
	right := c.sideHit(1)
	push := c.stats.ClipForce + math.Abs(float64(c.intent.X))

	switch {
	case right && !left:
		c.declip()
		return cp.Vector{X: -push}
	case left && !right:
		c.declip()
		return cp.Vector{X: push}
	case c.touchingCeiling():
		c.restoreDeclipped()
		c.state.Velocity.Y = -c.stats.CeilingBounce * math.Abs(c.state.Velocity.Y)
	default:
		c.restoreDeclipped()
	}
	return cp.Vector{}
}

// declip turns off collision with the solid ground around the character so
// the impulse can carry it past the corner.
func (c *Controller) declip() {
	self := c.body.ID()
	for _, col := range c.nearbyGround() {
		if c.isDeclipped(col.ID) {
			continue
		}
		c.world.SetCollisionEnabled(self, col.ID, false)
		c.declipped = append(c.declipped, col.ID)
	}
	c.log.WithField("colliders", len(c.declipped)).Debug("corner de-clip")
}

func (c *Controller) restoreDeclipped() {
	if len(c.declipped) == 0 {
		return
	}
	self := c.body.ID()
	for _, id := range c.declipped {
		c.world.SetCollisionEnabled(self, id, true)
	}
	c.declipped = c.declipped[:0]
}

func (c *Controller) isDeclipped(id ColliderID) bool {
	for _, d := range c.declipped {
		if d == id {
			return true
		}
	}
	return false
}
