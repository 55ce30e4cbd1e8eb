package ecs

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/movement"
)

type hurtbox struct {
	offset cp.Vector
	size   cp.Vector
	dir    movement.CapsuleDirection
}

// CharacterBody is a character's dynamic Chipmunk body. It implements
// movement.Body.
type CharacterBody struct {
	id       movement.ColliderID
	polarity movement.Polarity
	body     *cp.Body
	shape    *cp.Shape
	half     cp.Vector
	hurtbox  hurtbox
}

var _ movement.Body = (*CharacterBody)(nil)

func (c *CharacterBody) ID() movement.ColliderID { return c.id }

func (c *CharacterBody) Polarity() movement.Polarity { return c.polarity }

func (c *CharacterBody) Position() cp.Vector { return c.body.Position() }

// SetPosition teleports the body. Contacts are recomputed on the next step.
func (c *CharacterBody) SetPosition(p cp.Vector) { c.body.SetPosition(p) }

// Bounds is computed from the body position so it stays current between
// steps.
func (c *CharacterBody) Bounds() cp.BB {
	return cp.NewBBForExtents(c.body.Position(), c.half.X, c.half.Y)
}

func (c *CharacterBody) Velocity() cp.Vector { return c.body.Velocity() }

// SetVelocity drops any component of v that points into a contact resolved
// on the last step, then sets it on the body.
func (c *CharacterBody) SetVelocity(v cp.Vector) {
	c.body.EachArbiter(func(arb *cp.Arbiter) {
		if arb.Count() == 0 {
			return
		}
		n := arb.Normal()
		if into := v.Dot(n); into > 0 {
			v = v.Sub(n.Mult(into))
		}
	})
	c.body.SetVelocityVector(v)
}

func (c *CharacterBody) ApplyImpulse(j cp.Vector) {
	c.body.ApplyImpulseAtWorldPoint(j, c.body.Position())
}

// SetHurtbox places the capsule other characters test against. offset is in
// world space relative to the body position.
func (c *CharacterBody) SetHurtbox(offset, size cp.Vector, dir movement.CapsuleDirection) {
	c.hurtbox = hurtbox{offset: offset, size: size, dir: dir}
}

func (c *CharacterBody) hurtboxCapsule() capsule {
	return newCapsule(c.body.Position().Add(c.hurtbox.offset), c.hurtbox.size, c.hurtbox.dir)
}
