package movement

import "github.com/jakecoffman/cp"

type groundProbe struct {
	grounded bool
	onIce    bool
}

// anchor returns the world position of a rig anchor.
func (c *Controller) anchor(offset *cp.Vector) cp.Vector {
	return c.body.Position().Add(c.polarity.ToWorld(*offset))
}

// probeGround reports whether the feet box touches anything the character
// can stand on. The other polarity's one-way platforms never count.
func (c *Controller) probeGround() groundProbe {
	var g groundProbe
	foreign := c.polarity.ForeignOneWay()
	for _, col := range c.world.OverlapBox(c.anchor(c.rig.GroundCheck), c.stats.GroundProbeSize, LayerGround) {
		if col.Category == foreign {
			continue
		}
		g.grounded = true
		if col.Category == CategoryIce {
			g.onIce = true
		}
	}
	return g
}

// solidAt reports whether a box overlaps ground that blocks from every
// side. One-way platforms of either polarity are passable from below and
// from the side.
func (c *Controller) solidAt(center, size cp.Vector) bool {
	for _, col := range c.world.OverlapBox(center, size, LayerGround) {
		if col.Category.Solid() {
			return true
		}
	}
	return false
}

func (c *Controller) touchingCeiling() bool {
	return c.solidAt(c.anchor(c.rig.CeilingCheck), c.stats.CeilingProbeSize)
}

// sideHit probes beside the ceiling box. side is -1 for the local left and 1
// for the local right.
func (c *Controller) sideHit(side float64) bool {
	offset := cp.Vector{X: side * c.stats.sideProbeOffset()}
	center := c.anchor(c.rig.CeilingBox).Add(c.polarity.ToWorld(offset))
	return c.solidAt(center, c.stats.sideProbeSize())
}

// nearbyGround returns the solid colliders around the body.
func (c *Controller) nearbyGround() []Collider {
	bb := c.body.Bounds()
	m := c.stats.NearbyGroundMargin
	size := cp.Vector{X: bb.R - bb.L + 2*m, Y: bb.T - bb.B + 2*m}
	var out []Collider
	for _, col := range c.world.OverlapBox(bb.Center(), size, LayerGround) {
		if col.Category.Solid() {
			out = append(out, col)
		}
	}
	return out
}
