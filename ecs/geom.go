package ecs

import (
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/movement"
)

// capsule is a segment swept by a radius.
type capsule struct {
	a, b   cp.Vector
	radius float64
}

func newCapsule(center, size cp.Vector, dir movement.CapsuleDirection) capsule {
	if dir == movement.CapsuleHorizontal {
		r := size.Y / 2
		hl := math.Max(0, size.X/2-r)
		return capsule{
			a:      cp.Vector{X: center.X - hl, Y: center.Y},
			b:      cp.Vector{X: center.X + hl, Y: center.Y},
			radius: r,
		}
	}
	r := size.X / 2
	hl := math.Max(0, size.Y/2-r)
	return capsule{
		a:      cp.Vector{X: center.X, Y: center.Y - hl},
		b:      cp.Vector{X: center.X, Y: center.Y + hl},
		radius: r,
	}
}

func (c capsule) bb() cp.BB {
	return cp.BB{
		L: math.Min(c.a.X, c.b.X) - c.radius,
		B: math.Min(c.a.Y, c.b.Y) - c.radius,
		R: math.Max(c.a.X, c.b.X) + c.radius,
		T: math.Max(c.a.Y, c.b.Y) + c.radius,
	}
}

// overlapsBB uses a strict comparison so a capsule resting against a box does
// not count as overlapping it.
func (c capsule) overlapsBB(bb cp.BB) bool {
	return segmentBBDistance(c.a, c.b, bb) < c.radius
}

func (c capsule) overlapsCapsule(o capsule) bool {
	return segmentSegmentDistance(c.a, c.b, o.a, o.b) < c.radius+o.radius
}

func pointSegmentDistance(p, a, b cp.Vector) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSq()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mult(t)))
}

func pointBBDistance(p cp.Vector, bb cp.BB) float64 {
	dx := math.Max(0, math.Max(bb.L-p.X, p.X-bb.R))
	dy := math.Max(0, math.Max(bb.B-p.Y, p.Y-bb.T))
	return math.Hypot(dx, dy)
}

func segmentBBDistance(a, b cp.Vector, bb cp.BB) float64 {
	if bb.IntersectsSegment(a, b) {
		return 0
	}
	d := math.Min(pointBBDistance(a, bb), pointBBDistance(b, bb))
	corners := [4]cp.Vector{
		{X: bb.L, Y: bb.B},
		{X: bb.R, Y: bb.B},
		{X: bb.R, Y: bb.T},
		{X: bb.L, Y: bb.T},
	}
	for _, c := range corners {
		d = math.Min(d, pointSegmentDistance(c, a, b))
	}
	return d
}

func segmentsIntersect(a, b, c, d cp.Vector) bool {
	d1 := b.Sub(a).Cross(c.Sub(a))
	d2 := b.Sub(a).Cross(d.Sub(a))
	d3 := d.Sub(c).Cross(a.Sub(c))
	d4 := d.Sub(c).Cross(b.Sub(c))
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) && ((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func segmentSegmentDistance(a, b, c, d cp.Vector) float64 {
	if segmentsIntersect(a, b, c, d) {
		return 0
	}
	return math.Min(
		math.Min(pointSegmentDistance(a, c, d), pointSegmentDistance(b, c, d)),
		math.Min(pointSegmentDistance(c, a, b), pointSegmentDistance(d, a, b)),
	)
}
