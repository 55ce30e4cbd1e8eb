package movement

import (
	"math"

	"github.com/jakecoffman/cp"
)

type collisionToggle struct {
	a, b    ColliderID
	enabled bool
}

type fakeWorld struct {
	colliders []Collider
	// capsule overlaps are answered per layer
	capsuleLayers Layer
	toggles       []collisionToggle
	disabled      map[ColliderID]bool
}

func newFakeWorld(colliders ...Collider) *fakeWorld {
	return &fakeWorld{colliders: colliders, disabled: make(map[ColliderID]bool)}
}

func (w *fakeWorld) add(c Collider) {
	w.colliders = append(w.colliders, c)
}

func (w *fakeWorld) remove(id ColliderID) {
	out := w.colliders[:0]
	for _, c := range w.colliders {
		if c.ID != id {
			out = append(out, c)
		}
	}
	w.colliders = out
}

func (w *fakeWorld) OverlapBox(center, size cp.Vector, mask Layer) []Collider {
	bb := cp.NewBBForExtents(center, size.X/2, size.Y/2)
	var out []Collider
	for _, c := range w.colliders {
		if c.Category.Layer()&mask == 0 {
			continue
		}
		if bb.Intersects(c.Bounds) {
			out = append(out, c)
		}
	}
	return out
}

func (w *fakeWorld) OverlapCapsule(center, size cp.Vector, dir CapsuleDirection, mask Layer) bool {
	return w.capsuleLayers&mask != 0
}

func (w *fakeWorld) Raycast(origin, dir cp.Vector, maxDistance float64, mask Layer) (Hit, bool) {
	end := origin.Add(dir.Mult(maxDistance))
	best := Hit{Distance: math.Inf(1)}
	found := false
	for _, c := range w.colliders {
		if c.Category.Layer()&mask == 0 {
			continue
		}
		t := c.Bounds.SegmentQuery(origin, end)
		if t == cp.INFINITY {
			continue
		}
		if d := t * maxDistance; d < best.Distance {
			best = Hit{Collider: c, Point: origin.Lerp(end, t), Distance: d}
			found = true
		}
	}
	return best, found
}

func (w *fakeWorld) SetCollisionEnabled(a, b ColliderID, enabled bool) {
	w.toggles = append(w.toggles, collisionToggle{a: a, b: b, enabled: enabled})
	w.disabled[b] = !enabled
}

type fakeBody struct {
	id       ColliderID
	pos      cp.Vector
	half     cp.Vector
	velocity cp.Vector
	impulses []cp.Vector
}

func newFakeBody(pos cp.Vector) *fakeBody {
	return &fakeBody{id: 1, pos: pos, half: cp.Vector{X: 0.25, Y: 0.6875}}
}

func (b *fakeBody) ID() ColliderID          { return b.id }
func (b *fakeBody) Position() cp.Vector     { return b.pos }
func (b *fakeBody) SetPosition(p cp.Vector) { b.pos = p }
func (b *fakeBody) Bounds() cp.BB           { return cp.NewBBForExtents(b.pos, b.half.X, b.half.Y) }
func (b *fakeBody) SetVelocity(v cp.Vector) { b.velocity = v }
func (b *fakeBody) ApplyImpulse(j cp.Vector) {
	b.impulses = append(b.impulses, j)
}

type restartRecord struct {
	polarity Polarity
	cause    RestartCause
}

type fakeSignals struct {
	restarts []restartRecord
}

func (s *fakeSignals) RestartAttempt(p Polarity, cause RestartCause) {
	s.restarts = append(s.restarts, restartRecord{polarity: p, cause: cause})
}

const (
	floorID ColliderID = 100 + iota
	wallID
	ceilingID
	iceID
	oneWayID
	ladderID
)

// floorUnder returns a wide floor whose top sits exactly at the feet of a
// body centered at the origin.
func floorUnder(id ColliderID, cat Category) Collider {
	return Collider{ID: id, Category: cat, Bounds: cp.BB{L: -20, B: -2, R: 20, T: -0.6875}}
}

type harness struct {
	world   *fakeWorld
	body    *fakeBody
	signals *fakeSignals
	ctrl    *Controller
}

func newHarness(p Polarity, stats Stats, colliders ...Collider) *harness {
	h := &harness{
		world:   newFakeWorld(colliders...),
		body:    newFakeBody(cp.Vector{}),
		signals: &fakeSignals{},
	}
	ctrl, err := NewController(Config{
		Polarity: p,
		Stats:    &stats,
		Rig:      DefaultRig(),
		World:    h.world,
		Body:     h.body,
		Signals:  h.signals,
	})
	if err != nil {
		panic(err)
	}
	h.ctrl = ctrl
	return h
}

// step runs one input frame followed by one tick.
func (h *harness) step(in Intent, dt float64) {
	h.ctrl.HandleInput(in, dt)
	h.ctrl.FixedUpdate(dt)
}
