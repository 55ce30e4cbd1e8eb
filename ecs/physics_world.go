package ecs

import (
	"math"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/movement"
)

const (
	collisionTypeCharacter cp.CollisionType = iota + 1
	collisionTypeSolid
	collisionTypeOneWay
	collisionTypeSensor
)

// oneWayTolerance is how far below a one-way platform's top a character's
// feet may be and still land on it.
const oneWayTolerance = 0.3

// ContactKind is the kind of enter/exit notification produced by a step.
type ContactKind uint8

const (
	TriggerEnter ContactKind = iota + 1
	TriggerExit
	CollisionEnter
	CollisionExit
)

func (k ContactKind) String() string {
	switch k {
	case TriggerEnter:
		return "trigger_enter"
	case TriggerExit:
		return "trigger_exit"
	case CollisionEnter:
		return "collision_enter"
	case CollisionExit:
		return "collision_exit"
	}
	return "unknown"
}

// Contact is buffered during a step and drained by the physics system.
type Contact struct {
	Kind      ContactKind
	Character movement.ColliderID
	Collider  movement.Collider
}

type colliderEntry struct {
	id       movement.ColliderID
	category movement.Category
	shape    *cp.Shape
}

type colliderPair struct {
	a, b movement.ColliderID
}

func pairOf(a, b movement.ColliderID) colliderPair {
	if a > b {
		a, b = b, a
	}
	return colliderPair{a: a, b: b}
}

// PhysicsWorld owns the Chipmunk space and every tagged collider in the
// level. It answers the movement package's queries.
type PhysicsWorld struct {
	space  *cp.Space
	nextID movement.ColliderID

	byShape    map[*cp.Shape]*colliderEntry
	byID       map[movement.ColliderID]*colliderEntry
	characters map[movement.ColliderID]*CharacterBody

	disabled map[colliderPair]struct{}
	touching map[colliderPair]struct{}
	contacts []Contact
}

// NewPhysicsWorld creates an empty space with no gravity. Characters
// integrate their own gravity and push velocities every step.
func NewPhysicsWorld() *PhysicsWorld {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{})
	space.SetCollisionSlop(0.01)

	pw := &PhysicsWorld{
		space:      space,
		byShape:    make(map[*cp.Shape]*colliderEntry),
		byID:       make(map[movement.ColliderID]*colliderEntry),
		characters: make(map[movement.ColliderID]*CharacterBody),
		disabled:   make(map[colliderPair]struct{}),
		touching:   make(map[colliderPair]struct{}),
	}
	pw.setupHandlers()
	return pw
}

// Space returns the underlying Chipmunk space.
func (pw *PhysicsWorld) Space() *cp.Space {
	if pw == nil {
		return nil
	}
	return pw.space
}

// Step advances the physics simulation.
func (pw *PhysicsWorld) Step(dt float64) {
	if pw == nil || pw.space == nil {
		return
	}
	pw.space.Step(dt)
}

// DrainContacts returns the contacts produced since the last drain in the
// order they happened.
func (pw *PhysicsWorld) DrainContacts() []Contact {
	out := pw.contacts
	pw.contacts = nil
	return out
}

// Collider returns the collider registered under id with its current bounds.
func (pw *PhysicsWorld) Collider(id movement.ColliderID) (movement.Collider, bool) {
	e, ok := pw.byID[id]
	if !ok {
		return movement.Collider{}, false
	}
	return e.collider(), true
}

// Character returns the character body registered under id.
func (pw *PhysicsWorld) Character(id movement.ColliderID) (*CharacterBody, bool) {
	ch, ok := pw.characters[id]
	return ch, ok
}

func (e *colliderEntry) collider() movement.Collider {
	return movement.Collider{ID: e.id, Category: e.category, Bounds: e.shape.BB()}
}

func (pw *PhysicsWorld) register(shape *cp.Shape, cat movement.Category) *colliderEntry {
	pw.nextID++
	e := &colliderEntry{id: pw.nextID, category: cat, shape: shape}
	pw.byShape[shape] = e
	pw.byID[e.id] = e
	return e
}

func configureShape(shape *cp.Shape, cat movement.Category) {
	shape.SetFriction(0)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(cat.Layer()),
		Mask:       cp.ALL_CATEGORIES,
	})
	switch {
	case cat.Solid():
		shape.SetCollisionType(collisionTypeSolid)
	case cat.OneWay():
		shape.SetCollisionType(collisionTypeOneWay)
	default:
		shape.SetSensor(true)
		shape.SetCollisionType(collisionTypeSensor)
	}
}

// AddStaticBox registers a static collider covering bb.
func (pw *PhysicsWorld) AddStaticBox(cat movement.Category, bb cp.BB) movement.ColliderID {
	shape := cp.NewBox2(pw.space.StaticBody, bb, 0)
	configureShape(shape, cat)
	pw.space.AddShape(shape)
	return pw.register(shape, cat).id
}

// AddBounds walls in a width by height area with ground one unit thick.
func (pw *PhysicsWorld) AddBounds(width, height float64) {
	w, h := width, height
	for _, bb := range []cp.BB{
		{L: -1, B: -1, R: w + 1, T: 0},
		{L: -1, B: h, R: w + 1, T: h + 1},
		{L: -1, B: 0, R: 0, T: h},
		{L: w, B: 0, R: w + 1, T: h},
	} {
		pw.AddStaticBox(movement.CategoryGround, bb)
	}
}

// AddTiles registers a tile layer. tiles is indexed y*width+x with y growing
// upward, each tile cell units wide. Adjacent tiles of the same category are
// merged greedily into rectangles so characters do not snag on seams.
func (pw *PhysicsWorld) AddTiles(width, height int, tiles []movement.Category, cell float64) []movement.ColliderID {
	if width <= 0 || height <= 0 || len(tiles) != width*height {
		return nil
	}
	var ids []movement.ColliderID
	processed := make([]bool, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if processed[idx] {
				continue
			}
			cat := tiles[idx]
			if cat == movement.CategoryNone {
				processed[idx] = true
				continue
			}

			w := 1
			for x+w < width {
				idx2 := y*width + x + w
				if processed[idx2] || tiles[idx2] != cat {
					break
				}
				w++
			}

			h := 1
		heightLoop:
			for y+h < height {
				for xi := x; xi < x+w; xi++ {
					idx2 := (y+h)*width + xi
					if processed[idx2] || tiles[idx2] != cat {
						break heightLoop
					}
				}
				h++
			}

			x0, y0 := float64(x)*cell, float64(y)*cell
			bb := cp.BB{L: x0, B: y0, R: x0 + float64(w)*cell, T: y0 + float64(h)*cell}
			ids = append(ids, pw.AddStaticBox(cat, bb))

			for yy := y; yy < y+h; yy++ {
				for xx := x; xx < x+w; xx++ {
					processed[yy*width+xx] = true
				}
			}
		}
	}
	return ids
}

// KinematicBox is a collider moved by velocity, such as a moving platform.
type KinematicBox struct {
	id    movement.ColliderID
	body  *cp.Body
	shape *cp.Shape
}

func (k *KinematicBox) ID() movement.ColliderID { return k.id }

func (k *KinematicBox) Position() cp.Vector { return k.body.Position() }

func (k *KinematicBox) SetVelocity(v cp.Vector) { k.body.SetVelocityVector(v) }

func (k *KinematicBox) Velocity() cp.Vector { return k.body.Velocity() }

// AddKinematicBox registers a box of the given size centered at center.
func (pw *PhysicsWorld) AddKinematicBox(cat movement.Category, center, size cp.Vector) *KinematicBox {
	body := cp.NewKinematicBody()
	body.SetPosition(center)
	pw.space.AddBody(body)
	shape := cp.NewBox(body, size.X, size.Y, 0)
	configureShape(shape, cat)
	pw.space.AddShape(shape)
	return &KinematicBox{id: pw.register(shape, cat).id, body: body, shape: shape}
}

// AddCharacter creates a character body centered at pos. Characters never
// collide with each other; their overlap is found through hurtbox queries.
func (pw *PhysicsWorld) AddCharacter(p movement.Polarity, pos, size cp.Vector) *CharacterBody {
	body := cp.NewBody(1, math.Inf(1))
	body.SetPosition(pos)
	pw.space.AddBody(body)

	shape := cp.NewBox(body, size.X, size.Y, 0)
	shape.SetFriction(0)
	shape.SetCollisionType(collisionTypeCharacter)
	shape.SetFilter(cp.ShapeFilter{
		Group:      cp.NO_GROUP,
		Categories: uint(p.HurtboxLayer()),
		Mask:       cp.ALL_CATEGORIES &^ uint(p.Other().HurtboxLayer()),
	})
	pw.space.AddShape(shape)

	e := pw.register(shape, p.HurtboxCategory())
	ch := &CharacterBody{
		id:       e.id,
		polarity: p,
		body:     body,
		shape:    shape,
		half:     size.Mult(0.5),
		hurtbox:  hurtbox{size: size},
	}
	pw.characters[e.id] = ch
	return ch
}

// OverlapBox returns the colliders on mask whose bounds overlap the box,
// ordered by id.
func (pw *PhysicsWorld) OverlapBox(center, size cp.Vector, mask movement.Layer) []movement.Collider {
	bb := cp.NewBBForExtents(center, size.X/2, size.Y/2)
	var out []movement.Collider
	pw.space.BBQuery(bb, queryFilter(mask), func(shape *cp.Shape, _ interface{}) {
		if e, ok := pw.byShape[shape]; ok {
			out = append(out, e.collider())
		}
	}, nil)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// OverlapCapsule reports whether the capsule overlaps a static or kinematic
// collider on mask, or the hurtbox of a character on mask.
func (pw *PhysicsWorld) OverlapCapsule(center, size cp.Vector, dir movement.CapsuleDirection, mask movement.Layer) bool {
	c := newCapsule(center, size, dir)
	hurtboxes := movement.LayerHurtboxBlue | movement.LayerHurtboxRed

	found := false
	if rest := mask &^ hurtboxes; rest != 0 {
		pw.space.BBQuery(c.bb(), queryFilter(rest), func(shape *cp.Shape, _ interface{}) {
			if found {
				return
			}
			if _, ok := pw.byShape[shape]; ok && c.overlapsBB(shape.BB()) {
				found = true
			}
		}, nil)
	}
	if found || mask&hurtboxes == 0 {
		return found
	}
	for _, ch := range pw.sortedCharacters() {
		if mask&ch.polarity.HurtboxLayer() != 0 && c.overlapsCapsule(ch.hurtboxCapsule()) {
			return true
		}
	}
	return false
}

// Raycast returns the nearest non-sensor collider on mask along dir.
func (pw *PhysicsWorld) Raycast(origin, dir cp.Vector, maxDistance float64, mask movement.Layer) (movement.Hit, bool) {
	if maxDistance <= 0 || dir == (cp.Vector{}) {
		return movement.Hit{}, false
	}
	end := origin.Add(dir.Normalize().Mult(maxDistance))
	info := pw.space.SegmentQueryFirst(origin, end, 0, queryFilter(mask))
	if info.Shape == nil {
		return movement.Hit{}, false
	}
	e, ok := pw.byShape[info.Shape]
	if !ok {
		return movement.Hit{}, false
	}
	return movement.Hit{
		Collider: e.collider(),
		Point:    info.Point,
		Distance: info.Alpha * maxDistance,
	}, true
}

// SetCollisionEnabled toggles contact resolution between two colliders.
// Queries are unaffected.
func (pw *PhysicsWorld) SetCollisionEnabled(a, b movement.ColliderID, enabled bool) {
	key := pairOf(a, b)
	if enabled {
		delete(pw.disabled, key)
		return
	}
	pw.disabled[key] = struct{}{}
}

// CollisionEnabled reports whether contacts between a and b are resolved.
func (pw *PhysicsWorld) CollisionEnabled(a, b movement.ColliderID) bool {
	_, off := pw.disabled[pairOf(a, b)]
	return !off
}

func queryFilter(mask movement.Layer) cp.ShapeFilter {
	return cp.ShapeFilter{Group: cp.NO_GROUP, Categories: cp.ALL_CATEGORIES, Mask: uint(mask)}
}

func (pw *PhysicsWorld) sortedCharacters() []*CharacterBody {
	out := make([]*CharacterBody, 0, len(pw.characters))
	for _, ch := range pw.characters {
		out = append(out, ch)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].id < out[j].id })
	return out
}

// entries resolves an arbiter whose first shape is a character.
func (pw *PhysicsWorld) entries(arb *cp.Arbiter) (*CharacterBody, *colliderEntry, bool) {
	a, b := arb.Shapes()
	ea, okA := pw.byShape[a]
	eb, okB := pw.byShape[b]
	if !okA || !okB {
		return nil, nil, false
	}
	ch, ok := pw.characters[ea.id]
	if !ok {
		return nil, nil, false
	}
	return ch, eb, true
}

func (pw *PhysicsWorld) push(kind ContactKind, ch *CharacterBody, e *colliderEntry) {
	pw.contacts = append(pw.contacts, Contact{Kind: kind, Character: ch.id, Collider: e.collider()})
}

// landsOn reports whether a character arriving at a one-way platform of its
// own polarity should be held up by it.
func (ch *CharacterBody) landsOn(platform cp.BB) bool {
	p := ch.polarity
	if p.ToLocal(ch.body.Velocity()).Y > 0 {
		return false
	}
	return p.LocalBottom(ch.Bounds()) >= p.LocalTop(platform)-oneWayTolerance
}

func (pw *PhysicsWorld) setupHandlers() {
	solid := pw.space.NewCollisionHandler(collisionTypeCharacter, collisionTypeSolid)
	solid.UserData = pw
	solid.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*PhysicsWorld)
		ch, e, ok := world.entries(arb)
		if !ok {
			return true
		}
		return world.CollisionEnabled(ch.id, e.id)
	}

	oneWay := pw.space.NewCollisionHandler(collisionTypeCharacter, collisionTypeOneWay)
	oneWay.UserData = pw
	oneWay.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*PhysicsWorld)
		ch, e, ok := world.entries(arb)
		if !ok {
			return true
		}
		if e.category != ch.polarity.OwnOneWay() {
			return arb.Ignore()
		}
		return true
	}
	oneWay.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*PhysicsWorld)
		ch, e, ok := world.entries(arb)
		if !ok {
			return true
		}
		key := pairOf(ch.id, e.id)
		_, on := world.touching[key]
		if !world.CollisionEnabled(ch.id, e.id) {
			if on {
				delete(world.touching, key)
				world.push(CollisionExit, ch, e)
			}
			return false
		}
		if on {
			return true
		}
		if !ch.landsOn(e.shape.BB()) {
			return false
		}
		world.touching[key] = struct{}{}
		world.push(CollisionEnter, ch, e)
		return true
	}
	oneWay.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world := userData.(*PhysicsWorld)
		ch, e, ok := world.entries(arb)
		if !ok {
			return
		}
		key := pairOf(ch.id, e.id)
		if _, on := world.touching[key]; !on {
			return
		}
		delete(world.touching, key)
		world.push(CollisionExit, ch, e)
	}

	sensor := pw.space.NewCollisionHandler(collisionTypeCharacter, collisionTypeSensor)
	sensor.UserData = pw
	sensor.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		world := userData.(*PhysicsWorld)
		if ch, e, ok := world.entries(arb); ok {
			world.push(TriggerEnter, ch, e)
		}
		return true
	}
	sensor.SeparateFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) {
		world := userData.(*PhysicsWorld)
		if ch, e, ok := world.entries(arb); ok {
			world.push(TriggerExit, ch, e)
		}
	}
}
