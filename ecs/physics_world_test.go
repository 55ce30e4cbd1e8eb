package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var characterSize = cp.Vector{X: 0.5, Y: 1.375}

func driveFor(pw *PhysicsWorld, ch *CharacterBody, v cp.Vector, steps int) []Contact {
	var contacts []Contact
	for i := 0; i < steps; i++ {
		ch.SetVelocity(v)
		pw.Step(common.FixedStep)
		contacts = append(contacts, pw.DrainContacts()...)
	}
	return contacts
}

func kindsFor(contacts []Contact, id movement.ColliderID) []ContactKind {
	var out []ContactKind
	for _, c := range contacts {
		if c.Collider.ID == id {
			out = append(out, c.Kind)
		}
	}
	return out
}

func TestOverlapBoxFiltersByLayer(t *testing.T) {
	pw := NewPhysicsWorld()
	ground := pw.AddStaticBox(movement.CategoryGround, cp.BB{L: -2, B: -1, R: 2, T: 0})
	ice := pw.AddStaticBox(movement.CategoryIce, cp.BB{L: 2, B: -1, R: 4, T: 0})
	ladder := pw.AddStaticBox(movement.CategoryLadder, cp.BB{L: 1, B: 0, R: 2, T: 3})

	got := pw.OverlapBox(cp.Vector{X: 2, Y: 0}, cp.Vector{X: 0.4, Y: 0.1}, movement.LayerGround)
	require.Len(t, got, 2)
	assert.Equal(t, ground, got[0].ID)
	assert.Equal(t, movement.CategoryGround, got[0].Category)
	assert.Equal(t, ice, got[1].ID)
	assert.Equal(t, movement.CategoryIce, got[1].Category)
	assert.Equal(t, cp.BB{L: 2, B: -1, R: 4, T: 0}, got[1].Bounds)

	got = pw.OverlapBox(cp.Vector{X: 2, Y: 0}, cp.Vector{X: 0.4, Y: 0.1}, movement.LayerLadder)
	require.Len(t, got, 1)
	assert.Equal(t, ladder, got[0].ID)

	assert.Empty(t, pw.OverlapBox(cp.Vector{X: 0, Y: 5}, cp.Vector{X: 1, Y: 1}, movement.LayerAll))
}

func TestRaycastNearestSolid(t *testing.T) {
	pw := NewPhysicsWorld()
	pw.AddStaticBox(movement.CategoryGround, cp.BB{L: -5, B: -3, R: 5, T: -2})
	platform := pw.AddStaticBox(movement.CategoryOneWayUp, cp.BB{L: -1, B: -0.5, R: 1, T: 0})
	pw.AddStaticBox(movement.CategoryHazard, cp.BB{L: -1, B: 0.5, R: 1, T: 1})

	hit, ok := pw.Raycast(cp.Vector{X: 0, Y: 2}, cp.Vector{X: 0, Y: -1}, 5, movement.LayerAll)
	require.True(t, ok)
	assert.Equal(t, platform, hit.Collider.ID)
	assert.Equal(t, movement.CategoryOneWayUp, hit.Collider.Category)
	assert.InDelta(t, 2, hit.Distance, 1e-6)
	assert.InDelta(t, 0, hit.Point.Y, 1e-6)

	_, ok = pw.Raycast(cp.Vector{X: 0, Y: 2}, cp.Vector{X: 0, Y: -1}, 1.5, movement.LayerAll)
	assert.False(t, ok)

	_, ok = pw.Raycast(cp.Vector{X: 0, Y: 2}, cp.Vector{X: 0, Y: -1}, 5, movement.LayerLadder)
	assert.False(t, ok)
}

func TestOverlapCapsule(t *testing.T) {
	pw := NewPhysicsWorld()
	pw.AddStaticBox(movement.CategoryHazard, cp.BB{L: 1, B: -1, R: 2, T: 1})

	assert.True(t, pw.OverlapCapsule(cp.Vector{X: 0.9}, characterSize, movement.CapsuleVertical, movement.LayerHazard))
	assert.False(t, pw.OverlapCapsule(cp.Vector{X: 0.5}, characterSize, movement.CapsuleVertical, movement.LayerHazard))
	assert.False(t, pw.OverlapCapsule(cp.Vector{X: 0.9}, characterSize, movement.CapsuleVertical, movement.LayerGround))

	blue := pw.AddCharacter(movement.Blue, cp.Vector{X: -5}, characterSize)
	blue.SetHurtbox(cp.Vector{}, characterSize, movement.CapsuleVertical)
	red := pw.AddCharacter(movement.Red, cp.Vector{X: -4.6}, characterSize)
	red.SetHurtbox(cp.Vector{}, characterSize, movement.CapsuleVertical)

	assert.True(t, pw.OverlapCapsule(cp.Vector{X: -5}, characterSize, movement.CapsuleVertical, movement.LayerHurtboxRed))
	assert.True(t, pw.OverlapCapsule(cp.Vector{X: -4.6}, characterSize, movement.CapsuleVertical, movement.LayerHurtboxBlue))
	assert.False(t, pw.OverlapCapsule(cp.Vector{X: -5.6}, characterSize, movement.CapsuleVertical, movement.LayerHurtboxRed))
}

func TestSetCollisionEnabledIsSymmetric(t *testing.T) {
	pw := NewPhysicsWorld()
	pw.SetCollisionEnabled(3, 7, false)
	assert.False(t, pw.CollisionEnabled(7, 3))
	pw.SetCollisionEnabled(7, 3, true)
	assert.True(t, pw.CollisionEnabled(3, 7))
}

func TestAddTilesMergesRuns(t *testing.T) {
	g, i, n := movement.CategoryGround, movement.CategoryIce, movement.CategoryNone
	pw := NewPhysicsWorld()
	ids := pw.AddTiles(4, 2, []movement.Category{
		g, g, g, i,
		g, g, n, n,
	}, 1)
	require.Len(t, ids, 3)

	want := []movement.Collider{
		{ID: ids[0], Category: g, Bounds: cp.BB{L: 0, B: 0, R: 3, T: 1}},
		{ID: ids[1], Category: i, Bounds: cp.BB{L: 3, B: 0, R: 4, T: 1}},
		{ID: ids[2], Category: g, Bounds: cp.BB{L: 0, B: 1, R: 2, T: 2}},
	}
	for _, w := range want {
		got, ok := pw.Collider(w.ID)
		require.True(t, ok)
		assert.Equal(t, w, got)
	}

	assert.Nil(t, pw.AddTiles(2, 2, []movement.Category{g}, 1))
}

func TestCharacterRestsOnGroundUntilDisabled(t *testing.T) {
	pw := NewPhysicsWorld()
	floor := pw.AddStaticBox(movement.CategoryGround, cp.BB{L: -5, B: -1, R: 5, T: 0})
	ch := pw.AddCharacter(movement.Blue, cp.Vector{Y: 2}, characterSize)

	driveFor(pw, ch, cp.Vector{Y: -5}, 60)
	assert.InDelta(t, 0, ch.Bounds().B, 0.05)

	pw.SetCollisionEnabled(ch.ID(), floor, false)
	driveFor(pw, ch, cp.Vector{Y: -5}, 30)
	assert.Less(t, ch.Bounds().B, -1.0)
}

func TestOneWayPlatformRules(t *testing.T) {
	platform := cp.BB{L: -2, B: 0, R: 2, T: 0.5}

	t.Run("own_lands_from_above", func(t *testing.T) {
		pw := NewPhysicsWorld()
		id := pw.AddStaticBox(movement.CategoryOneWayUp, platform)
		ch := pw.AddCharacter(movement.Blue, cp.Vector{Y: 2}, characterSize)

		contacts := driveFor(pw, ch, cp.Vector{Y: -5}, 60)
		assert.InDelta(t, 0.5, ch.Bounds().B, 0.05)
		assert.Equal(t, []ContactKind{CollisionEnter}, kindsFor(contacts, id))

		contacts = driveFor(pw, ch, cp.Vector{X: 10}, 30)
		assert.Equal(t, []ContactKind{CollisionExit}, kindsFor(contacts, id))
	})

	t.Run("own_passes_from_below", func(t *testing.T) {
		pw := NewPhysicsWorld()
		id := pw.AddStaticBox(movement.CategoryOneWayUp, platform)
		ch := pw.AddCharacter(movement.Blue, cp.Vector{Y: -2}, characterSize)

		contacts := driveFor(pw, ch, cp.Vector{Y: 5}, 60)
		assert.Greater(t, ch.Position().Y, 2.5)
		assert.Empty(t, kindsFor(contacts, id))
	})

	t.Run("foreign_is_ignored", func(t *testing.T) {
		pw := NewPhysicsWorld()
		id := pw.AddStaticBox(movement.CategoryOneWayUp, platform)
		ch := pw.AddCharacter(movement.Red, cp.Vector{Y: 2}, characterSize)

		contacts := driveFor(pw, ch, cp.Vector{Y: -5}, 60)
		assert.Less(t, ch.Position().Y, -2.0)
		assert.Empty(t, kindsFor(contacts, id))
	})

	t.Run("red_lands_on_underside", func(t *testing.T) {
		pw := NewPhysicsWorld()
		id := pw.AddStaticBox(movement.CategoryOneWayDown, platform)
		ch := pw.AddCharacter(movement.Red, cp.Vector{Y: -2}, characterSize)

		contacts := driveFor(pw, ch, cp.Vector{Y: 5}, 60)
		assert.InDelta(t, 0, ch.Bounds().T, 0.05)
		assert.Equal(t, []ContactKind{CollisionEnter}, kindsFor(contacts, id))
	})
}

func TestSensorTriggers(t *testing.T) {
	pw := NewPhysicsWorld()
	ladder := pw.AddStaticBox(movement.CategoryLadder, cp.BB{L: -0.5, B: -1, R: 0.5, T: 1})
	ch := pw.AddCharacter(movement.Blue, cp.Vector{X: -3}, characterSize)

	contacts := driveFor(pw, ch, cp.Vector{X: 5}, 60)
	assert.Equal(t, []ContactKind{TriggerEnter, TriggerExit}, kindsFor(contacts, ladder))
	for _, c := range contacts {
		assert.Equal(t, ch.ID(), c.Character)
	}
	assert.InDelta(t, 2, ch.Position().X, 1e-6)
}

func TestCharactersDoNotCollide(t *testing.T) {
	pw := NewPhysicsWorld()
	blue := pw.AddCharacter(movement.Blue, cp.Vector{X: -2}, characterSize)
	red := pw.AddCharacter(movement.Red, cp.Vector{X: 2}, characterSize)

	for i := 0; i < 60; i++ {
		blue.SetVelocity(cp.Vector{X: 4})
		red.SetVelocity(cp.Vector{X: -4})
		pw.Step(common.FixedStep)
	}
	assert.InDelta(t, 2, blue.Position().X, 1e-6)
	assert.InDelta(t, -2, red.Position().X, 1e-6)
}
