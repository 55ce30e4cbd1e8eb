package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/movement"
	"github.com/stretchr/testify/assert"
)

func TestCapsuleShape(t *testing.T) {
	c := newCapsule(cp.Vector{X: 1, Y: 2}, cp.Vector{X: 0.5, Y: 1.5}, movement.CapsuleVertical)
	assert.InDelta(t, 0.25, c.radius, 1e-12)
	assert.Equal(t, cp.Vector{X: 1, Y: 1.5}, c.a)
	assert.Equal(t, cp.Vector{X: 1, Y: 2.5}, c.b)
	assert.Equal(t, cp.BB{L: 0.75, B: 1.25, R: 1.25, T: 2.75}, c.bb())

	h := newCapsule(cp.Vector{}, cp.Vector{X: 2, Y: 1}, movement.CapsuleHorizontal)
	assert.Equal(t, cp.Vector{X: -0.5}, h.a)
	assert.Equal(t, cp.Vector{X: 0.5}, h.b)
}

func TestCapsuleOverlapsBB(t *testing.T) {
	c := newCapsule(cp.Vector{}, cp.Vector{X: 0.5, Y: 1.5}, movement.CapsuleVertical)
	cases := []struct {
		name string
		bb   cp.BB
		want bool
	}{
		{"contains_center", cp.BB{L: -0.1, B: -0.1, R: 0.1, T: 0.1}, true},
		{"beside_touching", cp.BB{L: 0.25, B: -1, R: 1, T: 1}, false},
		{"beside_overlapping", cp.BB{L: 0.2, B: -1, R: 1, T: 1}, true},
		{"below_feet", cp.BB{L: -1, B: -2, R: 1, T: -0.8}, false},
		{"corner_gap", cp.BB{L: 0.2, B: 0.7, R: 1, T: 1}, false},
		{"corner_hit", cp.BB{L: 0.1, B: 0.6, R: 1, T: 1}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.overlapsBB(tc.bb))
		})
	}
}

func TestCapsuleOverlapsCapsule(t *testing.T) {
	size := cp.Vector{X: 0.5, Y: 1.5}
	a := newCapsule(cp.Vector{}, size, movement.CapsuleVertical)
	assert.True(t, a.overlapsCapsule(newCapsule(cp.Vector{X: 0.4}, size, movement.CapsuleVertical)))
	assert.False(t, a.overlapsCapsule(newCapsule(cp.Vector{X: 0.6}, size, movement.CapsuleVertical)))
	assert.True(t, a.overlapsCapsule(newCapsule(cp.Vector{Y: 1.4}, size, movement.CapsuleVertical)))
	assert.False(t, a.overlapsCapsule(newCapsule(cp.Vector{Y: 1.6}, size, movement.CapsuleVertical)))

	cross := newCapsule(cp.Vector{}, cp.Vector{X: 3, Y: 0.2}, movement.CapsuleHorizontal)
	assert.True(t, a.overlapsCapsule(cross))
}
