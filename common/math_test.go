package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMoveTowards(t *testing.T) {
	cases := []struct {
		name                      string
		current, target, maxDelta float64
		want                      float64
	}{
		{"step_up", 0, 5, 1, 1},
		{"step_down", 0, -5, 1, -1},
		{"no_overshoot", 4.5, 5, 1, 5},
		{"no_overshoot_negative", -4.5, -5, 1, -5},
		{"already_there", 3, 3, 1, 3},
		{"zero_delta", 1, 5, 0, 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.want, MoveTowards(c.current, c.target, c.maxDelta), 1e-9)
		})
	}
}

func TestSignAndClamp(t *testing.T) {
	assert.Equal(t, 1.0, Sign(0.2))
	assert.Equal(t, -1.0, Sign(-3))
	assert.Equal(t, 0.0, Sign(0))

	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 0.5, Clamp(0.5, 0, 1))
}
