package movement

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPolarityMirror(t *testing.T) {
	v := cp.Vector{X: 2, Y: -3}
	assert.Equal(t, v, Blue.ToWorld(v))
	assert.Equal(t, cp.Vector{X: -2, Y: 3}, Red.ToWorld(v))
	assert.Equal(t, v, Red.ToLocal(Red.ToWorld(v)))

	assert.Equal(t, CategoryOneWayUp, Blue.OwnOneWay())
	assert.Equal(t, CategoryOneWayDown, Blue.ForeignOneWay())
	assert.Equal(t, CategoryOneWayDown, Red.OwnOneWay())
	assert.Equal(t, Blue, Red.Other())
	assert.Equal(t, LayerHurtboxRed, Red.HurtboxLayer())
	assert.Equal(t, cp.Vector{X: 0, Y: 1}, Red.DefaultSnapDirection())
}

func TestPolarityLocalEdges(t *testing.T) {
	bb := cp.BB{L: -1, B: 2, R: 1, T: 5}
	assert.Equal(t, 2.0, Blue.LocalBottom(bb))
	assert.Equal(t, 5.0, Blue.LocalTop(bb))
	assert.Equal(t, -5.0, Red.LocalBottom(bb))
	assert.Equal(t, -2.0, Red.LocalTop(bb))
}

func TestStatsDecodeKeepsDefaults(t *testing.T) {
	src := []byte(`
normalSpeed: 6
hurtboxDirection: horizontal
groundProbeSize: {x: 0.5, y: 0.2}
`)
	stats := DefaultStats()
	require.NoError(t, yaml.Unmarshal(src, &stats))
	assert.Equal(t, 6.0, stats.NormalSpeed)
	assert.Equal(t, CapsuleHorizontal, stats.HurtboxDirection)
	assert.Equal(t, cp.Vector{X: 0.5, Y: 0.2}, stats.GroundProbeSize)
	assert.Equal(t, 17.0, stats.JumpForce)
}

func TestPolarityDecode(t *testing.T) {
	var p Polarity
	require.NoError(t, yaml.Unmarshal([]byte(`red`), &p))
	assert.Equal(t, Red, p)
	assert.ErrorIs(t, yaml.Unmarshal([]byte(`green`), &p), ErrInvalidPolarity)
}

func TestParseCategory(t *testing.T) {
	c, err := ParseCategory("one_way_down")
	require.NoError(t, err)
	assert.Equal(t, CategoryOneWayDown, c)
	_, err = ParseCategory("lava")
	assert.Error(t, err)
}
