package levels

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGridIsYUp(t *testing.T) {
	lvl, err := Parse([]byte(`{"tiles": ["#R.r", "~^vH", "xB.b", "####"]}`))
	require.NoError(t, err)

	g := lvl.Grid
	assert.Equal(t, 4, g.Width)
	assert.Equal(t, 4, g.Height)
	assert.Equal(t, movement.CategoryGround, g.At(0, 0))
	assert.Equal(t, movement.CategoryHazard, g.At(0, 1))
	assert.Equal(t, movement.CategoryIce, g.At(0, 2))
	assert.Equal(t, movement.CategoryOneWayUp, g.At(1, 2))
	assert.Equal(t, movement.CategoryOneWayDown, g.At(2, 2))
	assert.Equal(t, movement.CategoryLadder, g.At(3, 2))
	assert.Equal(t, movement.CategoryGround, g.At(0, 3))
	assert.Equal(t, movement.CategoryNone, g.At(1, 3))
	assert.Equal(t, movement.CategoryNone, g.At(-1, 0))
	assert.Equal(t, movement.CategoryNone, g.At(4, 0))

	assert.Equal(t, Cell{X: 1, Y: 1}, g.Spawns[movement.Blue])
	assert.Equal(t, Cell{X: 1, Y: 3}, g.Spawns[movement.Red])
	assert.Equal(t, Cell{X: 3, Y: 1}, g.Checkpoints[movement.Blue])
	assert.Equal(t, Cell{X: 3, Y: 3}, g.Checkpoints[movement.Red])
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := map[string]string{
		"not_json":       `{`,
		"no_tiles":       `{"tiles": []}`,
		"ragged":         `{"tiles": ["BR", "###"]}`,
		"unknown_tile":   `{"tiles": ["BR?"]}`,
		"missing_spawn":  `{"tiles": ["B.."]}`,
		"bad_direction":  `{"tiles": ["BR"], "platforms": [{"width": 1, "height": 1, "direction": "sideways"}]}`,
		"empty_platform": `{"tiles": ["BR"], "platforms": [{"direction": "up"}]}`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(data))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestPlatformDefaults(t *testing.T) {
	lvl, err := Parse([]byte(`{"tiles": ["BR"], "platforms": [{"x": 1, "y": 2, "width": 2, "height": 0.5}]}`))
	require.NoError(t, err)
	require.Len(t, lvl.Platforms, 1)

	p := lvl.Platforms[0]
	assert.Equal(t, "right", p.Direction)
	assert.Equal(t, cp.Vector{X: 1}, p.Axis())
	assert.Equal(t, DefaultTargetDistance, p.TargetDistance)
	assert.Equal(t, float64(DefaultMaxSpeed), p.MaxSpeed)
	assert.Equal(t, float64(DefaultAcceleration), p.Acceleration)
	assert.Equal(t, DefaultPause, p.Pause)
}

func TestEmbeddedLevels(t *testing.T) {
	names := Names()
	require.Equal(t, []string{"level_01", "level_02"}, names)
	assert.Equal(t, "level_01", First())

	for i, name := range names {
		lvl, err := Load(name)
		require.NoError(t, err, name)
		assert.Equal(t, name, lvl.Name)
		assert.Equal(t, i+1, lvl.Index)
		assert.Len(t, lvl.Grid.Checkpoints, 2, name)

		byIndex, ok := ByIndex(i + 1)
		require.True(t, ok)
		assert.Equal(t, name, byIndex)
	}

	lvl, err := Load("levels/level_01.json")
	require.NoError(t, err)
	assert.Equal(t, "level_02", lvl.Next)

	_, err = Load("missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, ok := ByIndex(0)
	assert.False(t, ok)
}

func TestCellGeometry(t *testing.T) {
	c := Cell{X: 2, Y: 3}
	assert.Equal(t, cp.Vector{X: 2.5, Y: 3.5}, c.Center())
	assert.Equal(t, cp.BB{L: 2, B: 3, R: 3, T: 4}, c.Bounds())
}
