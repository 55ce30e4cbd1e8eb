package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/movement"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func useDir(t *testing.T, dir string) {
	t.Helper()
	prev := Dir
	Dir = dir
	t.Cleanup(func() { Dir = prev })
}

func TestEmbeddedStatsMatchDefaults(t *testing.T) {
	useDir(t, t.TempDir())
	stats, err := LoadStats(StatsFile)
	require.NoError(t, err)
	assert.Equal(t, movement.DefaultStats(), stats)
}

func TestDiskOverrideKeepsOmittedDefaults(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, StatsFile), []byte("jumpForce: 20\n"), 0o644))

	stats, err := LoadStats(StatsFile)
	require.NoError(t, err)
	assert.Equal(t, 20.0, stats.JumpForce)
	assert.Equal(t, movement.DefaultStats().GravityAccel, stats.GravityAccel)
}

func TestLoadSet(t *testing.T) {
	useDir(t, t.TempDir())
	set, err := LoadSet()
	require.NoError(t, err)
	assert.Equal(t, movement.Blue, set.Character(movement.Blue).Polarity)
	assert.Equal(t, movement.Red, set.Character(movement.Red).Polarity)
	require.NotNil(t, set.Blue.Color)

	body, err := DecodeComponentSpec[PhysicsBodyComponentSpec](set.Red.Components["physics_body"])
	require.NoError(t, err)
	assert.Equal(t, PhysicsBodyComponentSpec{Width: 0.5, Height: 1.375}, body)

	ch, err := DecodeComponentSpec[CharacterComponentSpec](set.Blue.Components["character"])
	require.NoError(t, err)
	require.NotNil(t, ch.Rig.GroundCheck)
	assert.Equal(t, -0.7, ch.Rig.GroundCheck.Y)
}

func TestCharacterSpecRejectsUnknownPolarity(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "green.yaml"), []byte("name: green\npolarity: green\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "none.yaml"), []byte("name: none\n"), 0o644))

	_, err := LoadCharacterSpec("green.yaml")
	assert.ErrorIs(t, err, movement.ErrInvalidPolarity)
	_, err = LoadCharacterSpec("none.yaml")
	assert.ErrorIs(t, err, movement.ErrInvalidPolarity)
}

func TestSetRejectsSwappedPolarities(t *testing.T) {
	dir := t.TempDir()
	useDir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, BlueFile), []byte("name: blue\npolarity: red\n"), 0o644))

	_, err := LoadSet()
	assert.ErrorIs(t, err, movement.ErrInvalidPolarity)
}

func TestDecodeComponentSpecIntoOverlays(t *testing.T) {
	stats := movement.DefaultStats()
	require.NoError(t, DecodeComponentSpecInto(map[string]any{"normalSpeed": 7.5}, &stats))
	assert.Equal(t, 7.5, stats.NormalSpeed)
	assert.Equal(t, movement.DefaultStats().JumpForce, stats.JumpForce)

	require.NoError(t, DecodeComponentSpecInto[movement.Stats](nil, &stats))
	assert.Equal(t, 7.5, stats.NormalSpeed)
}

func TestYAMLColor(t *testing.T) {
	cases := []struct {
		in      string
		wantErr bool
	}{
		{`"#ff0000"`, false},
		{`"00ff0080"`, false},
		{`"#fff"`, true},
		{`[1, 2]`, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			var c YAMLColor
			err := yamlUnmarshal(tc.in, &c)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, c.Color)
		})
	}
}

func TestWatcherReportsChangedSpec(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(common.DiscardLogger(), dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, StatsFile), []byte("jumpForce: 18\n"), 0o644))

	select {
	case name := <-w.Changes():
		assert.Equal(t, StatsFile, name)
	case <-time.After(5 * time.Second):
		t.Fatal("no change reported")
	}
}
