package system

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/movement"
	"github.com/milk9111/polarities/prefabs"
	"github.com/milk9111/polarities/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLevelSystem(t *testing.T, level string, store *progress.Store) *LevelSystem {
	t.Helper()
	set, err := prefabs.LoadSet()
	require.NoError(t, err)
	return NewLevelSystem(LevelSystemConfig{
		Level:    level,
		Prefabs:  set,
		Signals:  NewHazardSystem(nil),
		Progress: store,
	})
}

func characterEntities(w *ecs.World) []ecs.Entity {
	return w.Query(component.CharacterComponent.Kind())
}

func TestLevelSystemRestartRebuildsCharacters(t *testing.T) {
	w := ecs.NewWorld()
	levelSys := newLevelSystem(t, "level_01", nil)
	require.NoError(t, levelSys.Start(w))

	before := characterEntities(w)
	require.Len(t, before, 2)
	inputBefore, ok := ecs.First(w, component.InputComponent.Kind())
	require.True(t, ok)
	pwBefore := w.PhysicsWorld()

	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.RestartRequestComponent.Kind(), &component.RestartRequest{Polarity: movement.Blue, Cause: movement.RestartHazard}))

	rebuilt := 0
	levelSys.OnRebuild(func() { rebuilt++ })
	levelSys.Update(w)

	assert.Equal(t, 1, rebuilt)
	assert.Equal(t, 1, levelSys.Attempts())
	assert.Equal(t, "level_01", levelSys.LevelName())
	assert.Empty(t, w.Query(component.RestartRequestComponent.Kind()))
	assert.NotSame(t, pwBefore, w.PhysicsWorld())

	after := characterEntities(w)
	require.Len(t, after, 2)
	for _, old := range before {
		assert.False(t, w.IsAlive(old))
	}
	inputAfter, ok := ecs.First(w, component.InputComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, inputBefore, inputAfter)

	for _, e := range after {
		ch, _ := ecs.Get(w, e, component.CharacterComponent.Kind())
		st := ch.Controller.State()
		assert.Equal(t, cp.Vector{}, st.Velocity)
		assert.True(t, st.FacingRight)
		assert.False(t, ch.Controller.Ended())
	}
}

func TestLevelSystemAdvancesAndSavesProgress(t *testing.T) {
	store, err := progress.Open("")
	require.NoError(t, err)

	w := ecs.NewWorld()
	levelSys := newLevelSystem(t, "level_01", store)
	levelSys.Update(w)
	require.Len(t, characterEntities(w), 2)

	e := ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{TargetLevel: "level_02", Completed: 1}))
	levelSys.Update(w)

	assert.Equal(t, "level_02", levelSys.LevelName())
	assert.Equal(t, 2, store.LevelCount())
	assert.Empty(t, w.Query(component.LevelChangeRequestComponent.Kind()))

	_, info, ok := ecs.GetFirst(w, component.LevelInfoComponent.Kind())
	require.True(t, ok)
	assert.Equal(t, "level_02", info.Name)
	assert.Len(t, w.Query(component.LevelInfoComponent.Kind()), 1)

	e = ecs.CreateEntity(w)
	require.NoError(t, ecs.Add(w, e, component.LevelChangeRequestComponent.Kind(), &component.LevelChangeRequest{Completed: 2}))
	levelSys.Update(w)
	assert.Equal(t, "level_01", levelSys.LevelName())
	assert.Equal(t, 2, store.LevelCount())
}

func TestLevelSystemUnknownLevel(t *testing.T) {
	levelSys := newLevelSystem(t, "missing", nil)
	assert.Error(t, levelSys.Start(ecs.NewWorld()))
}

// Both characters fall onto their own floors and stay there with no input.
func TestPipelineSettlesCharacters(t *testing.T) {
	set, err := prefabs.LoadSet()
	require.NoError(t, err)

	w := ecs.NewWorld()
	p := NewPipeline(PipelineConfig{
		Level:   "level_01",
		Source:  InputSourceFunc(func() movement.RawInput { return movement.RawInput{} }),
		Prefabs: set,
		Log:     common.DiscardLogger(),
	})
	require.NoError(t, p.Level.Start(w))
	for i := 0; i < 180; i++ {
		p.Update(w)
	}
	assert.Zero(t, p.Level.Attempts())

	ecs.ForEach(w, component.CharacterComponent.Kind(), func(_ ecs.Entity, c *component.Character) {
		body := c.Controller.Body()
		floor := c.Polarity.LocalBottom(body.Bounds())
		switch c.Polarity {
		case movement.Blue:
			assert.InDelta(t, 1, floor, 0.1)
		case movement.Red:
			assert.InDelta(t, -9, floor, 0.1)
		}
		assert.Equal(t, c.Controller.Stats().WeightForce, c.Controller.State().Velocity.Y, c.Polarity.String())
	})
}
