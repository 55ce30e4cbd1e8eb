package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskSchedulerDoesNotExtendPendingTask(t *testing.T) {
	ts := NewTaskScheduler()
	require.True(t, ts.Schedule(7, 0.25))

	assert.Empty(t, ts.Advance(0.1))
	assert.False(t, ts.Schedule(7, 0.25), "rescheduling a pending key is a no-op")

	// due 0.25 after the first schedule, not after the retry
	assert.Empty(t, ts.Advance(0.1))
	assert.Equal(t, []ColliderID{7}, ts.Advance(0.05))
	assert.Zero(t, ts.Len())

	// once completed the key can be armed again
	assert.True(t, ts.Schedule(7, 0.25))
}

func TestTaskSchedulerOrdering(t *testing.T) {
	ts := NewTaskScheduler()
	ts.Schedule(1, 0.3)
	ts.Schedule(2, 0.1)
	ts.Schedule(3, 0.2)

	assert.Equal(t, []ColliderID{2, 3}, ts.Advance(0.2))
	assert.Equal(t, []ColliderID{1}, ts.Advance(0.2))
	assert.Nil(t, ts.Advance(1))
}

func TestTaskSchedulerCancel(t *testing.T) {
	ts := NewTaskScheduler()
	ts.Schedule(1, 0.3)
	ts.Schedule(2, 0.1)

	assert.True(t, ts.Cancel(2))
	assert.False(t, ts.Cancel(2))
	assert.False(t, ts.Pending(2))
	assert.Equal(t, []ColliderID{1}, ts.CancelAll())
	assert.Nil(t, ts.Advance(1))
}

func TestTaskSchedulerFixedStepWindow(t *testing.T) {
	ts := NewTaskScheduler()
	ts.Schedule(1, 0.25)
	ticks := 0
	for {
		ticks++
		if done := ts.Advance(1.0 / 60.0); len(done) > 0 {
			break
		}
		require.Less(t, ticks, 100)
	}
	assert.Equal(t, 15, ticks)
}
