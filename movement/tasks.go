package movement

import "sort"

const taskEpsilon = 1e-9

type timedTask struct {
	key ColliderID
	due float64
}

// TaskScheduler runs keyed countdowns on simulation time. A key has at most
// one pending task; scheduling it again while pending is a no-op, so repeated
// requests can never push a deadline out.
type TaskScheduler struct {
	now   float64
	tasks []timedTask
}

func NewTaskScheduler() *TaskScheduler {
	return &TaskScheduler{}
}

// Schedule arms a task for key that completes delay seconds from now. It
// returns false if key already had a pending task.
func (t *TaskScheduler) Schedule(key ColliderID, delay float64) bool {
	if t.Pending(key) {
		return false
	}
	t.tasks = append(t.tasks, timedTask{key: key, due: t.now + delay})
	sort.SliceStable(t.tasks, func(i, j int) bool { return t.tasks[i].due < t.tasks[j].due })
	return true
}

func (t *TaskScheduler) Pending(key ColliderID) bool {
	for _, task := range t.tasks {
		if task.key == key {
			return true
		}
	}
	return false
}

// Advance moves the clock forward and returns the keys whose tasks completed,
// earliest first.
func (t *TaskScheduler) Advance(dt float64) []ColliderID {
	t.now += dt
	n := 0
	for n < len(t.tasks) && t.tasks[n].due <= t.now+taskEpsilon {
		n++
	}
	if n == 0 {
		return nil
	}
	done := make([]ColliderID, n)
	for i := 0; i < n; i++ {
		done[i] = t.tasks[i].key
	}
	t.tasks = append(t.tasks[:0], t.tasks[n:]...)
	return done
}

// Cancel drops key's task without completing it.
func (t *TaskScheduler) Cancel(key ColliderID) bool {
	for i, task := range t.tasks {
		if task.key == key {
			t.tasks = append(t.tasks[:i], t.tasks[i+1:]...)
			return true
		}
	}
	return false
}

// CancelAll drops every task and returns their keys.
func (t *TaskScheduler) CancelAll() []ColliderID {
	keys := make([]ColliderID, 0, len(t.tasks))
	for _, task := range t.tasks {
		keys = append(keys, task.key)
	}
	t.tasks = t.tasks[:0]
	return keys
}

func (t *TaskScheduler) Len() int {
	return len(t.tasks)
}
