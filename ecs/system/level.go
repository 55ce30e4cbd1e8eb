package system

import (
	"fmt"

	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/ecs/entity"
	"github.com/milk9111/polarities/levels"
	"github.com/milk9111/polarities/movement"
	"github.com/milk9111/polarities/prefabs"
	"github.com/milk9111/polarities/progress"
	"github.com/sirupsen/logrus"
)

type PersistenceMode int

const (
	PersistenceOnLevelChange PersistenceMode = iota
	PersistenceOnReload
)

// LevelSystem owns the level lifecycle. It builds the first level, rebuilds
// the current one when a RestartRequest appears and loads the next one on a
// LevelChangeRequest, recording progress as levels are completed.
type LevelSystem struct {
	levelName string
	prefabs   *prefabs.Set
	signals   movement.Signals
	progress  *progress.Store
	log       logrus.FieldLogger

	onRebuild   []func()
	initialized bool
	attempts    int
}

type LevelSystemConfig struct {
	Level   string
	Prefabs *prefabs.Set
	Signals movement.Signals
	// Progress is optional. When set, completed levels unlock the next one
	// and the store is saved.
	Progress *progress.Store
	Log      logrus.FieldLogger
}

func NewLevelSystem(cfg LevelSystemConfig) *LevelSystem {
	lg := cfg.Log
	if lg == nil {
		lg = common.DiscardLogger()
	}
	name := cfg.Level
	if name == "" {
		name = levels.First()
	}
	return &LevelSystem{
		levelName: name,
		prefabs:   cfg.Prefabs,
		signals:   cfg.Signals,
		progress:  cfg.Progress,
		log:       lg,
	}
}

// OnRebuild registers fn to run after every level build.
func (l *LevelSystem) OnRebuild(fn func()) {
	if fn != nil {
		l.onRebuild = append(l.onRebuild, fn)
	}
}

// SetPrefabs replaces the prefab set used from the next rebuild on. The
// running attempt keeps the stats it was built with.
func (l *LevelSystem) SetPrefabs(set *prefabs.Set) {
	if set != nil {
		l.prefabs = set
	}
}

func (l *LevelSystem) LevelName() string { return l.levelName }

// Attempts is the number of restarts since the current level was loaded.
func (l *LevelSystem) Attempts() int { return l.attempts }

// Start builds the initial level.
func (l *LevelSystem) Start(w *ecs.World) error {
	if err := l.reloadWorld(w, PersistenceOnReload); err != nil {
		return err
	}
	l.initialized = true
	return nil
}

func (l *LevelSystem) Update(w *ecs.World) {
	if l == nil || w == nil {
		return
	}

	if !l.initialized {
		if err := l.Start(w); err != nil {
			panic("level system: initial load failed: " + err.Error())
		}
		return
	}

	if _, req, ok := ecs.GetFirst(w, component.LevelChangeRequestComponent.Kind()); ok {
		target, completed := req.TargetLevel, req.Completed
		destroyAll(w, component.LevelChangeRequestComponent.Kind())
		destroyAll(w, component.RestartRequestComponent.Kind())
		l.changeLevel(w, target, completed)
		return
	}

	if _, ok := ecs.First(w, component.RestartRequestComponent.Kind()); ok {
		destroyAll(w, component.RestartRequestComponent.Kind())
		l.attempts++
		if err := l.reloadWorld(w, PersistenceOnReload); err != nil {
			panic("level system: reload failed: " + err.Error())
		}
	}
}

func (l *LevelSystem) changeLevel(w *ecs.World, target string, completed int) {
	if target == "" {
		target = levels.First()
		l.log.WithField("completed", completed).Info("all levels complete")
	} else if completed > 0 && l.progress != nil {
		if l.progress.Unlock(completed + 1) {
			if err := l.progress.Save(); err != nil {
				l.log.WithError(err).Error("save progress")
			}
		}
	}

	l.levelName = target
	l.attempts = 0
	if err := l.reloadWorld(w, PersistenceOnLevelChange); err != nil {
		panic("level system: level change failed: " + err.Error())
	}
}

func (l *LevelSystem) reloadWorld(w *ecs.World, mode PersistenceMode) error {
	if l.prefabs == nil {
		return fmt.Errorf("build level %q: %w: prefabs", l.levelName, movement.ErrMissingReference)
	}
	lvl, err := levels.Load(l.levelName)
	if err != nil {
		return fmt.Errorf("load level %q: %w", l.levelName, err)
	}

	pruneForReload(w, mode)
	if err := entity.BuildLevel(w, lvl, l.prefabs, l.signals, l.log); err != nil {
		return err
	}
	for _, fn := range l.onRebuild {
		fn()
	}
	return nil
}

func pruneForReload(w *ecs.World, mode PersistenceMode) {
	var toDestroy []ecs.Entity
	for _, e := range ecs.Entities(w) {
		persistent, ok := ecs.Get(w, e, component.PersistentComponent.Kind())
		if !ok || !shouldKeep(persistent, mode) {
			toDestroy = append(toDestroy, e)
		}
	}
	for _, e := range toDestroy {
		ecs.DestroyEntity(w, e)
	}
}

func shouldKeep(p *component.Persistent, mode PersistenceMode) bool {
	switch mode {
	case PersistenceOnLevelChange:
		return p.KeepOnLevelChange
	case PersistenceOnReload:
		return p.KeepOnReload
	}
	return false
}

func destroyAll[T any](w *ecs.World, kind component.ComponentKind[T]) {
	for _, e := range w.Query(kind) {
		ecs.DestroyEntity(w, e)
	}
}
