package entity

import (
	"fmt"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/levels"
	"github.com/milk9111/polarities/movement"
	"github.com/milk9111/polarities/prefabs"
	"github.com/sirupsen/logrus"
)

// BuildLevel gives w a fresh physics world and populates it from lvl: tile
// colliders, checkpoints, moving platforms, the level info singleton and
// both characters. Blue is always created before red.
func BuildLevel(w *ecs.World, lvl *levels.Level, set *prefabs.Set, signals movement.Signals, log logrus.FieldLogger) error {
	if w == nil || lvl == nil || set == nil {
		return fmt.Errorf("build level: %w", movement.ErrMissingReference)
	}
	if log == nil {
		log = common.DiscardLogger()
	}

	pw := ecs.NewPhysicsWorld()
	w.SetPhysicsWorld(pw)

	g := lvl.Grid
	pw.AddBounds(float64(g.Width), float64(g.Height))
	for _, id := range pw.AddTiles(g.Width, g.Height, g.Tiles, 1) {
		addStaticCollider(w, pw, id)
	}

	for _, p := range []movement.Polarity{movement.Blue, movement.Red} {
		cell, ok := g.Checkpoints[p]
		if !ok {
			continue
		}
		id := pw.AddStaticBox(p.CheckpointCategory(), cell.Bounds())
		e := addStaticCollider(w, pw, id)
		if err := ecs.Add(w, e, component.CheckpointComponent.Kind(), &component.Checkpoint{Polarity: p, Collider: id}); err != nil {
			return err
		}
	}

	for _, plat := range lvl.Platforms {
		if err := addMovingPlatform(w, pw, plat); err != nil {
			return err
		}
	}

	info := ecs.CreateEntity(w)
	if err := ecs.Add(w, info, component.LevelInfoComponent.Kind(), &component.LevelInfo{
		Name:   lvl.Name,
		Index:  lvl.Index,
		Next:   lvl.Next,
		Width:  float64(g.Width),
		Height: float64(g.Height),
	}); err != nil {
		return err
	}

	if err := EnsureInput(w); err != nil {
		return err
	}

	for _, p := range []movement.Polarity{movement.Blue, movement.Red} {
		cell := g.Spawns[p]
		if _, err := BuildCharacter(w, set.Character(p), CharacterOptions{
			Spawn:   cell.Center(),
			Stats:   set.Stats,
			Physics: pw,
			Signals: signals,
			Log:     log,
		}); err != nil {
			return fmt.Errorf("build level %s: %w", lvl.Name, err)
		}
	}

	log.WithFields(logrus.Fields{
		"level":  lvl.Name,
		"width":  g.Width,
		"height": g.Height,
	}).Info("level built")
	return nil
}

func addStaticCollider(w *ecs.World, pw *ecs.PhysicsWorld, id movement.ColliderID) ecs.Entity {
	col, _ := pw.Collider(id)
	e := ecs.CreateEntity(w)
	_ = ecs.Add(w, e, component.StaticColliderComponent.Kind(), &component.StaticCollider{Collider: col})
	_ = ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Layer: col.Category.Layer(),
		Mask:  movement.LayerAll,
	})
	return e
}

func addMovingPlatform(w *ecs.World, pw *ecs.PhysicsWorld, p levels.Platform) error {
	size := cp.Vector{X: p.Width, Y: p.Height}
	center := cp.Vector{X: p.X + p.Width/2, Y: p.Y + p.Height/2}
	box := pw.AddKinematicBox(movement.CategoryGround, center, size)

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X: center.X, Y: center.Y, ScaleX: 1, ScaleY: 1,
	}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.MovingPlatformComponent.Kind(), &component.MovingPlatform{
		Body:           box,
		Size:           size,
		Start:          center,
		Direction:      p.Axis(),
		TargetDistance: p.TargetDistance,
		MaxSpeed:       p.MaxSpeed,
		Acceleration:   p.Acceleration,
		Pause:          p.Pause,
	})
}

// EnsureInput creates the shared input entity if the world has none. It
// survives level rebuilds.
func EnsureInput(w *ecs.World) error {
	if _, ok := ecs.First(w, component.InputComponent.Kind()); ok {
		return nil
	}
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return err
	}
	return ecs.Add(w, e, component.PersistentComponent.Kind(), &component.Persistent{
		ID:                "input",
		KeepOnLevelChange: true,
		KeepOnReload:      true,
	})
}
