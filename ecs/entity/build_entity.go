package entity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/movement"
	"github.com/milk9111/polarities/prefabs"
	"github.com/sirupsen/logrus"
)

var errNoBody = errors.New("requires physics_body")

// CharacterOptions carries what a character prefab cannot know: where it
// spawns and the level collaborators its controller talks to.
type CharacterOptions struct {
	// Spawn is the center of the spawn cell. The body is placed with its
	// feet on the cell's local floor.
	Spawn   cp.Vector
	Stats   movement.Stats
	Physics *ecs.PhysicsWorld
	Signals movement.Signals
	Log     logrus.FieldLogger
}

type buildContext struct {
	Prefab   string
	Polarity movement.Polarity
	CharacterOptions

	body *ecs.CharacterBody
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":      addPlayerTag,
	"physics_body":    addPhysicsBody,
	"transform":       addTransform,
	"collision_layer": addCollisionLayer,
	"character":       addCharacter,
}

var componentBuildOrder = []string{
	"player_tag",
	"physics_body",
	"transform",
	"collision_layer",
	"character",
}

// BuildCharacter creates a character entity from its prefab.
func BuildCharacter(w *ecs.World, spec prefabs.CharacterSpec, opts CharacterOptions) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build character: world is nil")
	}
	if opts.Physics == nil {
		return 0, fmt.Errorf("build character %q: %w: physics world", spec.Name, movement.ErrMissingReference)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build character: prefab %q does not define components", spec.Name)
	}
	if opts.Log == nil {
		opts.Log = common.DiscardLogger()
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{Prefab: spec.Name, Polarity: spec.Polarity, CharacterOptions: opts}

	names := make([]string, 0, len(spec.Components))
	for _, name := range componentBuildOrder {
		if _, ok := spec.Components[name]; ok {
			names = append(names, name)
		}
	}
	var extra []string
	for name := range spec.Components {
		if _, ok := componentRegistry[name]; !ok {
			extra = append(extra, name)
		}
	}
	if len(extra) > 0 {
		sort.Strings(extra)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build character: %q: no builder for component %q", spec.Name, extra[0])
	}

	for _, name := range names {
		if err := componentRegistry[name](w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build character: %q: add %q: %w", spec.Name, name, err)
		}
	}
	if !ecs.Has(w, e, component.CharacterComponent.Kind()) {
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build character: %q: no character component", spec.Name)
	}
	return e, nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PlayerTagComponent.Kind(), &component.PlayerTag{})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("physics body size %gx%g", spec.Width, spec.Height)
	}

	size := cp.Vector{X: spec.Width, Y: spec.Height}
	ctx.Spawn = ctx.Spawn.Add(ctx.Polarity.ToWorld(cp.Vector{Y: size.Y/2 - 0.5}))
	ctx.body = ctx.Physics.AddCharacter(ctx.Polarity, ctx.Spawn, size)
	return ecs.Add(w, e, component.PhysicsBodyComponent.Kind(), &component.PhysicsBody{Body: ctx.body, Size: size})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:      ctx.Spawn.X,
		Y:      ctx.Spawn.Y,
		ScaleX: spec.ScaleX,
		ScaleY: spec.ScaleY,
	})
}

func addCollisionLayer(w *ecs.World, e ecs.Entity, _ any, ctx *buildContext) error {
	return ecs.Add(w, e, component.CollisionLayerComponent.Kind(), &component.CollisionLayer{
		Layer: ctx.Polarity.HurtboxLayer(),
		Mask:  movement.LayerAll &^ ctx.Polarity.Other().HurtboxLayer(),
	})
}

type characterSpec = prefabs.CharacterComponentSpec

func addCharacter(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error {
	if ctx.body == nil {
		return errNoBody
	}
	spec, err := prefabs.DecodeComponentSpec[characterSpec](raw)
	if err != nil {
		return fmt.Errorf("decode character spec: %w", err)
	}

	stats := ctx.Stats
	if err := prefabs.DecodeComponentSpecInto(spec.Stats, &stats); err != nil {
		return fmt.Errorf("decode stats overrides: %w", err)
	}
	var snap cp.Vector
	if spec.SnapDirection != nil {
		snap = cp.Vector{X: spec.SnapDirection.X, Y: spec.SnapDirection.Y}
	}

	ctrl, err := movement.NewController(movement.Config{
		Polarity:      ctx.Polarity,
		Stats:         &stats,
		Rig:           spec.Rig,
		World:         ctx.Physics,
		Body:          ctx.body,
		Signals:       ctx.Signals,
		Log:           ctx.Log.WithField("character", ctx.Prefab),
		SnapDirection: snap,
	})
	if err != nil {
		return err
	}

	offset := spec.Rig.Hurtbox.Add(stats.HurtboxCenter)
	ctx.body.SetHurtbox(ctx.Polarity.ToWorld(offset), stats.HurtboxSize, stats.HurtboxDirection)

	return ecs.Add(w, e, component.CharacterComponent.Kind(), &component.Character{
		Polarity:   ctx.Polarity,
		Controller: ctrl,
		Spawn:      ctx.Spawn,
	})
}
