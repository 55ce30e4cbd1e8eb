package system

import (
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/movement"
	"github.com/milk9111/polarities/prefabs"
	"github.com/milk9111/polarities/progress"
	"github.com/sirupsen/logrus"
)

// Pipeline is the per-tick system order shared by the game window and the
// headless simulator.
type Pipeline struct {
	*ecs.Scheduler

	Input  *InputSystem
	Hazard *HazardSystem
	Level  *LevelSystem
}

type PipelineConfig struct {
	Level    string
	Source   InputSource
	Prefabs  *prefabs.Set
	Progress *progress.Store
	Log      logrus.FieldLogger
}

func NewPipeline(cfg PipelineConfig) *Pipeline {
	hazards := NewHazardSystem(cfg.Log)
	input := NewInputSystem(cfg.Source)
	level := NewLevelSystem(LevelSystemConfig{
		Level:    cfg.Level,
		Prefabs:  cfg.Prefabs,
		Signals:  hazards,
		Progress: cfg.Progress,
		Log:      cfg.Log,
	})
	level.OnRebuild(input.Reset)

	return &Pipeline{
		Scheduler: ecs.NewScheduler(
			input,
			NewMovementSystem(MovementInput),
			NewMovingPlatformSystem(),
			NewMovementSystem(MovementFixed),
			NewPhysicsSystem(),
			NewCheckpointSystem(cfg.Log),
			hazards,
			level,
		),
		Input:  input,
		Hazard: hazards,
		Level:  level,
	}
}

var _ movement.Signals = (*HazardSystem)(nil)
