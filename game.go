package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/ecs/system"
	"github.com/milk9111/polarities/prefabs"
	"github.com/milk9111/polarities/progress"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/colornames"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type GameConfig struct {
	Level    string
	Debug    bool
	Watch    bool
	Progress *progress.Store
	Log      *logrus.Logger
}

type Game struct {
	world    *ecs.World
	pipeline *system.Pipeline
	prefabs  *prefabs.Set
	watcher  *prefabs.Watcher
	log      logrus.FieldLogger
	debug    bool
}

func NewGame(cfg GameConfig) (*Game, error) {
	set, err := prefabs.LoadSet()
	if err != nil {
		return nil, err
	}

	g := &Game{
		world:   ecs.NewWorld(),
		prefabs: set,
		log:     cfg.Log,
		debug:   cfg.Debug,
	}
	g.pipeline = system.NewPipeline(system.PipelineConfig{
		Level:    cfg.Level,
		Source:   newKeyboardInput(),
		Prefabs:  set,
		Progress: cfg.Progress,
		Log:      cfg.Log,
	})
	if err := g.pipeline.Level.Start(g.world); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher(cfg.Log, prefabs.Dir)
		if err != nil {
			cfg.Log.WithError(err).Warn("prefab hot reload disabled")
		} else {
			g.watcher = w
		}
	}
	return g, nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.reloadPrefabs()
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.requestRestart()
	}

	g.pipeline.Update(g.world)
	return nil
}

// reloadPrefabs applies changed prefab files. New stats take effect with a
// fresh attempt.
func (g *Game) reloadPrefabs() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Changes():
			if !ok {
				g.watcher = nil
				return
			}
			set, err := prefabs.LoadSet()
			if err != nil {
				g.log.WithError(err).WithField("file", name).Warn("prefab reload failed")
				continue
			}
			g.prefabs = set
			g.pipeline.Level.SetPrefabs(set)
			g.log.WithField("file", name).Info("prefabs reloaded")
			g.requestRestart()
		default:
			return
		}
	}
}

func (g *Game) requestRestart() {
	e := ecs.CreateEntity(g.world)
	_ = ecs.Add(g.world, e, component.RestartRequestComponent.Kind(), &component.RestartRequest{})
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Black)

	r := newRenderer(screen, g.world)
	r.drawLevel()
	r.drawCharacters(g.prefabs)

	if g.debug {
		r.drawPhysics()
		ebitenutil.DebugPrint(screen, g.debugText())
	}
}

func (g *Game) debugText() string {
	text := fmt.Sprintf("FPS: %.1f  tick: %d  level: %s  attempts: %d", ebiten.ActualFPS(), g.pipeline.Ticks(), g.pipeline.Level.LevelName(), g.pipeline.Level.Attempts())
	ecs.ForEach(g.world, component.CharacterComponent.Kind(), func(_ ecs.Entity, c *component.Character) {
		st := c.Controller.State()
		text += fmt.Sprintf("\n%s v=(%.2f, %.2f) jumping=%v ladder=%v", c.Polarity, st.Velocity.X, st.Velocity.Y, st.IsJumping, st.IsClimbing)
	})
	return text
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	return baseWidth, baseHeight
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}
