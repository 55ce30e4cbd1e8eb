package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/ecs"
	"github.com/milk9111/polarities/ecs/component"
	"github.com/milk9111/polarities/ecs/system"
	"github.com/milk9111/polarities/levels"
	"github.com/milk9111/polarities/movement"
	"github.com/milk9111/polarities/prefabs"
	"github.com/sirupsen/logrus"
)

type config struct {
	Level  string
	Ticks  int
	Script script
	Log    logrus.FieldLogger
}

func main() {
	levelName := flag.String("level", levels.First(), "level name in levels/")
	ticks := flag.Int("ticks", 300, "number of fixed ticks to simulate")
	scriptText := flag.String("script", "", `input timeline, e.g. "0:right;30:right,jump;45:"`)
	debug := flag.Bool("debug", false, "log movement events to stderr")
	flag.Parse()

	log := common.NewLogger(*debug)
	log.Out = os.Stderr
	if !*debug {
		log.SetLevel(logrus.WarnLevel)
	}

	sc, err := parseScript(*scriptText)
	if err != nil {
		log.WithError(err).Fatal("parse script")
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	if err := run(config{Level: *levelName, Ticks: *ticks, Script: sc, Log: log}, out); err != nil {
		out.Flush()
		log.WithError(err).Fatal("simulate")
	}
}

// run simulates cfg.Ticks fixed ticks and writes one line per character per
// tick.
func run(cfg config, out io.Writer) error {
	set, err := prefabs.LoadSet()
	if err != nil {
		return err
	}
	if cfg.Log == nil {
		cfg.Log = common.DiscardLogger()
	}

	w := ecs.NewWorld()
	p := system.NewPipeline(system.PipelineConfig{
		Level:   cfg.Level,
		Source:  &player{script: cfg.Script},
		Prefabs: set,
		Log:     cfg.Log,
	})
	if err := p.Level.Start(w); err != nil {
		return err
	}

	for tick := 0; tick < cfg.Ticks; tick++ {
		p.Update(w)
		var werr error
		ecs.ForEach(w, component.CharacterComponent.Kind(), func(_ ecs.Entity, c *component.Character) {
			if werr != nil {
				return
			}
			werr = writeState(out, tick, p.Level.LevelName(), c.Controller)
		})
		if werr != nil {
			return werr
		}
	}
	return nil
}

func writeState(out io.Writer, tick int, level string, c *movement.Controller) error {
	pos := c.Body().Position()
	v := c.WorldVelocity()
	st := c.State()
	_, err := fmt.Fprintf(out, "%d %s %s pos=(%.4f,%.4f) vel=(%.4f,%.4f) jumping=%t climbing=%t\n",
		tick, level, c.Polarity(), pos.X, pos.Y, v.X, v.Y, st.IsJumping, st.IsClimbing)
	return err
}
