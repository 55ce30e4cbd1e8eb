package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/polarities/common"
	"github.com/milk9111/polarities/levels"
	"github.com/milk9111/polarities/progress"
)

func main() {
	levelName := flag.String("level", "", "level name in levels/ (basename, .json optional); defaults to the last unlocked level")
	debug := flag.Bool("debug", false, "draw physics shapes and log movement events")
	watch := flag.Bool("watch", false, "reload prefabs/*.yaml from disk when they change")
	savePath := flag.String("save", defaultSavePath(), "progress file")
	flag.Parse()

	log := common.NewLogger(*debug)

	store, err := progress.Open(*savePath)
	if err != nil {
		log.WithError(err).Fatal("open progress")
	}

	level := *levelName
	if level == "" {
		if name, ok := levels.ByIndex(store.LevelCount()); ok {
			level = name
		}
	}

	game, err := NewGame(GameConfig{
		Level:    level,
		Debug:    *debug,
		Watch:    *watch,
		Progress: store,
		Log:      log,
	})
	if err != nil {
		log.WithError(err).Fatal("start game")
	}
	defer game.Close()

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("polarities")
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.WithError(err).Error("game exited")
	}
}

func defaultSavePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "progress.yaml"
	}
	return filepath.Join(dir, "polarities", "progress.yaml")
}
