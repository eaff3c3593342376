package main

import (
	"errors"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/display-test/internal/anim"
	"github.com/iburimskiy/display-test/internal/config"
	"github.com/iburimskiy/display-test/internal/game"
	"github.com/iburimskiy/display-test/internal/logger"
)

func main() {
	rt := config.FromEnv()

	var log *logger.Logger
	if rt.LogJSON {
		log = logger.New(os.Stderr, rt.LogLevel)
	} else {
		log = logger.NewConsole(rt.LogLevel)
	}
	for _, w := range rt.Warnings {
		log.Warning("main", w, nil)
	}

	if err := run(log); err != nil {
		log.Error("main", err, nil)
		_ = zenity.Error(err.Error(), zenity.Title(config.WindowTitle), zenity.ErrorIcon)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	state, err := anim.New(config.SpeedOptions)
	if err != nil {
		return err
	}
	g, err := game.New(state, log, game.MonotonicClock())
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	// Redraw every frame as fast as the display allows.
	ebiten.SetVsyncEnabled(false)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	log.Info("main", "starting", map[string]interface{}{
		"width":  config.WindowWidth,
		"height": config.WindowHeight,
		"speed":  state.Speed(),
	})
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Info("main", "stopped", nil)
	return nil
}
