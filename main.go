package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"ballsim/pkg/simulation"
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene file (empty for the classic layout)")
	width := flag.Float64("width", 1920, "plane width when no scene file is given")
	height := flag.Float64("height", 1080, "plane height when no scene file is given")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	logger := newLogger(*debug)
	defer logger.Sync()

	scene := simulation.DefaultScene(*width, *height)
	if *scenePath != "" {
		var err error
		scene, err = simulation.LoadScene(*scenePath)
		if err != nil {
			logger.Fatal("scene load failed", zap.String("path", *scenePath), zap.Error(err))
		}
	}

	sim, err := simulation.New(scene, logger)
	if err != nil {
		logger.Fatal("invalid scene", zap.String("scene", scene.Name), zap.Error(err))
	}
	logger.Info("scene loaded",
		zap.String("scene", scene.Name),
		zap.Int("balls", sim.Len()),
		zap.Float64("width", scene.Width),
		zap.Float64("height", scene.Height),
	)

	ebiten.SetWindowSize(int(scene.Width), int(scene.Height))
	ebiten.SetWindowTitle("Balls")
	ebiten.SetTPS(60)

	if err := ebiten.RunGame(NewGame(sim, logger)); err != nil {
		logger.Fatal("game loop failed", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	var logger *zap.Logger
	var err error
	if debug {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(err)
	}
	return logger
}
