// Command pythagoras-window shows the triangle visualizer in a desktop window.
package main

import (
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/ensigniasec/pythagoras/internal/config"
	"github.com/ensigniasec/pythagoras/internal/window"
)

const windowScale = 2

func main() {
	logrus.SetOutput(os.Stderr)

	configFile := flag.String("config", config.DefaultPath, "Path to a YAML config file")
	verbose := flag.Bool("v", false, "Enable detailed logging output")
	flag.Parse()
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	cfg, err := config.Load(*configFile)
	if err != nil {
		logrus.Fatalf("Unable to load config: %v", err)
	}

	ctrl := window.New(cfg)
	w, h := ctrl.Size()
	ebiten.SetWindowTitle(ctrl.Title())
	ebiten.SetWindowSize(w*windowScale, h*windowScale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(&game{ctrl: ctrl}); err != nil {
		logrus.Fatal(err)
	}
}
