package main

import (
	"image"
	"log"
	"os"

	"github.com/automoto/rollaway/config"
	"github.com/automoto/rollaway/fonts"
	"github.com/automoto/rollaway/logging"
	"github.com/automoto/rollaway/scenes"
	"github.com/automoto/rollaway/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewRunnerScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	config.Debug.Verbose = os.Getenv("ROLLAWAY_DEBUG") != ""
	config.Debug.DrawHitboxes = config.Debug.Verbose
	config.Debug.SkipMenu = os.Getenv("ROLLAWAY_SKIP_MENU") != ""

	logger, err := logging.Init(config.Debug.Verbose)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Sync()

	if err := fonts.LoadDefaults(); err != nil {
		logger.Fatal("failed to load fonts", zap.Error(err))
	}

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		logger.Warn("could not initialize persistence", zap.Error(err))
	}
	if saved, err := systems.LoadSettings(); err != nil {
		logger.Warn("could not load settings", zap.Error(err))
	} else {
		systems.ApplySavedSettings(saved)
	}

	// Tuning file overrides saved settings
	if path := os.Getenv("ROLLAWAY_CONFIG"); path != "" {
		if _, err := config.LoadFile(path); err != nil {
			logger.Fatal("failed to load tuning", zap.String("path", path), zap.Error(err))
		}
		logger.Info("tuning loaded", zap.String("path", path))

		if os.Getenv("ROLLAWAY_WATCH") != "" {
			watcher, err := config.NewWatcher(path)
			if err != nil {
				logger.Warn("could not watch tuning file", zap.String("path", path), zap.Error(err))
			} else {
				defer watcher.Close()
				scenes.SetTuningSource(watcher, path)
			}
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Rollaway")
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		logger.Fatal("game exited", zap.Error(err))
	}
}
