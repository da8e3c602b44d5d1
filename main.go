package main

import (
	"flag"
	"image"
	"log"
	"slices"

	"github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/fonts"
	"github.com/automoto/tileworld/scenes"
	"github.com/automoto/tileworld/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Game struct {
	bounds image.Rectangle
	scene  scenes.Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(scenes.Scene)
}

func NewGame() *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewWorldScene(g, config.Debug.Game)
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
	game := flag.String("game", config.Debug.Game, "variant to start with -skipmenu (adventure, arena, maze)")
	flag.BoolVar(&config.Debug.SkipMenu, "skipmenu", false, "skip the menu and start -game")
	flag.StringVar(&config.Debug.LevelsDir, "levels", "", "load levels from this directory instead of the embedded set")
	flag.BoolVar(&config.Debug.Watch, "watch", false, "reload level files from -levels when they change")
	flag.BoolVar(&config.Debug.Hitboxes, "hitboxes", false, "draw collision boxes")
	flag.BoolVar(&config.Debug.Autoplay, "autoplay", false, "let the built-in bot play")
	tuning := flag.String("tuning", "", "yaml file overriding simulation tuning")
	flag.Parse()

	if !slices.Contains(core.RuleNames(), *game) {
		log.Fatalf("unknown -game %q, want one of %v", *game, core.RuleNames())
	}
	config.Debug.Game = *game
	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("tuning: %v", err)
		}
	}
	if config.Debug.Watch && config.Debug.LevelsDir == "" {
		log.Printf("Warning: -watch needs -levels; hot reload disabled")
		config.Debug.Watch = false
	}

	if err := fonts.LoadDefault(); err != nil {
		log.Fatalf("fonts: %v", err)
	}

	ebiten.SetWindowTitle("Tileworld")
	ebiten.SetWindowSize(config.C.Width*config.C.Scale, config.C.Height*config.C.Scale)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetTPS(config.C.TPS)

	// Initialize persistence and load saved settings
	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	if saved, err := systems.LoadSettings(); err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
	} else if saved != nil {
		systems.ApplySavedSettingsGlobal(saved)
	}
	if config.Debug.Hitboxes {
		systems.SetHitboxes(true)
	}

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
