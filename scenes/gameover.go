package scenes

import (
	"fmt"
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/systems"
	"github.com/automoto/tileworld/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene shows how a run ended. A maze run fast enough for the
// leaderboard first asks for a name.
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	result       components.RunResult
	nameEntry    *ui.NameEntryUI
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, result components.RunResult) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	if gs.nameEntry != nil {
		gs.nameEntry.Update()
		if gs.nameEntry != nil && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			gs.nameEntry.Submit()
		}
		return
	}
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.nameEntry != nil {
		gs.nameEntry.UI.Draw(screen)
		return
	}
	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	createWorldScene := func() interface{} {
		return NewWorldScene(gs.sceneChanger, gs.result.Game)
	}
	createMenuScene := func() interface{} {
		return NewMenuScene(gs.sceneChanger)
	}

	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(gs.sceneChanger, createWorldScene, createMenuScene))

	gs.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)

	gameOver := systems.GetOrCreateGameOver(gs.ecs)
	gameOver.Result = gs.result
	if gs.result.Finished {
		gameOver.Board = systems.LoadLeaderboard(gs.result.Game)
	}
	if !systems.QualifiesForBoard(gameOver) {
		return
	}

	summary := fmt.Sprintf("%d levels in %s", gs.result.Record.Levels, core.FormatStopwatch(gs.result.Record.Time))
	entry, err := ui.NewNameEntryUI(summary,
		func(name string) {
			place := systems.SubmitRecord(gameOver, name)
			log.Printf("leaderboard: %s placed %d", gs.result.Game, place)
			gs.nameEntry = nil
		},
		func() { gs.nameEntry = nil },
	)
	if err != nil {
		log.Printf("name entry unavailable: %v", err)
		return
	}
	gs.nameEntry = entry
}
