package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/systems"
	"github.com/automoto/tileworld/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// endDelayFrames is how long the final frame of a run stays on screen
// before the game over scene takes over.
const endDelayFrames = 45

// WorldScene runs one game of a variant.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	game         string
	endFrames    int
	once         sync.Once
}

// NewWorldScene creates a scene that plays the named variant.
func NewWorldScene(sc SceneChanger, game string) *WorldScene {
	return &WorldScene{sceneChanger: sc, game: game}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	if ws.ecs == nil {
		return
	}
	ws.ecs.Update()

	if systems.GetOrCreatePause(ws.ecs).ExitRequested {
		ws.leave(NewMenuScene(ws.sceneChanger))
		return
	}

	data, ok := systems.GetSim(ws.ecs)
	if !ok || !data.Sim.World.GameEnd {
		return
	}
	ws.endFrames++
	if ws.endFrames >= endDelayFrames {
		ws.leave(NewGameOverScene(ws.sceneChanger, systems.ResultOf(data)))
	}
}

// leave stops background work before switching scenes.
func (ws *WorldScene) leave(next Scene) {
	systems.CloseLevelWatch(ws.ecs)
	ws.sceneChanger.ChangeScene(next)
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	source := factory.LevelSource{Game: ws.game, DiskDir: cfg.Debug.LevelsDir}
	levels, files, err := source.Load()
	if err != nil {
		log.Printf("load %s levels: %v", ws.game, err)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}

	e := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdatePause)

	// The sim handles its own pause state
	e.AddSystem(systems.UpdateSimulation)
	e.AddSystem(systems.UpdateAnimations)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateEffects)
	e.AddSystem(systems.UpdateLevelWatch)
	e.AddSystem(systems.DispatchEvents)

	// Add renderers
	e.AddRenderer(cfg.Default, systems.DrawLevel)
	e.AddRenderer(cfg.Default, systems.DrawActors)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Default, systems.DrawFlash)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawPause)

	simEntry, err := factory.CreateSim(e, ws.game, levels)
	if err != nil {
		log.Printf("start %s: %v", ws.game, err)
		ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		return
	}
	cam := components.Sim.Get(simEntry).Sim.World.Camera.Pos
	factory.CreateCamera(e, cam.X, cam.Y)
	factory.CreateLevel(e, files)
	factory.CreateEffects(e)

	if cfg.Debug.Watch {
		if err := factory.WatchLevels(files); err != nil {
			log.Printf("level hot reload disabled: %v", err)
		}
	}

	systems.SubscribeSimEvents(e.World)
	ws.ecs = e
}
