package systems

import (
	"fmt"
	"log"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateGameOver creates an UpdateGameOver system with scene transition capability
func NewUpdateGameOver(sceneChanger SceneChanger, createWorldScene func() interface{}, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		// Navigate menu with wrap-around using modulo arithmetic
		numOptions := int(components.GameOverMenu) + 1
		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) - 1 + numOptions) % numOptions,
			)
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			gameOver.SelectedOption = components.GameOverOption(
				(int(gameOver.SelectedOption) + 1) % numOptions,
			)
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			switch gameOver.SelectedOption {
			case components.GameOverRetry:
				sceneChanger.ChangeScene(createWorldScene())
			case components.GameOverMenu:
				sceneChanger.ChangeScene(createMenuScene())
			}
		}
	}
}

// QualifiesForBoard reports whether the run should ask for a name. Only
// runs through every level are ranked.
func QualifiesForBoard(g *components.GameOverData) bool {
	r := g.Result
	return r.Finished && r.Record.Levels == r.Total && r.Record.Time > 0 && g.Board.Qualifies(r.Record.Time)
}

// SubmitRecord enters the run on the board under name and saves it. It
// returns the 1-based place, 0 when the run did not place.
func SubmitRecord(g *components.GameOverData, name string) int {
	rec := g.Result.Record
	rec.Name = name
	g.Placed = g.Board.Add(rec) + 1
	if err := SaveLeaderboard(g.Result.Game, g.Board); err != nil {
		log.Printf("Warning: Could not save leaderboard: %v", err)
	}
	return g.Placed
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)
	result := gameOver.Result

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.GameOver.BackgroundColor,
		false,
	)

	title := "YOU DIED"
	summary := fmt.Sprintf("Score %d   Level %d", result.Score, result.Rank+1)
	if result.Finished {
		title = "FINISHED"
		summary = fmt.Sprintf("%d levels in %s", result.Record.Levels, core.FormatStopwatch(result.Record.Time))
	}
	drawCentered(screen, title, fonts.Title, int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)
	drawCentered(screen, summary, fonts.Regular, int(cfg.GameOver.TitleY)+14, cfg.GameOver.TextColorNormal)

	if result.Finished {
		drawBoard(screen, gameOver)
	}

	for i, option := range cfg.GameOver.MenuOptions {
		y := cfg.GameOver.MenuStartY + float64(i)*(cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap)

		textColor := cfg.GameOver.TextColorNormal
		if components.GameOverOption(i) == gameOver.SelectedOption {
			textColor = cfg.GameOver.TextColorSelected
		}
		drawCentered(screen, option, fonts.Bold, int(y)+int(cfg.GameOver.MenuItemHeight), textColor)
	}
}

// drawBoard lists the fastest runs, highlighting this one if it placed.
func drawBoard(screen *ebiten.Image, g *components.GameOverData) {
	y := int(cfg.GameOver.TitleY) + 26
	for i, rec := range g.Board.Entries {
		c := cfg.GameOver.TextColorNormal
		if i+1 == g.Placed {
			c = cfg.GameOver.TextColorSelected
		}
		line := fmt.Sprintf("%d. %-8s %s", i+1, rec.Name, core.FormatStopwatch(rec.Time))
		drawCentered(screen, line, fonts.Small, y+i*8, c)
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.GameOver))
		components.GameOver.SetValue(ent, components.GameOverData{
			SelectedOption: components.GameOverRetry,
		})
	}

	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
