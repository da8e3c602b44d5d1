package systems

import (
	"os"
	"strings"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const menuExit = "Exit"

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system that starts the selected
// variant through createWorldScene.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func(game string) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		if GetAction(input, cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if GetAction(input, cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if GetAction(input, cfg.ActionMenuSelect).JustPressed {
			selected := menu.Options[menu.SelectedIndex]
			if selected == menuExit {
				os.Exit(0)
			}
			sceneChanger.ChangeScene(createWorldScene(selected))
		}

		// Allow back/escape to exit
		if GetAction(input, cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the main menu screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	drawCentered(screen, cfg.Menu.Title, fonts.Title, int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	for i, option := range menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}
		drawCentered(screen, optionLabel(option), fonts.Bold, int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	if best := bestTime(menu.Best); best != "" {
		drawCentered(screen, best, fonts.Small, int(height)-16, cfg.Menu.TextColorNormal)
	}

	input := getOrCreateInput(e)
	hint := getMenuHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small, int(height)-6, cfg.Menu.TextColorNormal)
}

// bestTime describes the top maze run, if any.
func bestTime(board core.Leaderboard) string {
	if len(board.Entries) == 0 {
		return ""
	}
	top := board.Entries[0]
	return "Best maze: " + top.Name + " " + core.FormatStopwatch(top.Time)
}

// getMenuHint returns the appropriate hint for menu navigation
func getMenuHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select"
	}
	return "Arrows: Navigate   Enter: Select"
}

// optionLabel returns the display text for a menu option
func optionLabel(option string) string {
	if option == "" {
		return ""
	}
	return strings.ToUpper(option[:1]) + option[1:]
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		options := append(core.RuleNames(), menuExit)

		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			Options: options,
			Best:    LoadLeaderboard("maze"),
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
