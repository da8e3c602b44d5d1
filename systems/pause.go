package systems

import (
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles pause menu navigation. The pause toggle itself is an
// intent the sim applies, so this only runs while the sim reports paused.
// This system should run AFTER UpdateInput but BEFORE UpdateSimulation.
func UpdatePause(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	data, ok := GetSim(ecs)
	if !ok {
		return
	}
	sim := data.Sim
	if !sim.World.Paused || sim.Upgrading {
		pause.SelectedOption = components.MenuResume
		return
	}

	input := getOrCreateInput(ecs)

	// Navigate menu with wrap-around using modulo arithmetic
	numOptions := int(components.MenuExit) + 1
	if GetAction(input, cfg.ActionMenuUp).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) - 1 + numOptions) % numOptions,
		)
	}
	if GetAction(input, cfg.ActionMenuDown).JustPressed {
		pause.SelectedOption = components.PauseMenuOption(
			(int(pause.SelectedOption) + 1) % numOptions,
		)
	}

	if GetAction(input, cfg.ActionMenuSelect).JustPressed {
		switch pause.SelectedOption {
		case components.MenuResume:
			pause.Resume = true
		case components.MenuExit:
			pause.ExitRequested = true
		}
	}
}

// DrawPause renders the pause overlay and menu, or the level-up choices
// while an upgrade is pending.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSim(ecs)
	if !ok {
		return
	}
	sim := data.Sim
	if sim.Upgrading {
		drawUpgrade(screen)
		return
	}
	if !sim.World.Paused || sim.World.GameEnd {
		return
	}
	pause := GetOrCreatePause(ecs)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	menuOptions := cfg.Pause.MenuOptions
	totalMenuHeight := float64(len(menuOptions)) * (cfg.Pause.MenuItemHeight + cfg.Pause.MenuItemGap)
	startY := (height - totalMenuHeight) / 2

	for i, option := range menuOptions {
		y := startY + float64(i)*(cfg.Pause.MenuItemHeight+cfg.Pause.MenuItemGap)

		textColor := cfg.Pause.TextColorNormal
		if components.PauseMenuOption(i) == pause.SelectedOption {
			textColor = cfg.Pause.TextColorSelected
		}
		drawCentered(screen, option, fonts.Bold, int(y)+int(cfg.Pause.MenuItemHeight), textColor)
	}

	// Draw navigation hint at bottom based on input method
	input := getOrCreateInput(ecs)
	hint := getPauseHint(input.LastInputMethod)
	drawCentered(screen, hint, fonts.Small, int(height)-6, cfg.Pause.TextColorNormal)
}

// drawUpgrade renders the level-up choices over the frozen world.
func drawUpgrade(screen *ebiten.Image) {
	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Upgrade.OverlayColor, false)

	y := int(height)/2 - 16
	drawCentered(screen, cfg.Upgrade.Title, fonts.Title, y, cfg.Upgrade.TitleColor)
	for i, option := range cfg.Upgrade.Options {
		drawCentered(screen, option, fonts.Bold, y+18+i*14, cfg.Upgrade.TextColor)
	}
}

// getPauseHint returns the appropriate hint for pause menu
func getPauseHint(method components.InputMethod) string {
	switch method {
	case components.InputPlayStation:
		return "D-Pad: Navigate   Cross: Select   Options: Resume"
	case components.InputXbox:
		return "D-Pad: Navigate   A: Select   Start: Resume"
	}
	return "Arrows: Navigate   Enter: Select   Esc: Resume"
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			SelectedOption: components.MenuResume,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}
