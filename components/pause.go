package components

import "github.com/yohamta/donburi"

// PauseMenuOption represents menu items in the pause menu
type PauseMenuOption int

const (
	MenuResume PauseMenuOption = iota
	MenuExit
)

// PauseData stores the pause menu selection. Whether the game is paused
// lives in the sim; Resume asks the next tick to unpause and ExitRequested
// tells the scene to return to the main menu.
type PauseData struct {
	SelectedOption PauseMenuOption
	Resume         bool
	ExitRequested  bool
}

var Pause = donburi.NewComponentType[PauseData]()
