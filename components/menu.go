package components

import (
	"github.com/automoto/tileworld/core"
	"github.com/yohamta/donburi"
)

// MenuData stores the current state of the main menu
type MenuData struct {
	SelectedIndex int      // Current selection index in Options
	Options       []string // game variants, then "Exit"
	Best          core.Leaderboard
}

// Menu is the component type for main menu state
var Menu = donburi.NewComponentType[MenuData]()
