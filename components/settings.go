package components

import "github.com/yohamta/donburi"

// SettingsData holds the display toggles saved between runs.
type SettingsData struct {
	Hitboxes   bool
	Fullscreen bool
	ScaleIndex int
}

var Settings = donburi.NewComponentType[SettingsData]()
