package tags

import "github.com/yohamta/donburi"

var (
	Sim      = donburi.NewTag().SetName("Sim")
	Camera   = donburi.NewTag().SetName("Camera")
	Level    = donburi.NewTag().SetName("Level")
	Effects  = donburi.NewTag().SetName("Effects")
	Settings = donburi.NewTag().SetName("Settings")
)
