package config

// SettingsConfig holds the options cycled by the settings keys and saved
// between runs.
type SettingsConfig struct {
	Scales            []int
	DefaultScaleIndex int
}

// Settings is the global settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Scales:            []int{2, 3, 4, 5, 6},
		DefaultScaleIndex: 2,
	}
}
