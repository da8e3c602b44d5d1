package systems

import (
	"github.com/automoto/tileworld/archetypes"
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// activeSettings carries the toggles across scenes; every scene's settings
// entity starts from it.
var activeSettings = components.SettingsData{
	ScaleIndex: cfg.Settings.DefaultScaleIndex,
}

// UpdateSettings applies the display toggle keys and saves the result.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	input := getOrCreateInput(e)

	changed := false
	if GetAction(input, cfg.ActionToggleHitboxes).JustPressed {
		settings.Hitboxes = !settings.Hitboxes
		changed = true
	}
	if GetAction(input, cfg.ActionToggleFullscreen).JustPressed {
		settings.Fullscreen = !settings.Fullscreen
		ebiten.SetFullscreen(settings.Fullscreen)
		changed = true
	}
	if GetAction(input, cfg.ActionCycleScale).JustPressed {
		settings.ScaleIndex = (settings.ScaleIndex + 1) % len(cfg.Settings.Scales)
		applyWindowScale(settings.ScaleIndex)
		changed = true
	}

	if changed {
		activeSettings = *settings
		SaveCurrentSettings(settings)
	}
}

// GetOrCreateSettings returns the scene's settings, creating them from the
// carried-over toggles if needed.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = archetypes.Settings.Spawn(e)
		components.Settings.SetValue(entry, activeSettings)
	}
	return components.Settings.Get(entry)
}

// ApplySavedSettingsGlobal applies settings without needing an ECS reference
// Used during initial game startup before scenes are created
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	activeSettings = components.SettingsData{
		Hitboxes:   saved.Hitboxes || cfg.Debug.Hitboxes,
		Fullscreen: saved.Fullscreen,
		ScaleIndex: saved.ScaleIndex,
	}
	if activeSettings.ScaleIndex < 0 || activeSettings.ScaleIndex >= len(cfg.Settings.Scales) {
		activeSettings.ScaleIndex = cfg.Settings.DefaultScaleIndex
	}

	ebiten.SetFullscreen(saved.Fullscreen)
	if !saved.Fullscreen {
		applyWindowScale(activeSettings.ScaleIndex)
	}
}

// SetHitboxes forces the hitbox overlay, as the -hitboxes flag does.
func SetHitboxes(on bool) {
	activeSettings.Hitboxes = on
}

func applyWindowScale(index int) {
	scale := cfg.Settings.Scales[index]
	ebiten.SetWindowSize(cfg.C.Width*scale, cfg.C.Height*scale)
}
