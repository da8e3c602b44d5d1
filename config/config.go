package config

import (
	"image/color"

	"github.com/automoto/tileworld/core"
	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every scene draws on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Scale  int // window pixels per logical pixel
	TPS    int
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// UpgradeConfig contains the level-up overlay configuration
type UpgradeConfig struct {
	OverlayColor color.RGBA
	TitleColor   color.RGBA
	TextColor    color.RGBA
	Title        string
	Options      []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	Title             string
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// HUDConfig contains the in-game overlay layout and colors
type HUDConfig struct {
	Margin        float64
	HeartSize     float64
	HeartGap      float64
	XPBarWidth    float64
	XPBarHeight   float64
	HeartColor    color.RGBA
	XPBgColor     color.RGBA
	XPFgColor     color.RGBA
	TextColor     color.RGBA
	TextBackColor color.RGBA
}

// WorldColors are the flat colors actors and tiles are drawn with.
type WorldColors struct {
	Background  color.RGBA
	Solid       color.RGBA
	Floor       []color.RGBA // indexed by sprite id, wrapping
	Exit        color.RGBA
	Player      color.RGBA
	Enemy       color.RGBA
	Knight      color.RGBA
	AttackArea  color.RGBA
	HitboxColor color.RGBA
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	AttackIntensity       float64 // pixels
	AttackDuration        float32 // seconds
	PlayerDamageIntensity float64 // pixels
	PlayerDamageDuration  float32 // seconds
}

// FlashConfig contains the full-screen flash tints
type FlashConfig struct {
	DamageColor    color.RGBA
	DamageDuration float32 // seconds
	LevelUpColor   color.RGBA
	LevelDuration  float32 // seconds
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu  bool   // Skip menu and go directly to game
	Game      string // variant started by SkipMenu
	Hitboxes  bool   // draw collision boxes
	LevelsDir string // load levels from disk instead of the embedded set
	Watch     bool   // hot reload LevelsDir
	Autoplay  bool   // the built-in bot drives the player
}

// Global configuration instances
var C *Config
var Sim core.Params
var Pause PauseConfig
var Upgrade UpgradeConfig
var Menu MenuConfig
var GameOver GameOverConfig
var HUD HUDConfig
var World WorldColors
var ScreenShake ScreenShakeConfig
var Flash FlashConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	Sim = core.DefaultParams()

	C = &Config{
		Width:  int(Sim.ScreenWidth),
		Height: int(Sim.ScreenHeight),
		Scale:  4,
		TPS:    60,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    14,
		MenuItemGap:       6,
		MenuOptions:       []string{"Resume", "Main Menu"},
	}

	Upgrade = UpgradeConfig{
		OverlayColor: BlackOverlay,
		TitleColor:   Yellow,
		TextColor:    White,
		Title:        "LEVEL UP",
		Options:      []string{"Q: +Health", "E: +Range"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		Title:             "TILEWORLD",
		TitleY:            28,
		MenuStartY:        44,
		MenuItemHeight:    12,
		MenuItemGap:       4,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            30,
		MenuStartY:        80,
		MenuItemHeight:    12,
		MenuItemGap:       4,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	HUD = HUDConfig{
		Margin:        4,
		HeartSize:     6,
		HeartGap:      2,
		XPBarWidth:    40,
		XPBarHeight:   3,
		HeartColor:    LightRed,
		XPBgColor:     color.RGBA{R: 40, G: 40, B: 40, A: 255},
		XPFgColor:     LightGreen,
		TextColor:     White,
		TextBackColor: color.RGBA{R: 0, G: 0, B: 0, A: 120},
	}

	World = WorldColors{
		Background: color.RGBA{R: 10, G: 10, B: 14, A: 255},
		Solid:      color.RGBA{R: 70, G: 70, B: 85, A: 255},
		Floor: []color.RGBA{
			{R: 34, G: 52, B: 34, A: 255},
			{R: 30, G: 46, B: 30, A: 255},
			{R: 60, G: 50, B: 30, A: 255},
		},
		Exit:        color.RGBA{R: 220, G: 200, B: 60, A: 255},
		Player:      LightBlue,
		Enemy:       color.RGBA{R: 200, G: 60, B: 60, A: 255},
		Knight:      color.RGBA{R: 200, G: 200, B: 220, A: 255},
		AttackArea:  color.RGBA{R: 255, G: 255, B: 255, A: 70},
		HitboxColor: color.RGBA{R: 0, G: 255, B: 255, A: 255},
	}

	ScreenShake = ScreenShakeConfig{
		AttackIntensity:       1.0,
		AttackDuration:        0.08,
		PlayerDamageIntensity: 3.0,
		PlayerDamageDuration:  0.25,
	}

	Flash = FlashConfig{
		DamageColor:    color.RGBA{R: 255, G: 0, B: 0, A: 110},
		DamageDuration: 0.3,
		LevelUpColor:   color.RGBA{R: 255, G: 255, B: 120, A: 90},
		LevelDuration:  0.4,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Game:     "adventure",
	}
}
