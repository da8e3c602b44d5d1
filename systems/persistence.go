package systems

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/automoto/tileworld/components"
	"github.com/automoto/tileworld/core"
	"github.com/quasilyte/gdata"
)

const (
	settingsKey          = "settings"
	leaderboardKeyPrefix = "leaderboard_"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	Hitboxes   bool `json:"hitboxes"`
	Fullscreen bool `json:"fullscreen"`
	ScaleIndex int  `json:"scaleIndex"`
}

// itemStore is the part of gdata.Manager persistence uses.
type itemStore interface {
	LoadItem(itemKey string) ([]byte, error)
	SaveItem(itemKey string, data []byte) error
}

var store itemStore

// InitPersistence initializes the gdata manager for settings and
// leaderboard storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "tileworld",
	})
	if err != nil {
		return fmt.Errorf("open save data: %w", err)
	}
	store = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when nothing was saved yet or persistence is unavailable.
func LoadSettings() (*SavedSettings, error) {
	var settings SavedSettings
	found, err := loadJSON(settingsKey, &settings)
	if err != nil || !found {
		return nil, err
	}
	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s *SavedSettings) error {
	return saveJSON(settingsKey, s)
}

// SaveCurrentSettings saves the current settings from the SettingsData component
func SaveCurrentSettings(s *components.SettingsData) {
	saved := &SavedSettings{
		Hitboxes:   s.Hitboxes,
		Fullscreen: s.Fullscreen,
		ScaleIndex: s.ScaleIndex,
	}
	if err := SaveSettings(saved); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// LoadLeaderboard returns the saved board of a variant; an empty board when
// none exists.
func LoadLeaderboard(game string) core.Leaderboard {
	var board core.Leaderboard
	if _, err := loadJSON(leaderboardKeyPrefix+game, &board); err != nil {
		log.Printf("Warning: Could not load %s leaderboard: %v", game, err)
		return core.Leaderboard{}
	}
	return board
}

// SaveLeaderboard stores a variant's board.
func SaveLeaderboard(game string, board core.Leaderboard) error {
	return saveJSON(leaderboardKeyPrefix+game, board)
}

func loadJSON(key string, v any) (bool, error) {
	if store == nil {
		return false, nil
	}
	data, err := store.LoadItem(key)
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if data == nil {
		return false, nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("parse %s: %w", key, err)
	}
	return true, nil
}

func saveJSON(key string, v any) error {
	if store == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := store.SaveItem(key, data); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
