package config

import (
	"fmt"
	"os"

	"github.com/automoto/tileworld/core"
)

// LoadTuning overlays a YAML params file on Sim and resizes the logical
// screen to match.
func LoadTuning(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open tuning: %w", err)
	}
	defer f.Close()

	p, err := core.LoadParams(f)
	if err != nil {
		return fmt.Errorf("tuning %s: %w", path, err)
	}
	Sim = p
	C.Width = int(p.ScreenWidth)
	C.Height = int(p.ScreenHeight)
	return nil
}
