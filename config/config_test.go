package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/automoto/tileworld/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultsMatchSimParams(t *testing.T) {
	assert.NoError(t, Sim.Validate())
	assert.Equal(t, int(Sim.ScreenWidth), C.Width)
	assert.Equal(t, int(Sim.ScreenHeight), C.Height)
	assert.Less(t, Settings.DefaultScaleIndex, len(Settings.Scales))
}

func TestLoadTuning(t *testing.T) {
	saved, savedC := Sim, *C
	t.Cleanup(func() { Sim, *C = saved, savedC })

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("player_speed: 80\nscreen_width: 320\n"), 0o644))

	require.NoError(t, LoadTuning(path))
	assert.Equal(t, 80.0, Sim.PlayerSpeed)
	assert.Equal(t, 320, C.Width)
	assert.Equal(t, core.DefaultParams().EnemySpeed, Sim.EnemySpeed)
}

func TestLoadTuningErrors(t *testing.T) {
	saved := Sim
	t.Cleanup(func() { Sim = saved })

	assert.Error(t, LoadTuning(filepath.Join(t.TempDir(), "missing.yaml")))

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("dt: -1\n"), 0o644))
	assert.ErrorIs(t, LoadTuning(path), core.ErrBadParams)
	assert.Equal(t, saved, Sim, "a rejected file leaves the params alone")
}
