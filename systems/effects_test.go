package systems

import (
	"image/color"
	"testing"

	"github.com/automoto/tileworld/components"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScreenShakeDecaysAndClears(t *testing.T) {
	e, _ := newWorldECS(t, "maze")
	TriggerScreenShake(e.World, 3, 0.25)

	entry, ok := components.Camera.First(e.World)
	require.True(t, ok)
	require.True(t, entry.HasComponent(components.ScreenShake))

	UpdateEffects(e)
	camera := components.Camera.Get(entry)
	assert.NotZero(t, camera.Offset.X+camera.Offset.Y)
	first := components.ScreenShake.Get(entry).Intensity
	assert.Less(t, first, 3.0)

	// A weaker shake does not replace a stronger one.
	TriggerScreenShake(e.World, 1, 1)
	assert.Equal(t, first, components.ScreenShake.Get(entry).Intensity)

	for range 20 {
		UpdateEffects(e)
	}
	assert.False(t, entry.HasComponent(components.ScreenShake))
	camera = components.Camera.Get(entry)
	assert.Zero(t, camera.Offset.X)
	assert.Zero(t, camera.Offset.Y)
}

func TestFlashFadesOut(t *testing.T) {
	e, _ := newWorldECS(t, "maze")
	TriggerFlash(e.World, color.RGBA{R: 255, A: 100}, 0.1)

	entry, ok := components.Flash.First(e.World)
	require.True(t, ok)
	flash := components.Flash.Get(entry)
	assert.Equal(t, float32(1), flash.Alpha)

	UpdateEffects(e)
	assert.Less(t, flash.Alpha, float32(1))
	assert.Greater(t, flash.Alpha, float32(0))

	for range 10 {
		UpdateEffects(e)
	}
	assert.Zero(t, flash.Alpha)
	assert.Nil(t, flash.Fade)
}

func TestIgnoredEffects(t *testing.T) {
	e, _ := newWorldECS(t, "maze")
	TriggerScreenShake(e.World, 0, 1)
	TriggerFlash(e.World, color.RGBA{A: 255}, 0)

	entry, _ := components.Camera.First(e.World)
	assert.False(t, entry.HasComponent(components.ScreenShake))
	flashEntry, _ := components.Flash.First(e.World)
	assert.Zero(t, components.Flash.Get(flashEntry).Alpha)
}

func TestPremultiply(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 100, G: 50, B: 0, A: 255}, premultiply(color.RGBA{R: 100, G: 50, A: 255}))
	assert.Equal(t, color.RGBA{R: 128, G: 0, B: 63, A: 128}, premultiply(color.RGBA{R: 255, B: 127, A: 128}))
}

func TestShade(t *testing.T) {
	c := color.RGBA{R: 200, G: 100, B: 20, A: 255}
	assert.Equal(t, c, shade(c, 0))
	dark := shade(c, 2)
	assert.InDelta(t, 140, int(dark.R), 1)
	assert.InDelta(t, 70, int(dark.G), 1)
	assert.Equal(t, c.A, dark.A)
	assert.Equal(t, shade(c, 1), shade(c, 5), "frames wrap")
}
