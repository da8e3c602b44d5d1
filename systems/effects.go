package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects steps the shake and flash tweens by one frame. Effects keep
// running while paused so a hit that pauses the game still settles.
func UpdateEffects(e *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.C.TPS))
	updateScreenShake(e.World, dt)
	updateFlash(e.World, dt)
}

// updateScreenShake decays the shake and moves the camera offset along a
// sine/cosine wobble.
func updateScreenShake(w donburi.World, dt float32) {
	entry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(entry)
	if !entry.HasComponent(components.ScreenShake) {
		camera.Offset.X, camera.Offset.Y = 0, 0
		return
	}

	shake := components.ScreenShake.Get(entry)
	shake.Elapsed++
	intensity, done := shake.Decay.Update(dt)
	shake.Intensity = float64(intensity)

	camera.Offset.X = math.Sin(float64(shake.Elapsed)*1.1) * shake.Intensity
	camera.Offset.Y = math.Cos(float64(shake.Elapsed)*1.3) * shake.Intensity

	if done {
		camera.Offset.X, camera.Offset.Y = 0, 0
		entry.RemoveComponent(components.ScreenShake)
	}
}

func updateFlash(w donburi.World, dt float32) {
	components.Flash.Each(w, func(entry *donburi.Entry) {
		flash := components.Flash.Get(entry)
		if flash.Fade == nil {
			return
		}
		alpha, done := flash.Fade.Update(dt)
		flash.Alpha = alpha
		if done {
			flash.Fade = nil
			flash.Alpha = 0
		}
	})
}

// TriggerScreenShake starts a shake that eases out over duration seconds.
// A weaker shake never interrupts a stronger one.
func TriggerScreenShake(w donburi.World, intensity float64, duration float32) {
	entry, ok := components.Camera.First(w)
	if !ok || intensity <= 0 || duration <= 0 {
		return
	}

	decay := gween.New(float32(intensity), 0, duration, ease.OutQuad)
	if entry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(entry)
		if intensity > shake.Intensity {
			shake.Decay = decay
			shake.Intensity = intensity
			shake.Elapsed = 0
		}
		return
	}
	entry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(entry, &components.ScreenShakeData{
		Decay:     decay,
		Intensity: intensity,
	})
}

// TriggerFlash tints the whole screen with c and fades it out.
func TriggerFlash(w donburi.World, c color.RGBA, duration float32) {
	entry, ok := components.Flash.First(w)
	if !ok || duration <= 0 {
		return
	}
	flash := components.Flash.Get(entry)
	flash.Color = c
	flash.Alpha = 1
	flash.Fade = gween.New(1, 0, duration, ease.Linear)
}

// DrawFlash renders the active screen tint.
func DrawFlash(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Flash.First(e.World)
	if !ok {
		return
	}
	flash := components.Flash.Get(entry)
	if flash.Alpha <= 0 {
		return
	}
	c := flash.Color
	c.A = uint8(float32(c.A) * flash.Alpha)
	bounds := screen.Bounds()
	vector.FillRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), premultiply(c), false)
}

// premultiply scales the color channels by alpha, as ebiten expects.
func premultiply(c color.RGBA) color.RGBA {
	a := uint16(c.A)
	return color.RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: c.A,
	}
}
