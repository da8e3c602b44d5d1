package components

import (
	"image/color"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks active screen shake on the camera. Decay tweens
// the intensity from its start value to zero.
type ScreenShakeData struct {
	Decay     *gween.Tween
	Intensity float64 // current max offset in pixels
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// FlashData tracks a full-screen tint fading out.
type FlashData struct {
	Fade  *gween.Tween
	Color color.RGBA
	Alpha float32 // 0..1 multiplier on Color's alpha
}

var Flash = donburi.NewComponentType[FlashData]()
