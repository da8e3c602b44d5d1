package components

import (
	"github.com/automoto/tileworld/assets/animations"
	"github.com/yohamta/donburi"
)

// AnimationData drives the frame counters shared by every drawn actor of a
// kind. Frames index into a shade table rather than a sprite sheet.
type AnimationData struct {
	Enemy  *animations.Animation
	Knight *animations.Animation
	Exit   *animations.Animation
}

var Animation = donburi.NewComponentType[AnimationData]()
