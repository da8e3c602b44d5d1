package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is the view the renderers draw through. Position is the
// top-left world point copied from the sim camera; Offset is the shake on
// top of it.
type CameraData struct {
	Position math.Vec2
	Offset   math.Vec2
}

// View returns the top-left world point including shake.
func (c *CameraData) View() math.Vec2 {
	return c.Position.Add(c.Offset)
}

var Camera = donburi.NewComponentType[CameraData]()
