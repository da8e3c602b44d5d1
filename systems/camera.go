package systems

import (
	"github.com/automoto/tileworld/components"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateCamera mirrors the sim camera. The sim owns following and
// clamping; shake is layered on by UpdateEffects through Offset.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	data, ok := GetSim(e)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	pos := data.Sim.World.Camera.Pos
	camera.Position = math.NewVec2(pos.X, pos.Y)
}

// cameraView returns the top-left world point to draw from, with shake.
func cameraView(e *ecs.ECS) (x, y float64, ok bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	v := components.Camera.Get(cameraEntry).View()
	return v.X, v.Y, true
}
