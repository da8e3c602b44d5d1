package factory

import (
	"github.com/automoto/tileworld/archetypes"
	"github.com/automoto/tileworld/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the render camera at the sim camera's position so the
// first frame does not pan in from the origin.
func CreateCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{Position: math.NewVec2(x, y)})
	return camera
}
