package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/fonts"
	"github.com/automoto/tileworld/shared/geom"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugSolidColor = color.RGBA{100, 100, 100, 255}

// DrawDebug outlines every collision box in view when hitboxes are on.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Hitboxes {
		return
	}
	data, ok := GetSim(e)
	if !ok {
		return
	}
	camX, camY, ok := cameraView(e)
	if !ok {
		return
	}

	sim := data.Sim
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	view := geom.Rect{X: camX, Y: camY, W: float64(width), H: float64(height)}

	outline := func(r geom.Rect, c color.RGBA) {
		if !r.Overlaps(view) {
			return
		}
		vector.StrokeRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H), 1, c, false)
	}

	for hit := range sim.World.Level().SolidWithin(view) {
		outline(hit.Rect, debugSolidColor)
	}
	for _, r := range sim.World.EnemyRects(sim.Params.BodySize) {
		outline(r, cfg.Red)
	}
	for _, r := range sim.World.KnightRects(sim.Params.BodySize) {
		outline(r, cfg.LightGreen)
	}
	outline(sim.Attack.Area, cfg.Yellow)
	outline(sim.PlayerRect(), cfg.World.HitboxColor)

	if sim.World.Paused || sim.World.GameEnd {
		return
	}
	drawDebugLine(screen, sim)
}

// drawDebugLine prints the player position and attack phase in the bottom
// left corner.
func drawDebugLine(screen *ebiten.Image, sim *core.Sim) {
	p := sim.World.Player.Pos
	line := fmt.Sprintf("%.0f,%.0f %s", p.X, p.Y, sim.Attack.Phase())
	drawText(screen, line, fonts.Small, 2, screen.Bounds().Dy()-2, cfg.HUD.TextColor)
}
