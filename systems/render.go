package systems

import (
	"image/color"

	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Per-frame brightness steps for the animated actors.
var shades = []float64{1.0, 0.85, 0.7, 0.85}

// DrawActors draws exits, enemies, knights, the attack sweep and the player
// as flat boxes offset by the camera.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSim(e)
	if !ok {
		return
	}
	camX, camY, ok := cameraView(e)
	if !ok {
		return
	}
	anim := animationsOf(e)
	sim := data.Sim
	w := sim.World
	lvl := w.Level()
	body := sim.Params.BodySize

	draw := func(r geom.Rect, c color.RGBA) {
		vector.FillRect(screen, float32(r.X-camX), float32(r.Y-camY), float32(r.W), float32(r.H), c, false)
	}

	for _, p := range lvl.StartsOf(leveldata.KindExit) {
		draw(geom.RectAround(p, lvl.TileSize, lvl.TileSize), shade(cfg.World.Exit, anim.Exit.Frame()))
	}
	for _, en := range w.Enemies {
		if en.State == core.Dead {
			continue
		}
		draw(core.BodyRect(en.Pos, body), shade(cfg.World.Enemy, anim.Enemy.Frame()))
	}
	for _, k := range w.Knights {
		draw(core.BodyRect(k.Pos, body), shade(cfg.World.Knight, anim.Knight.Frame()))
	}

	if area := sim.Attack.Area; !area.IsEmpty() {
		draw(area, premultiply(cfg.World.AttackArea))
	}

	// Flicker while invulnerable.
	if sim.Invuln.Active() && data.Ticks/4%2 == 1 {
		return
	}
	draw(sim.PlayerRect(), cfg.World.Player)
	drawFacing(screen, sim, camX, camY)
}

// drawFacing marks the edge of the player box the player is facing.
func drawFacing(screen *ebiten.Image, sim *core.Sim, camX, camY float64) {
	r := sim.PlayerRect()
	d := sim.World.Player.Dir.Vec()
	c := sim.World.Player.Pos.Add(geom.Vec2{X: d.X * r.W / 2, Y: d.Y * r.H / 2})
	vector.FillRect(screen, float32(c.X-camX-1), float32(c.Y-camY-1), 2, 2, cfg.White, false)
}

// shade darkens c by the animation frame's brightness step.
func shade(c color.RGBA, frame int) color.RGBA {
	f := shades[frame%len(shades)]
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}

func animationsOf(e *ecs.ECS) *components.AnimationData {
	entry, ok := components.Animation.First(e.World)
	if !ok {
		return nil
	}
	return components.Animation.Get(entry)
}
