package systems

import (
	"fmt"

	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/core"
	"github.com/automoto/tileworld/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawHUD renders the variant's overlay in the top corners: hearts, xp and
// score when fighting, the stopwatch in the maze, actor counts in the arena.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	data, ok := GetSim(e)
	if !ok {
		return
	}
	sim := data.Sim
	h := cfg.HUD

	if sim.Rules.ContactDamage || sim.Rules.Attack {
		drawHearts(screen, sim.Health)
	}
	if sim.Rules.Upgrades {
		drawXPBar(screen, sim)
	}

	var right string
	switch {
	case sim.Rules.Stopwatch:
		right = core.FormatStopwatch(sim.ElapsedDuration())
	case sim.Rules.ManualSpawns:
		right = fmt.Sprintf("E:%d K:%d", sim.World.AliveEnemies(), len(sim.World.Knights))
	default:
		right = fmt.Sprintf("%d", sim.Score)
	}
	w := textWidth(right, fonts.Regular)
	x := screen.Bounds().Dx() - w - int(h.Margin)
	vector.FillRect(screen, float32(x-2), float32(h.Margin-1), float32(w+4), 10, h.TextBackColor, false)
	drawText(screen, right, fonts.Regular, x, int(h.Margin)+7, h.TextColor)

	if sim.Rules.ExitAdvances {
		level := fmt.Sprintf("%d/%d", sim.World.CurrentLevel+1, len(sim.World.Levels))
		drawText(screen, level, fonts.Small, int(h.Margin), int(h.Margin)+6, h.TextColor)
	}
}

// drawHearts draws one square per health point.
func drawHearts(screen *ebiten.Image, health int) {
	h := cfg.HUD
	for i := range max(health, 0) {
		x := h.Margin + float64(i)*(h.HeartSize+h.HeartGap)
		vector.FillRect(screen, float32(x), float32(h.Margin), float32(h.HeartSize), float32(h.HeartSize), h.HeartColor, false)
	}
}

// drawXPBar shows progress to the next level-up under the hearts, with the
// current rank beside it.
func drawXPBar(screen *ebiten.Image, sim *core.Sim) {
	h := cfg.HUD
	y := h.Margin + h.HeartSize + h.HeartGap
	vector.FillRect(screen, float32(h.Margin), float32(y), float32(h.XPBarWidth), float32(h.XPBarHeight), h.XPBgColor, false)

	ratio := 0.0
	if sim.Params.LevelUpXP > 0 {
		ratio = float64(sim.XP) / float64(sim.Params.LevelUpXP)
	}
	ratio = min(max(ratio, 0), 1)
	vector.FillRect(screen, float32(h.Margin), float32(y), float32(h.XPBarWidth*ratio), float32(h.XPBarHeight), h.XPFgColor, false)

	rank := fmt.Sprintf("Lv %d", sim.Rank+1)
	drawText(screen, rank, fonts.Small, int(h.Margin+h.XPBarWidth)+3, int(y+h.XPBarHeight)+1, h.TextColor)
}
