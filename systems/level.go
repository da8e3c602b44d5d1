package systems

import (
	"github.com/automoto/tileworld/components"
	cfg "github.com/automoto/tileworld/config"
	"github.com/automoto/tileworld/shared/leveldata"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawLevel draws the active level's tiles through the camera. The tiles
// are rendered once into a cached image that is rebuilt when the sim moves
// to another level or the level is reloaded from disk.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.World.Background)

	data, ok := GetSim(e)
	if !ok {
		return
	}
	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	camX, camY, ok := cameraView(e)
	if !ok {
		return
	}

	levelData := components.Level.Get(levelEntry)
	current := data.Sim.World.Level()
	if levelData.Source != current || levelData.Image == nil {
		if levelData.Image != nil {
			levelData.Image.Deallocate()
		}
		levelData.Image = renderTiles(current)
		levelData.Source = current
	}

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(-camX, -camY)
	screen.DrawImage(levelData.Image, opts)
}

// renderTiles paints every tile of lvl as a flat colored square.
func renderTiles(lvl *leveldata.Level) *ebiten.Image {
	size := lvl.PixelSize()
	img := ebiten.NewImage(max(int(size.X), 1), max(int(size.Y), 1))
	ts := float32(lvl.TileSize)
	for row := range lvl.Height {
		for col := range lvl.Width {
			tile, _ := lvl.Tile(col, row)
			if tile.Sprite < 0 && !tile.Solid {
				continue
			}
			c := cfg.World.Solid
			if !tile.Solid {
				floor := cfg.World.Floor
				c = floor[tile.Sprite%len(floor)]
			}
			vector.FillRect(img, float32(col)*ts, float32(row)*ts, ts, ts, c, false)
		}
	}
	return img
}

// invalidateLevelImage drops the cached tile image so the next draw
// rebuilds it.
func invalidateLevelImage(w donburi.World) {
	entry, ok := components.Level.First(w)
	if !ok {
		return
	}
	levelData := components.Level.Get(entry)
	if levelData.Image != nil {
		levelData.Image.Deallocate()
	}
	levelData.Image = nil
	levelData.Source = nil
}
