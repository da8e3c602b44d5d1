package leveldata

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/lafriks/go-tiled"
)

const (
	tmxTileLayer  = "tiles"
	tmxSolidLayer = "wg-tiles"
	tmxSpawnGroup = "Spawns"
)

// LoadTMX builds a level from a Tiled map. Sprite ids come from the "tiles"
// layer. A cell is solid when its tileset tile has a true "solid" property or
// when the "wg-tiles" layer has a tile there. Objects in the "Spawns" group
// become start markers; the kind is read from the object class, then type,
// then name. It takes an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadTMX(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth != levelMap.TileHeight {
		return nil, malformed(tmxPath, 0, "tiles are %dx%d, want square", levelMap.TileWidth, levelMap.TileHeight)
	}

	w, h := levelMap.Width, levelMap.Height
	tiles := make([]Tile, w*h)
	for i := range tiles {
		tiles[i].Sprite = -1
	}

	for _, layer := range levelMap.Layers {
		if layer.Name != tmxTileLayer && layer.Name != tmxSolidLayer {
			continue
		}
		if len(layer.Tiles) < w*h {
			return nil, malformed(tmxPath, 0, "layer %q has %d tiles, want %d", layer.Name, len(layer.Tiles), w*h)
		}
		for i := 0; i < w*h; i++ {
			lt := layer.Tiles[i]
			if lt.IsNil() {
				continue
			}
			if layer.Name == tmxSolidLayer {
				tiles[i].Solid = true
				continue
			}
			tiles[i].Sprite = int(lt.ID)
			if lt.Tileset == nil {
				continue
			}
			if tt, err := lt.Tileset.GetTilesetTile(lt.ID); err == nil && tt.Properties.GetBool("solid") {
				tiles[i].Solid = true
			}
		}
	}

	ts := float64(levelMap.TileWidth)
	var starts []Start
	for _, og := range levelMap.ObjectGroups {
		if og.Name != tmxSpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			kind := EntityKind(strings.ToLower(firstNonEmpty(o.Class, o.Type, o.Name)))
			if !kind.Valid() {
				continue
			}
			// Snap to the center of the cell the object sits in.
			col := int(o.X / ts)
			row := int(o.Y / ts)
			starts = append(starts, Start{
				Kind: kind,
				Pos:  geom.Vec2{X: (float64(col) + 0.5) * ts, Y: (float64(row) + 0.5) * ts},
			})
		}
	}

	name := strings.TrimSuffix(path.Base(tmxPath), path.Ext(tmxPath))
	lvl, err := NewLevel(name, w, h, ts, tiles, starts)
	if err != nil {
		return nil, &ConfigError{Source: tmxPath, Msg: "build grid", Err: err}
	}
	if _, err := lvl.PlayerStart(); err != nil {
		return nil, &ConfigError{Source: tmxPath, Msg: "validate", Err: ErrNoPlayerStart}
	}
	return lvl, nil
}

func firstNonEmpty(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}
	return ""
}

// LoadFile loads one level, picking the decoder by extension.
func LoadFile(fsys fs.FS, p string) (*Level, error) {
	switch path.Ext(p) {
	case ".tmx":
		return LoadTMX(fsys, p)
	case ".txt":
		f, err := fsys.Open(p)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", p, err)
		}
		defer f.Close()
		return Parse(p, f)
	}
	return nil, fmt.Errorf("load %s: unsupported level file", p)
}

// IsLevelFile reports whether a path has a level extension.
func IsLevelFile(p string) bool {
	ext := path.Ext(p)
	return ext == ".txt" || ext == ".tmx"
}

// LoadAll loads every .txt and .tmx level in levelsDir, sorted by file
// name, and returns the levels plus their paths.
func LoadAll(fsys fs.FS, levelsDir string) ([]*Level, []string, error) {
	entries, err := fs.ReadDir(fsys, levelsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", levelsDir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() || !IsLevelFile(e.Name()) {
			continue
		}
		paths = append(paths, path.Join(levelsDir, e.Name()))
	}
	if len(paths) == 0 {
		return nil, nil, fmt.Errorf("no level files found in %s", levelsDir)
	}
	sort.Strings(paths)

	levels := make([]*Level, 0, len(paths))
	for _, p := range paths {
		lvl, err := LoadFile(fsys, p)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", p, err)
		}
		levels = append(levels, lvl)
	}
	return levels, paths, nil
}
