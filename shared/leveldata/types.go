// Package leveldata holds the immutable tile grid a level is made of and
// the loaders that build it from text maps or TMX files. It has no
// dependencies on ebitengine or donburi; pure data only.
package leveldata

import (
	"fmt"
	"iter"
	"math"

	"github.com/automoto/tileworld/shared/geom"
)

// DefaultTileSize is the tile edge length in world units when a level does
// not declare one.
const DefaultTileSize = 16

// Tile describes one grid cell. Sprite < 0 draws nothing.
type Tile struct {
	Solid  bool
	Sprite int
}

// EntityKind names what a start marker spawns.
type EntityKind string

const (
	KindPlayer EntityKind = "player"
	KindEnemy  EntityKind = "enemy"
	KindKnight EntityKind = "knight"
	KindExit   EntityKind = "exit"
)

// Valid reports whether k is one of the known kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case KindPlayer, KindEnemy, KindKnight, KindExit:
		return true
	}
	return false
}

// Start is a spawn marker. Pos is the center of the marked tile.
type Start struct {
	Kind EntityKind
	Pos  geom.Vec2
}

// TileHit is one entry produced by TilesWithin.
type TileHit struct {
	Col, Row int
	Rect     geom.Rect
	Tile     Tile
}

// Level is a width x height grid of tiles plus the start markers found at
// load time. It is never mutated after construction, so concurrent reads
// are safe.
type Level struct {
	Name     string
	Width    int
	Height   int
	TileSize float64

	tiles       []Tile
	starts      []Start
	spriteCount int
}

// NewLevel builds a level from row-major tiles. It copies its inputs.
func NewLevel(name string, width, height int, tileSize float64, tiles []Tile, starts []Start) (*Level, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("level %q: size %dx%d: %w", name, width, height, ErrMalformed)
	}
	if !(tileSize > 0) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("level %q: tile size %v: %w", name, tileSize, ErrMalformed)
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("level %q: %d tiles for a %dx%d grid: %w", name, len(tiles), width, height, ErrMalformed)
	}

	l := &Level{
		Name:     name,
		Width:    width,
		Height:   height,
		TileSize: tileSize,
		tiles:    append([]Tile(nil), tiles...),
		starts:   append([]Start(nil), starts...),
	}
	for _, t := range l.tiles {
		if t.Sprite >= 0 {
			l.spriteCount++
		}
	}
	return l, nil
}

// Tile returns the tile at a grid coordinate.
func (l *Level) Tile(col, row int) (Tile, bool) {
	if col < 0 || row < 0 || col >= l.Width || row >= l.Height {
		return Tile{}, false
	}
	return l.tiles[row*l.Width+col], true
}

// TileRect returns the world rect covered by a grid cell.
func (l *Level) TileRect(col, row int) geom.Rect {
	ts := l.TileSize
	return geom.Rect{X: float64(col) * ts, Y: float64(row) * ts, W: ts, H: ts}
}

// TileAt returns the tile under a world position. ok is false when p lies
// outside the grid; callers treat that as "cannot move there".
func (l *Level) TileAt(p geom.Vec2) (Tile, bool) {
	if !p.IsFinite() {
		return Tile{}, false
	}
	fc := math.Floor(p.X / l.TileSize)
	fr := math.Floor(p.Y / l.TileSize)
	if fc < 0 || fr < 0 || fc >= float64(l.Width) || fr >= float64(l.Height) {
		return Tile{}, false
	}
	return l.Tile(int(fc), int(fr))
}

// IsOpen reports whether p is inside the grid and on a non-solid tile.
func (l *Level) IsOpen(p geom.Vec2) bool {
	t, ok := l.TileAt(p)
	return ok && !t.Solid
}

// TilesWithin yields every tile whose cell overlaps r, clamped to the grid,
// in row-major order. Each call starts a fresh walk.
func (l *Level) TilesWithin(r geom.Rect) iter.Seq[TileHit] {
	return func(yield func(TileHit) bool) {
		if r.IsEmpty() || !r.IsFinite() {
			return
		}
		c0, c1 := l.span(r.X, r.W, l.Width)
		r0, r1 := l.span(r.Y, r.H, l.Height)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				hit := TileHit{
					Col:  col,
					Row:  row,
					Rect: l.TileRect(col, row),
					Tile: l.tiles[row*l.Width+col],
				}
				if !yield(hit) {
					return
				}
			}
		}
	}
}

// span converts [pos, pos+size) into a clamped half-open cell range.
func (l *Level) span(pos, size float64, limit int) (int, int) {
	lo := math.Floor(pos / l.TileSize)
	hi := math.Ceil((pos + size) / l.TileSize)
	lo = math.Max(lo, 0)
	hi = math.Min(hi, float64(limit))
	if hi <= lo {
		return 0, 0
	}
	return int(lo), int(hi)
}

// SolidWithin is TilesWithin filtered to solid tiles.
func (l *Level) SolidWithin(r geom.Rect) iter.Seq[TileHit] {
	return func(yield func(TileHit) bool) {
		for hit := range l.TilesWithin(r) {
			if hit.Tile.Solid && !yield(hit) {
				return
			}
		}
	}
}

// Starts returns a copy of every start marker in load order.
func (l *Level) Starts() []Start {
	return append([]Start(nil), l.starts...)
}

// StartsOf returns the start positions of one kind.
func (l *Level) StartsOf(kind EntityKind) []geom.Vec2 {
	var out []geom.Vec2
	for _, s := range l.starts {
		if s.Kind == kind {
			out = append(out, s.Pos)
		}
	}
	return out
}

// PlayerStart returns the first player marker.
func (l *Level) PlayerStart() (geom.Vec2, error) {
	for _, s := range l.starts {
		if s.Kind == KindPlayer {
			return s.Pos, nil
		}
	}
	return geom.Zero, fmt.Errorf("level %q: %w", l.Name, ErrNoPlayerStart)
}

// SpriteCount is the number of tiles that draw something.
func (l *Level) SpriteCount() int {
	return l.spriteCount
}

// PixelSize is the grid size in world units.
func (l *Level) PixelSize() geom.Vec2 {
	return geom.Vec2{X: float64(l.Width) * l.TileSize, Y: float64(l.Height) * l.TileSize}
}

// Bounds is the world rect the grid covers.
func (l *Level) Bounds() geom.Rect {
	sz := l.PixelSize()
	return geom.Rect{W: sz.X, H: sz.Y}
}
