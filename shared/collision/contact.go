// Package collision generates overlap contacts between rectangle groups and
// between rectangles and solid tiles, and resolves them by minimum
// translation, deepest first.
package collision

import (
	"iter"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/shared/leveldata"
)

// TileIndex is the BIndex of every tile contact. Resolution only needs the
// tile rect, not which tile it was.
const TileIndex = -1

// Contact is one detected overlap. Displacement holds the raw, unsigned
// overlap extents before any correction is chosen.
type Contact struct {
	Displacement geom.Vec2
	AIndex       int
	ARect        geom.Rect
	BIndex       int
	BRect        geom.Rect
}

// IsTile reports whether the contact is against the level grid.
func (c Contact) IsTile() bool {
	return c.BIndex == TileIndex
}

// TileSource is the grid query the tile generator borrows.
// *leveldata.Level satisfies it.
type TileSource interface {
	TilesWithin(r geom.Rect) iter.Seq[leveldata.TileHit]
}

// Generate tests every pair across a and b and returns one contact per
// overlapping pair, ordered by AIndex then BIndex.
func Generate(a, b []geom.Rect) []Contact {
	var out []Contact
	for ai, ar := range a {
		if ar.IsEmpty() {
			continue
		}
		for bi, br := range b {
			if ov, ok := ar.Overlap(br); ok {
				out = append(out, Contact{
					Displacement: ov,
					AIndex:       ai,
					ARect:        ar,
					BIndex:       bi,
					BRect:        br,
				})
			}
		}
	}
	return out
}

// GenerateTiles returns one contact per solid tile overlapping each rect
// in a. Tiles come in the grid's row-major order.
func GenerateTiles(a []geom.Rect, grid TileSource) []Contact {
	if grid == nil {
		return nil
	}
	var out []Contact
	for ai, ar := range a {
		for hit := range grid.TilesWithin(ar) {
			if !hit.Tile.Solid {
				continue
			}
			if ov, ok := ar.Overlap(hit.Rect); ok {
				out = append(out, Contact{
					Displacement: ov,
					AIndex:       ai,
					ARect:        ar,
					BIndex:       TileIndex,
					BRect:        hit.Rect,
				})
			}
		}
	}
	return out
}
