package collision

import (
	"math"
	"slices"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/solarlune/resolv"
)

const (
	tagTarget = "target"
	tagProbe  = "probe"

	// maxIndexCells bounds the space along either axis. Groups spread wider
	// than this fall back to the pairwise scan.
	maxIndexCells = 4096

	// resolv maps an object's far edge with a one unit inset, so a sliver
	// overlap can land in no shared cell. Padding every object by one unit
	// keeps each registered cell range a superset of the true one.
	cellPad = 1.0
)

// Index buckets one rect group into a resolv space so a second group can be
// tested against it without the full pairwise scan. The contacts it
// returns are exactly the ones Generate returns, in the same order.
type Index struct {
	rects  []geom.Rect
	space  *resolv.Space
	origin geom.Vec2
	bounds geom.Rect
}

// NewIndex indexes b with square cells of the given size. Coordinates are
// shifted so the group's bounding box starts at the space origin; resolv
// ignores anything outside its space.
func NewIndex(b []geom.Rect, cell float64) *Index {
	idx := &Index{rects: slices.Clone(b)}
	if !(cell >= 1) {
		return idx
	}

	bounds, ok := union(b)
	if !ok {
		return idx
	}
	c := int(math.Ceil(cell))
	cols := math.Ceil((bounds.W+2*cellPad)/float64(c)) + 1
	rows := math.Ceil((bounds.H+2*cellPad)/float64(c)) + 1
	if cols > maxIndexCells || rows > maxIndexCells {
		return idx
	}

	idx.origin = bounds.Min().Sub(geom.Vec2{X: cellPad, Y: cellPad})
	idx.bounds = bounds
	idx.space = resolv.NewSpace(int(cols)*c, int(rows)*c, c, c)

	for i, r := range b {
		if r.IsEmpty() {
			continue
		}
		obj := idx.object(r, tagTarget)
		obj.Data = i
		idx.space.Add(obj)
	}
	return idx
}

// object places r, padded, in space coordinates.
func (idx *Index) object(r geom.Rect, tag string) *resolv.Object {
	return resolv.NewObject(
		r.X-idx.origin.X-cellPad,
		r.Y-idx.origin.Y-cellPad,
		r.W+2*cellPad,
		r.H+2*cellPad,
		tag,
	)
}

func union(rs []geom.Rect) (geom.Rect, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	found := false
	for _, r := range rs {
		if r.IsEmpty() {
			continue
		}
		if !r.IsFinite() {
			return geom.Rect{}, false
		}
		found = true
		minX = math.Min(minX, r.X)
		minY = math.Min(minY, r.Y)
		maxX = math.Max(maxX, r.X+r.W)
		maxY = math.Max(maxY, r.Y+r.H)
	}
	if !found {
		return geom.Rect{}, false
	}
	return geom.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, true
}

// Len is the number of indexed rects.
func (idx *Index) Len() int {
	return len(idx.rects)
}

// Contacts returns the contacts between every rect in a and the indexed
// group, ordered by AIndex then BIndex.
func (idx *Index) Contacts(a []geom.Rect) []Contact {
	if idx.space == nil {
		return Generate(a, idx.rects)
	}

	var out []Contact
	for ai, ar := range a {
		if ar.IsEmpty() {
			continue
		}
		if !ar.IsFinite() || !ar.Overlaps(idx.bounds) {
			// Nothing indexed can overlap a rect outside the group's bounds.
			continue
		}
		for _, bi := range idx.candidates(ar) {
			br := idx.rects[bi]
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

// candidates returns the sorted indices of rects sharing a cell with r.
func (idx *Index) candidates(r geom.Rect) []int {
	// Clip the probe to the indexed bounds so its cells stay inside the space.
	x0 := math.Max(r.X, idx.bounds.X)
	y0 := math.Max(r.Y, idx.bounds.Y)
	x1 := math.Min(r.X+r.W, idx.bounds.X+idx.bounds.W)
	y1 := math.Min(r.Y+r.H, idx.bounds.Y+idx.bounds.H)

	probe := idx.object(geom.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, tagProbe)
	idx.space.Add(probe)
	defer idx.space.Remove(probe)

	check := probe.Check(0, 0, tagTarget)
	if check == nil {
		return nil
	}
	seen := make(map[int]struct{}, len(check.Objects))
	out := make([]int, 0, len(check.Objects))
	for _, obj := range check.Objects {
		bi, ok := obj.Data.(int)
		if !ok {
			continue
		}
		if _, dup := seen[bi]; dup {
			continue
		}
		seen[bi] = struct{}{}
		out = append(out, bi)
	}
	slices.Sort(out)
	return out
}

// GenerateAuto uses the pairwise scan for small groups and an Index once
// len(a)*len(b) exceeds threshold. The result is the same either way.
func GenerateAuto(a, b []geom.Rect, cell float64, threshold int) []Contact {
	if len(a)*len(b) <= threshold {
		return Generate(a, b)
	}
	return NewIndex(b, cell).Contacts(a)
}
