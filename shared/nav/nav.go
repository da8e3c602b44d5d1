package nav

import (
	"slices"

	astar "github.com/beefsack/go-astar"

	"github.com/automoto/tileworld/shared/geom"
	"github.com/automoto/tileworld/shared/leveldata"
)

// nearestSearchRadius bounds the ring search for a walkable cell when a
// path endpoint sits inside a wall.
const nearestSearchRadius = 10

// Grid is the walkable map of one level, one node per tile.
type Grid struct {
	Width, Height int
	CellSize      float64
	Nodes         [][]*Node
}

// Node is one tile of the grid. It implements astar.Pather.
type Node struct {
	X, Y     int
	Walkable bool
	grid     *Grid
}

var neighborOffsets = [...]struct{ dx, dy int }{
	{0, -1}, {1, 0}, {0, 1}, {-1, 0},
}

// PathNeighbors returns the open tiles sharing an edge with n. Diagonals
// are left out so a path never cuts a wall corner.
func (n *Node) PathNeighbors() []astar.Pather {
	neighbors := make([]astar.Pather, 0, len(neighborOffsets))
	for _, d := range neighborOffsets {
		if next := n.grid.node(n.X+d.dx, n.Y+d.dy); next != nil && next.Walkable {
			neighbors = append(neighbors, next)
		}
	}
	return neighbors
}

func (n *Node) PathNeighborCost(to astar.Pather) float64 {
	return 1
}

// PathEstimatedCost is the Manhattan distance, exact on an open 4-way grid.
func (n *Node) PathEstimatedCost(to astar.Pather) float64 {
	t := to.(*Node)
	return float64(absInt(t.X-n.X) + absInt(t.Y-n.Y))
}

// NewGrid builds the nav grid of a level. Open tiles are walkable.
func NewGrid(lvl *leveldata.Level) *Grid {
	g := &Grid{
		Width:    lvl.Width,
		Height:   lvl.Height,
		CellSize: lvl.TileSize,
		Nodes:    make([][]*Node, lvl.Height),
	}
	for y := range g.Nodes {
		g.Nodes[y] = make([]*Node, lvl.Width)
		for x := range g.Nodes[y] {
			tile, _ := lvl.Tile(x, y)
			g.Nodes[y][x] = &Node{X: x, Y: y, Walkable: !tile.Solid, grid: g}
		}
	}
	return g
}

func (g *Grid) node(x, y int) *Node {
	if x < 0 || x >= g.Width || y < 0 || y >= g.Height {
		return nil
	}
	return g.Nodes[y][x]
}

func (g *Grid) cellOf(p geom.Vec2) (int, int) {
	x := clampInt(int(p.X/g.CellSize), 0, g.Width-1)
	y := clampInt(int(p.Y/g.CellSize), 0, g.Height-1)
	return x, y
}

// FindPath returns the tile centers leading from the tile holding from to
// the tile holding to, both included. Endpoints inside walls snap to the
// nearest open tile. It returns nil when no path exists.
func (g *Grid) FindPath(from, to geom.Vec2) []geom.Vec2 {
	if g.Width == 0 || g.Height == 0 {
		return nil
	}
	start := g.walkableNear(g.cellOf(from))
	goal := g.walkableNear(g.cellOf(to))
	if start == nil || goal == nil {
		return nil
	}
	if start == goal {
		return []geom.Vec2{g.CellCenter(start.X, start.Y)}
	}

	path, _, found := astar.Path(start, goal)
	if !found {
		return nil
	}
	// go-astar returns the goal first.
	slices.Reverse(path)

	points := make([]geom.Vec2, len(path))
	for i, p := range path {
		n := p.(*Node)
		points[i] = g.CellCenter(n.X, n.Y)
	}
	return points
}

func (g *Grid) walkableNear(x, y int) *Node {
	if n := g.node(x, y); n != nil && n.Walkable {
		return n
	}
	for radius := 1; radius < nearestSearchRadius; radius++ {
		for dy := -radius; dy <= radius; dy++ {
			for dx := -radius; dx <= radius; dx++ {
				if n := g.node(x+dx, y+dy); n != nil && n.Walkable {
					return n
				}
			}
		}
	}
	return nil
}

// CellCenter converts grid coordinates to the world position of the tile
// center.
func (g *Grid) CellCenter(x, y int) geom.Vec2 {
	return geom.Vec2{
		X: float64(x)*g.CellSize + g.CellSize/2,
		Y: float64(y)*g.CellSize + g.CellSize/2,
	}
}

func clampInt(v, minVal, maxVal int) int {
	return max(minVal, min(maxVal, v))
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
