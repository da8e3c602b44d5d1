package geom

// Dir is a cardinal facing.
type Dir int

const (
	N Dir = iota
	E
	S
	W
)

// Dirs lists every direction in enum order; a random pick indexes into it.
var Dirs = [...]Dir{N, E, S, W}

// Vec returns the unit vector for d. North is up the screen, so y is negative.
func (d Dir) Vec() Vec2 {
	switch d {
	case N:
		return Vec2{X: 0, Y: -1}
	case E:
		return Vec2{X: 1, Y: 0}
	case S:
		return Vec2{X: 0, Y: 1}
	case W:
		return Vec2{X: -1, Y: 0}
	}
	return Zero
}

func (d Dir) String() string {
	switch d {
	case N:
		return "N"
	case E:
		return "E"
	case S:
		return "S"
	case W:
		return "W"
	}
	return "?"
}

// DirFromAxis picks the facing for a movement intent. Vertical input wins
// over horizontal. ok is false for a zero intent.
func DirFromAxis(v Vec2) (d Dir, ok bool) {
	switch {
	case v.Y < 0:
		return N, true
	case v.Y > 0:
		return S, true
	case v.X > 0:
		return E, true
	case v.X < 0:
		return W, true
	}
	return S, false
}
