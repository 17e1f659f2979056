package core

// Axis is the line a Dir moves along.
type Axis int

const (
	// AxisNone belongs to DirNone only.
	AxisNone Axis = iota
	// AxisX is horizontal movement.
	AxisX
	// AxisY is vertical movement.
	AxisY
)

// Dir is one of the four grid headings, or DirNone for "not moving yet".
// Diagonal headings do not exist.
type Dir int8

const (
	// DirNone marks a search node that has no predecessor.
	DirNone Dir = iota
	// DirNorth decreases Y.
	DirNorth
	// DirEast increases X.
	DirEast
	// DirSouth increases Y.
	DirSouth
	// DirWest decreases X.
	DirWest
)

// Headings lists the four movement directions in a fixed order.
var Headings = [4]Dir{DirNorth, DirEast, DirSouth, DirWest}

var dirDeltas = [...][2]int{{0, 0}, {0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var dirNames = [...]string{"none", "north", "east", "south", "west"}

// Delta returns the unit offset of d.
func (d Dir) Delta() (dx, dy int) {
	v := dirDeltas[d]
	return v[0], v[1]
}

// Axis returns the axis d moves along.
func (d Dir) Axis() Axis {
	switch d {
	case DirEast, DirWest:
		return AxisX
	case DirNorth, DirSouth:
		return AxisY
	default:
		return AxisNone
	}
}

// Opposite returns the reverse heading. DirNone is its own opposite.
func (d Dir) Opposite() Dir {
	switch d {
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	case DirEast:
		return DirWest
	case DirWest:
		return DirEast
	default:
		return DirNone
	}
}

// Turns returns the two headings perpendicular to d.
// For DirNone it returns DirNone twice.
func (d Dir) Turns() [2]Dir {
	switch d.Axis() {
	case AxisX:
		return [2]Dir{DirNorth, DirSouth}
	case AxisY:
		return [2]Dir{DirEast, DirWest}
	default:
		return [2]Dir{DirNone, DirNone}
	}
}

// String implements fmt.Stringer.
func (d Dir) String() string {
	if d < 0 || int(d) >= len(dirNames) {
		return "invalid"
	}

	return dirNames[d]
}

// DirBetween returns the heading that leads from a to an orthogonally
// adjacent or aligned cell b. ok is false when a == b or the two cells
// share neither row nor column.
func DirBetween(a, b Cell) (d Dir, ok bool) {
	switch {
	case a == b:
		return DirNone, false
	case a.Y == b.Y && b.X > a.X:
		return DirEast, true
	case a.Y == b.Y:
		return DirWest, true
	case a.X == b.X && b.Y > a.Y:
		return DirSouth, true
	case a.X == b.X:
		return DirNorth, true
	default:
		return DirNone, false
	}
}
