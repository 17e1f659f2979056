package core

import (
	"errors"
	"fmt"
	"math"
)

// DefaultStep is the number of diagram units covered by one grid cell.
const DefaultStep = 10.0

// ErrBadStep indicates a grid step that is not a positive finite number.
var ErrBadStep = errors.New("core: grid step must be a positive finite number")

// ShapeID identifies an obstructing shape in the host diagram.
type ShapeID string

// ConnectorID identifies a connector (an edge line) in the host diagram.
type ConnectorID string

// Cell is an integer grid coordinate. It only ever lives inside the search.
type Cell struct {
	X, Y int
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Step returns the neighbouring cell in direction d. DirNone returns c.
func (c Cell) Step(d Dir) Cell {
	dx, dy := d.Delta()
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Manhattan returns |dx| + |dy| between c and o.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// Point is a continuous coordinate in diagram space. Y grows downwards.
type Point struct {
	X, Y float64
}

// String implements fmt.Stringer.
func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

// Grid carries the step used to convert between Point and Cell.
type Grid struct {
	Step float64
}

// NewGrid validates step and returns a Grid.
func NewGrid(step float64) (Grid, error) {
	if step <= 0 || math.IsNaN(step) || math.IsInf(step, 0) {
		return Grid{}, fmt.Errorf("%w: %v", ErrBadStep, step)
	}

	return Grid{Step: step}, nil
}

// DefaultGrid returns a Grid using DefaultStep.
func DefaultGrid() Grid {
	return Grid{Step: DefaultStep}
}

// ToCell quantizes p: cell = floor(p / step).
// Complexity: O(1).
func (g Grid) ToCell(p Point) Cell {
	return Cell{
		X: int(math.Floor(p.X / g.Step)),
		Y: int(math.Floor(p.Y / g.Step)),
	}
}

// ToPoint maps c back into diagram space: point = cell * step.
// Complexity: O(1).
func (g Grid) ToPoint(c Cell) Point {
	return Point{X: float64(c.X) * g.Step, Y: float64(c.Y) * g.Step}
}

// Units converts a distance in diagram units to whole cells, rounding down.
func (g Grid) Units(v float64) int {
	return int(math.Floor(v / g.Step))
}

// Bounds is the inclusive cell range searched for one route:
// 0 ≤ X ≤ MaxX and 0 ≤ Y ≤ MaxY.
type Bounds struct {
	MaxX, MaxY int
}

// Contains reports whether c lies inside b.
func (b Bounds) Contains(c Cell) bool {
	return c.X >= 0 && c.X <= b.MaxX && c.Y >= 0 && c.Y <= b.MaxY
}

// Diagonal returns an upper bound on the length of any straight scan
// inside b, in cells.
func (b Bounds) Diagonal() int {
	return b.MaxX + b.MaxY + 2
}

// Side is the boundary side of a shape an anchor sits on.
type Side int

const (
	// SideOther is any side the host does not distinguish.
	SideOther Side = iota
	// SideLeft is the left edge of the owning shape.
	SideLeft
	// SideTop is the top edge.
	SideTop
	// SideRight is the right edge.
	SideRight
	// SideBottom is the bottom edge.
	SideBottom
)

var sideNames = [...]string{"other", "left", "top", "right", "bottom"}

// String returns the lower-case side name.
func (s Side) String() string {
	if s < 0 || int(s) >= len(sideNames) {
		return "unknown"
	}

	return sideNames[s]
}

// ParseSide is the inverse of Side.String. Unknown names map to SideOther.
func ParseSide(name string) Side {
	for i, n := range sideNames {
		if n == name {
			return Side(i)
		}
	}

	return SideOther
}

// Rect is an axis-aligned rectangle in diagram space.
type Rect struct {
	X, Y, W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the midpoint of r.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains reports whether p lies inside r or on its border.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// SideMidpoint returns the middle of the given edge of r.
// SideOther yields the center.
func (r Rect) SideMidpoint(s Side) Point {
	c := r.Center()
	switch s {
	case SideLeft:
		return Point{X: r.X, Y: c.Y}
	case SideRight:
		return Point{X: r.Right(), Y: c.Y}
	case SideTop:
		return Point{X: c.X, Y: r.Y}
	case SideBottom:
		return Point{X: c.X, Y: r.Bottom()}
	default:
		return c
	}
}

// Shape is an obstructing shape: its identifier and its extent.
type Shape struct {
	ID     ShapeID
	Bounds Rect
}

// AnchorRef names the attachment point of one connector end.
type AnchorRef struct {
	Shape ShapeID
	Side  Side
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
