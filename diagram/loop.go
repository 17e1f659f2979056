package diagram

import (
	"fmt"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/simplify"
)

// DefaultLoopReach is how far, in diagram units, a self-connection loop
// stands off its shape.
const DefaultLoopReach = 20.0

// LoopRouter routes self-connections clockwise around their shape, Reach
// units away from it.
type LoopRouter struct {
	Diagram *Diagram
	Reach   float64
}

// clockwise lists sides in clockwise order for a Y-down diagram.
var clockwise = [4]core.Side{core.SideTop, core.SideRight, core.SideBottom, core.SideLeft}

// SelfRoute returns anchor → standoff → corners → standoff → anchor. Anchors
// on the same side produce a full loop. SideOther is treated as SideRight.
func (l LoopRouter) SelfRoute(id core.ConnectorID) ([]core.Point, error) {
	if l.Diagram == nil {
		return nil, fmt.Errorf("%w: loop router has no diagram", ErrBadScene)
	}
	src, dst, err := l.Diagram.Endpoints(id)
	if err != nil {
		return nil, err
	}
	if src.Shape != dst.Shape {
		return nil, fmt.Errorf("%w: connector %s is not a self-connection", ErrBadScene, id)
	}
	s, err := l.Diagram.Shape(src.Shape)
	if err != nil {
		return nil, err
	}
	reach := l.Reach
	if reach <= 0 {
		reach = DefaultLoopReach
	}

	outer := core.Rect{
		X: s.Bounds.X - reach,
		Y: s.Bounds.Y - reach,
		W: s.Bounds.W + 2*reach,
		H: s.Bounds.H + 2*reach,
	}
	from, to := loopSide(src.Side), loopSide(dst.Side)
	a := s.Bounds.SideMidpoint(from)
	b := s.Bounds.SideMidpoint(to)

	pts := []core.Point{a, standoff(outer, from, a)}
	i := sideIndex(from)
	for {
		pts = append(pts, corner(outer, clockwise[i]))
		i = (i + 1) % len(clockwise)
		if clockwise[i] == to {
			break
		}
	}
	pts = append(pts, standoff(outer, to, b), b)

	return simplify.Collapse(pts), nil
}

func loopSide(s core.Side) core.Side {
	if s == core.SideOther {
		return core.SideRight
	}
	return s
}

func sideIndex(s core.Side) int {
	for i, c := range clockwise {
		if c == s {
			return i
		}
	}
	return 1
}

// standoff projects anchor p onto side s of the outer rectangle.
func standoff(outer core.Rect, s core.Side, p core.Point) core.Point {
	switch s {
	case core.SideTop:
		return core.Point{X: p.X, Y: outer.Y}
	case core.SideBottom:
		return core.Point{X: p.X, Y: outer.Bottom()}
	case core.SideLeft:
		return core.Point{X: outer.X, Y: p.Y}
	default:
		return core.Point{X: outer.Right(), Y: p.Y}
	}
}

// corner returns the corner reached when leaving side s clockwise.
func corner(outer core.Rect, s core.Side) core.Point {
	switch s {
	case core.SideTop:
		return core.Point{X: outer.Right(), Y: outer.Y}
	case core.SideRight:
		return core.Point{X: outer.Right(), Y: outer.Bottom()}
	case core.SideBottom:
		return core.Point{X: outer.X, Y: outer.Bottom()}
	default:
		return core.Point{X: outer.X, Y: outer.Y}
	}
}
