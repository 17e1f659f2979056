package render

import (
	"errors"
	"math"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/diagram"
)

// ErrEmptyFrame is returned when a Frame has nothing to draw.
var ErrEmptyFrame = errors.New("render: nothing to draw")

// Polyline is the route of one connector.
type Polyline struct {
	ID     core.ConnectorID
	Points []core.Point
}

// Frame is what a renderer draws.
type Frame struct {
	Shapes []core.Shape
	Routes []Polyline
}

// FrameOf snapshots the shapes and stored routes of d. Connectors without a
// route are skipped.
func FrameOf(d *diagram.Diagram) Frame {
	f := Frame{Shapes: d.Shapes()}
	for _, id := range d.ConnectorIDs() {
		if pts, ok := d.Route(id); ok {
			f.Routes = append(f.Routes, Polyline{ID: id, Points: pts})
		}
	}

	return f
}

// extent returns the bounding box of everything in f.
func (f Frame) extent() (core.Rect, error) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	add := func(x, y float64) {
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	for _, s := range f.Shapes {
		add(s.Bounds.X, s.Bounds.Y)
		add(s.Bounds.Right(), s.Bounds.Bottom())
	}
	for _, r := range f.Routes {
		for _, p := range r.Points {
			add(p.X, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return core.Rect{}, ErrEmptyFrame
	}

	return core.Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}, nil
}
