package simplify

import (
	"math"

	"github.com/katalvlaran/orthoroute/core"
)

// Options tunes Simplify.
type Options struct {
	// GridEndpoints emits grid.ToPoint of the first and last raw cells, each
	// joined to its true anchor by an axis-aligned elbow. Default true.
	GridEndpoints bool
}

// Option configures Simplify.
type Option func(*Options)

// DefaultOptions keeps the quantized endpoints.
func DefaultOptions() Options {
	return Options{GridEndpoints: true}
}

// WithAnchorsOnly drops the quantized start and goal points, leaving only
// the true anchors and the interior bends.
func WithAnchorsOnly() Option {
	return func(o *Options) {
		o.GridEndpoints = false
	}
}

// Simplify turns raw, a search path ordered goal → start, into the route
// trueStart → bends → trueEnd. With GridEndpoints every segment of the result
// is horizontal or vertical, even for anchors off the grid.
func Simplify(grid core.Grid, trueStart core.Point, raw []core.Cell, trueEnd core.Point, opts ...Option) []core.Point {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	out := make([]core.Point, 0, len(raw)/2+4)
	out = append(out, trueStart)

	n := len(raw)
	if cfg.GridEndpoints && n > 0 {
		first := grid.ToPoint(raw[n-1])
		out = append(out, elbow(trueStart, first), first)
	}
	// raw[n-1] is the start cell; walk towards raw[0], the goal.
	for i := n - 2; i >= 1; i-- {
		prev, curr, next := raw[i+1], raw[i], raw[i-1]
		if isBend(prev, curr, next) {
			out = append(out, grid.ToPoint(curr))
		}
	}
	if cfg.GridEndpoints && n > 0 {
		last := grid.ToPoint(raw[0])
		out = append(out, last, elbow(trueEnd, last))
	}
	out = append(out, trueEnd)

	return Collapse(out)
}

// elbow is the corner of the leg between anchor a and grid point g. The
// segment touching a runs along the axis on which a and g are further apart,
// which is the axis the anchor was nudged along.
func elbow(a, g core.Point) core.Point {
	if math.Abs(g.X-a.X) >= math.Abs(g.Y-a.Y) {
		return core.Point{X: g.X, Y: a.Y}
	}

	return core.Point{X: a.X, Y: g.Y}
}

func isBend(prev, curr, next core.Cell) bool {
	return (prev.X == curr.X && curr.X != next.X) ||
		(prev.Y == curr.Y && curr.Y != next.Y)
}

// Collapse returns points without consecutive duplicates and without interior
// points that share X or Y with both kept neighbours. The first and last
// points survive unless they duplicate a neighbour. points is not modified.
func Collapse(points []core.Point) []core.Point {
	out := make([]core.Point, 0, len(points))
	for _, p := range points {
		for {
			k := len(out)
			if k > 0 && out[k-1] == p {
				break
			}
			if k >= 2 && collinear(out[k-2], out[k-1], p) {
				out = out[:k-1]
				continue
			}
			out = append(out, p)
			break
		}
	}

	return out
}

// collinear reports whether a, b and c lie on one horizontal or vertical line.
func collinear(a, b, c core.Point) bool {
	return (a.X == b.X && b.X == c.X) || (a.Y == b.Y && b.Y == c.Y)
}
