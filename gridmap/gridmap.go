package gridmap

import (
	"github.com/katalvlaran/orthoroute/core"
)

// New builds a Mapper over grid. Returns ErrOptionViolation for invalid options.
func New(grid core.Grid, opts ...Option) (*Mapper, error) {
	if _, err := core.NewGrid(grid.Step); err != nil {
		return nil, err
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return &Mapper{grid: grid, opts: cfg}, nil
}

// Grid returns the grid the Mapper quantizes with.
func (m *Mapper) Grid() core.Grid {
	return m.grid
}

// Bounds returns the cell bounds covering every shape plus the margin.
// Complexity: O(len(shapes)).
func (m *Mapper) Bounds(shapes []core.Shape) core.Bounds {
	pad := float64(m.opts.Margin) * m.grid.Step
	var b core.Bounds
	for _, s := range shapes {
		x := m.grid.Units(s.Bounds.Right() + pad)
		y := m.grid.Units(s.Bounds.Bottom() + pad)
		if x > b.MaxX {
			b.MaxX = x
		}
		if y > b.MaxY {
			b.MaxY = y
		}
	}

	return b
}

// Endpoint nudges anchor p away from its shape and quantizes it.
// Left anchors move by −offset along X, every other side by +offset, unless
// WithNormalOffset is set, in which case top and bottom anchors move along Y.
// The grid starts at the origin, so a nudge past it is clamped to row or
// column 0.
// Complexity: O(1).
func (m *Mapper) Endpoint(p core.Point, side core.Side) core.Cell {
	off := m.opts.AnchorOffset
	switch {
	case side == core.SideLeft:
		p.X -= off
	case m.opts.NormalOffset && side == core.SideTop:
		p.Y -= off
	case m.opts.NormalOffset && side == core.SideBottom:
		p.Y += off
	default:
		p.X += off
	}

	c := m.grid.ToCell(p)
	c.X = max(c.X, 0)
	c.Y = max(c.Y, 0)

	return c
}

// Map computes the bounds and the start/goal cells of one connector.
func (m *Mapper) Map(shapes []core.Shape, src core.Point, srcSide core.Side, dst core.Point, dstSide core.Side) Mapping {
	return Mapping{
		Bounds: m.Bounds(shapes),
		Start:  m.Endpoint(src, srcSide),
		Goal:   m.Endpoint(dst, dstSide),
	}
}
