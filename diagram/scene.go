package diagram

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/orthoroute/core"
)

// Scene is the YAML form of a diagram.
type Scene struct {
	Step       float64          `yaml:"step,omitempty"`
	Shapes     []SceneShape     `yaml:"shapes"`
	Connectors []SceneConnector `yaml:"connectors,omitempty"`
}

// SceneShape is one shape of a Scene.
type SceneShape struct {
	ID string  `yaml:"id"`
	X  float64 `yaml:"x"`
	Y  float64 `yaml:"y"`
	W  float64 `yaml:"w"`
	H  float64 `yaml:"h"`
}

// SceneAnchor is one connector end of a Scene. An omitted side picks the
// side facing the other end's shape; "other" anchors at the shape center.
type SceneAnchor struct {
	Shape string `yaml:"shape"`
	Side  string `yaml:"side,omitempty"`
}

// SceneConnector is one connector of a Scene.
type SceneConnector struct {
	ID   string      `yaml:"id,omitempty"`
	From SceneAnchor `yaml:"from"`
	To   SceneAnchor `yaml:"to"`
}

// LoadScene decodes a YAML scene from r and builds the Diagram and Grid it
// describes. A missing or zero step means core.DefaultStep. Unknown fields
// are rejected.
func LoadScene(r io.Reader) (*Diagram, core.Grid, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var sc Scene
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, core.Grid{}, fmt.Errorf("%w: empty document", ErrBadScene)
		}
		return nil, core.Grid{}, fmt.Errorf("%w: %v", ErrBadScene, err)
	}

	return sc.Build()
}

// Build turns sc into a Diagram and Grid.
func (sc Scene) Build() (*Diagram, core.Grid, error) {
	grid := core.DefaultGrid()
	if sc.Step != 0 {
		g, err := core.NewGrid(sc.Step)
		if err != nil {
			return nil, core.Grid{}, fmt.Errorf("%w: %v", ErrBadScene, err)
		}
		grid = g
	}

	d := New()
	rects := make(map[string]core.Rect, len(sc.Shapes))
	for _, s := range sc.Shapes {
		rects[s.ID] = core.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H}
	}
	side := func(end, other SceneAnchor) core.Side {
		if end.Side != "" {
			return core.ParseSide(end.Side)
		}
		from, ok1 := rects[end.Shape]
		to, ok2 := rects[other.Shape]
		if !ok1 || !ok2 {
			return core.SideOther
		}
		return Facing(from, to)
	}
	for _, s := range sc.Shapes {
		err := d.AddShape(core.Shape{
			ID:     core.ShapeID(s.ID),
			Bounds: core.Rect{X: s.X, Y: s.Y, W: s.W, H: s.H},
		})
		if err != nil {
			return nil, core.Grid{}, err
		}
	}
	for _, c := range sc.Connectors {
		_, err := d.AddConnector(Connector{
			ID:   core.ConnectorID(c.ID),
			From: core.AnchorRef{Shape: core.ShapeID(c.From.Shape), Side: side(c.From, c.To)},
			To:   core.AnchorRef{Shape: core.ShapeID(c.To.Shape), Side: side(c.To, c.From)},
		})
		if err != nil {
			return nil, core.Grid{}, err
		}
	}

	return d, grid, nil
}

// Facing returns the side of from that looks towards to. The axis on which
// the centers are further apart wins; ties go vertical. Concentric shapes
// face right.
func Facing(from, to core.Rect) core.Side {
	a, b := from.Center(), to.Center()
	dx, dy := b.X-a.X, b.Y-a.Y
	switch {
	case dx == 0 && dy == 0:
		return core.SideRight
	case math.Abs(dx) > math.Abs(dy) && dx > 0:
		return core.SideRight
	case math.Abs(dx) > math.Abs(dy):
		return core.SideLeft
	case dy > 0:
		return core.SideBottom
	default:
		return core.SideTop
	}
}
