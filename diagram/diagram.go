package diagram

import (
	"fmt"
	"sync"

	"github.com/katalvlaran/orthoroute/core"
)

// Diagram holds shapes, connectors and routes. Iteration order is insertion
// order everywhere.
type Diagram struct {
	mu sync.RWMutex

	shapes     map[core.ShapeID]core.Shape
	shapeOrder []core.ShapeID

	connectors map[core.ConnectorID]Connector
	connOrder  []core.ConnectorID

	routes map[core.ConnectorID][]core.Point
}

// New returns an empty Diagram.
func New() *Diagram {
	return &Diagram{
		shapes:     make(map[core.ShapeID]core.Shape),
		connectors: make(map[core.ConnectorID]Connector),
		routes:     make(map[core.ConnectorID][]core.Point),
	}
}

// AddShape registers s. The id must be non-empty and unused and the extent
// must not be negative.
func (d *Diagram) AddShape(s core.Shape) error {
	if s.ID == "" {
		return fmt.Errorf("%w: empty shape id", ErrBadScene)
	}
	if s.Bounds.W < 0 || s.Bounds.H < 0 {
		return fmt.Errorf("%w: shape %s has negative size", ErrBadScene, s.ID)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.shapes[s.ID]; ok {
		return fmt.Errorf("%w: shape %s", ErrDuplicateID, s.ID)
	}
	d.shapes[s.ID] = s
	d.shapeOrder = append(d.shapeOrder, s.ID)

	return nil
}

// AddConnector registers c and returns its id, generating one when c.ID is
// empty. Both anchored shapes must exist.
func (d *Diagram) AddConnector(c Connector) (core.ConnectorID, error) {
	if c.ID == "" {
		c.ID = NewConnectorID()
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.connectors[c.ID]; ok {
		return "", fmt.Errorf("%w: connector %s", ErrDuplicateID, c.ID)
	}
	for _, ref := range []core.AnchorRef{c.From, c.To} {
		if _, ok := d.shapes[ref.Shape]; !ok {
			return "", fmt.Errorf("%w: %q (connector %s)", ErrShapeNotFound, ref.Shape, c.ID)
		}
	}
	d.connectors[c.ID] = c
	d.connOrder = append(d.connOrder, c.ID)

	return c.ID, nil
}

// Shape returns the shape with the given id.
func (d *Diagram) Shape(id core.ShapeID) (core.Shape, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	s, ok := d.shapes[id]
	if !ok {
		return core.Shape{}, fmt.Errorf("%w: %q", ErrShapeNotFound, id)
	}

	return s, nil
}

// Shapes returns a copy of every shape.
func (d *Diagram) Shapes() []core.Shape {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]core.Shape, 0, len(d.shapeOrder))
	for _, id := range d.shapeOrder {
		out = append(out, d.shapes[id])
	}

	return out
}

// Connectors returns a copy of every connector.
func (d *Diagram) Connectors() []Connector {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Connector, 0, len(d.connOrder))
	for _, id := range d.connOrder {
		out = append(out, d.connectors[id])
	}

	return out
}

// ConnectorIDs returns every connector id.
func (d *Diagram) ConnectorIDs() []core.ConnectorID {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return append([]core.ConnectorID(nil), d.connOrder...)
}

// SetRoute stores the route of connector id. A copy of points is kept.
func (d *Diagram) SetRoute(id core.ConnectorID, points []core.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.connectors[id]; !ok {
		return fmt.Errorf("%w: %s", ErrConnectorNotFound, id)
	}
	d.routes[id] = append([]core.Point(nil), points...)

	return nil
}

// Route returns a copy of the stored route of id and whether there is one.
func (d *Diagram) Route(id core.ConnectorID) ([]core.Point, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	pts, ok := d.routes[id]
	if !ok {
		return nil, false
	}

	return append([]core.Point(nil), pts...), true
}

// ClearRoutes forgets every stored route.
func (d *Diagram) ClearRoutes() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.routes = make(map[core.ConnectorID][]core.Point)
}

// Endpoints returns the anchors of connector id.
func (d *Diagram) Endpoints(id core.ConnectorID) (src, dst core.AnchorRef, err error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.connectors[id]
	if !ok {
		return core.AnchorRef{}, core.AnchorRef{}, fmt.Errorf("%w: %s", ErrConnectorNotFound, id)
	}

	return c.From, c.To, nil
}

// AnchorPoint returns the midpoint of the anchored side. SideOther anchors
// sit at the shape center.
func (d *Diagram) AnchorPoint(ref core.AnchorRef) (core.Point, error) {
	s, err := d.Shape(ref.Shape)
	if err != nil {
		return core.Point{}, err
	}

	return s.Bounds.SideMidpoint(ref.Side), nil
}

// AnchorSide returns the side of ref once its shape is known to exist.
func (d *Diagram) AnchorSide(ref core.AnchorRef) (core.Side, error) {
	if _, err := d.Shape(ref.Shape); err != nil {
		return core.SideOther, err
	}

	return ref.Side, nil
}

// CollisionAt returns the first shape, in insertion order, whose closed
// rectangle contains p.
func (d *Diagram) CollisionAt(p core.Point) (core.ShapeID, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, id := range d.shapeOrder {
		if d.shapes[id].Bounds.Contains(p) {
			return id, true
		}
	}

	return "", false
}

// CrossingsOn lists the connectors whose stored route touches segment a–b.
func (d *Diagram) CrossingsOn(a, b core.Point) []core.ConnectorID {
	d.mu.RLock()
	defer d.mu.RUnlock()
	var out []core.ConnectorID
	for _, id := range d.connOrder {
		pts := d.routes[id]
		for i := 1; i < len(pts); i++ {
			if core.SegmentsIntersect(a, b, pts[i-1], pts[i]) {
				out = append(out, id)
				break
			}
		}
	}

	return out
}
