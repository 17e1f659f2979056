package walk

import (
	"errors"

	"github.com/katalvlaran/orthoroute/core"
)

// ErrNilCollider is returned by New when no collision capability is given.
var ErrNilCollider = errors.New("walk: collider is nil")

// Collider reports the shape, if any, that obstructs diagram point p.
type Collider interface {
	CollisionAt(p core.Point) (core.ShapeID, bool)
}

// Crosser lists the connectors whose current routes intersect segment a–b.
type Crosser interface {
	CrossingsOn(a, b core.Point) []core.ConnectorID
}

// Stats counts the host queries an Oracle has issued.
type Stats struct {
	CollisionQueries int
	CacheHits        int
	CrossingQueries  int
}

// Option configures an Oracle.
type Option func(*Oracle)

// WithSelf names the connector being routed; its own segments never block.
func WithSelf(id core.ConnectorID) Option {
	return func(o *Oracle) {
		o.self = id
	}
}

// WithLeads names the start and goal cells of the route. A step leaving
// start or entering goal ignores a foreign connector that touches the step
// only at that cell, so connectors may fan out from a shared anchor.
func WithLeads(start, goal core.Cell) Option {
	return func(o *Oracle) {
		o.leads = true
		o.start, o.goal = start, goal
	}
}

// WithoutCache disables collision memoization.
func WithoutCache() Option {
	return func(o *Oracle) {
		o.cache = nil
	}
}

// Oracle is the walkability predicate of one route computation.
type Oracle struct {
	grid     core.Grid
	bounds   core.Bounds
	collider Collider
	crosser  Crosser // may be nil: no connector ever blocks
	self     core.ConnectorID

	leads       bool
	start, goal core.Cell

	cache map[core.Cell]bool // cell → collides
	stats Stats
}

// New returns an Oracle over bounds. crosser may be nil.
func New(grid core.Grid, bounds core.Bounds, collider Collider, crosser Crosser, opts ...Option) (*Oracle, error) {
	if collider == nil {
		return nil, ErrNilCollider
	}
	if _, err := core.NewGrid(grid.Step); err != nil {
		return nil, err
	}
	o := &Oracle{
		grid:     grid,
		bounds:   bounds,
		collider: collider,
		crosser:  crosser,
		cache:    make(map[core.Cell]bool),
	}
	for _, opt := range opts {
		opt(o)
	}

	return o, nil
}

// Bounds returns the cell bounds the Oracle enforces.
func (o *Oracle) Bounds() core.Bounds {
	return o.bounds
}

// Collides reports whether a shape occupies c's diagram point. Bounds are
// not consulted.
func (o *Oracle) Collides(c core.Cell) bool {
	if o.cache != nil {
		if hit, ok := o.cache[c]; ok {
			o.stats.CacheHits++
			return hit
		}
	}
	o.stats.CollisionQueries++
	_, hit := o.collider.CollisionAt(o.grid.ToPoint(c))
	if o.cache != nil {
		o.cache[c] = hit
	}

	return hit
}

// Passable reports whether c is inside the bounds and free of shapes.
func (o *Oracle) Passable(c core.Cell) bool {
	return o.bounds.Contains(c) && !o.Collides(c)
}

// Walkable reports whether a route may step from `from` into `to`.
func (o *Oracle) Walkable(to, from core.Cell) bool {
	if !o.Passable(to) {
		return false
	}
	if o.crosser == nil {
		return true
	}
	a, b := o.grid.ToPoint(from), o.grid.ToPoint(to)
	o.stats.CrossingQueries++
	ids := o.crosser.CrossingsOn(a, b)
	if len(ids) == 0 {
		return true
	}

	var atA, atB []core.ConnectorID
	if o.leads && (from == o.start || to == o.goal) {
		o.stats.CrossingQueries += 2
		atA = o.crosser.CrossingsOn(a, a)
		atB = o.crosser.CrossingsOn(b, b)
	}
	for _, id := range ids {
		if id == o.self {
			continue
		}
		// A shared anchor lead: the contact is at the lead cell and not at
		// the other end of the step.
		leaving := from == o.start && contains(atA, id) && !contains(atB, id)
		entering := to == o.goal && contains(atB, id) && !contains(atA, id)
		if !o.leads || !(leaving || entering) {
			return false
		}
	}

	return true
}

func contains(ids []core.ConnectorID, id core.ConnectorID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}

	return false
}

// Stats returns the query counters gathered so far.
func (o *Oracle) Stats() Stats {
	return o.stats
}
