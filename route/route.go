package route

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/gridmap"
	"github.com/katalvlaran/orthoroute/search"
	"github.com/katalvlaran/orthoroute/simplify"
	"github.com/katalvlaran/orthoroute/walk"
)

// Router computes connector routes against a Host.
type Router struct {
	host   Host
	mapper *gridmap.Mapper
	opts   Options
}

// NewRouter validates opts and returns a Router over host.
func NewRouter(host Host, opts ...Option) (*Router, error) {
	// 1) Build and validate Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	// 2) Validate the host is non-nil.
	if host == nil {
		return nil, ErrNilHost
	}
	// 3) Build the mapper; it owns the grid every stage shares.
	m, err := gridmap.New(cfg.Grid, cfg.Mapper...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	return &Router{host: host, mapper: m, opts: cfg}, nil
}

// ComputeRoute returns the route of connector id as diagram points.
func (r *Router) ComputeRoute(id core.ConnectorID) ([]core.Point, error) {
	rt, err := r.Compute(id)
	if err != nil {
		return nil, err
	}

	return rt.Points, nil
}

// Compute routes connector id and reports how the route was found.
func (r *Router) Compute(id core.ConnectorID) (Route, error) {
	// 1) Resolve the connector ends; self-connections go elsewhere.
	src, dst, err := r.host.Endpoints(id)
	if err != nil {
		return Route{}, err
	}
	if src.Shape == dst.Shape {
		return r.selfRoute(id)
	}

	// 2) Resolve exact anchor points and sides.
	start, err := r.host.AnchorPoint(src)
	if err != nil {
		return Route{}, err
	}
	end, err := r.host.AnchorPoint(dst)
	if err != nil {
		return Route{}, err
	}
	srcSide, err := r.host.AnchorSide(src)
	if err != nil {
		return Route{}, err
	}
	dstSide, err := r.host.AnchorSide(dst)
	if err != nil {
		return Route{}, err
	}

	// 3) Quantize, then search over a fresh oracle.
	grid := r.mapper.Grid()
	m := r.mapper.Map(r.host.Shapes(), start, srcSide, end, dstSide)
	oracle, err := walk.New(grid, m.Bounds, r.host, r.host, walk.WithSelf(id), walk.WithLeads(m.Start, m.Goal))
	if err != nil {
		return Route{}, err
	}
	res, err := search.Search(oracle, m.Start, m.Goal, r.opts.Search...)
	if err != nil {
		return Route{}, err
	}

	// 4) Fallbacks draw the anchors straight; found paths are simplified.
	var points []core.Point
	if res.Outcome.Fallback() {
		points = []core.Point{start, end}
		r.opts.Logger.Printf("component=route action=fallback connector=%s outcome=%s start=%v goal=%v expanded=%d",
			id, res.Outcome, m.Start, m.Goal, res.Expanded)
	} else {
		points = simplify.Simplify(grid, start, res.Path, end, r.opts.Simplify...)
	}

	stats := oracle.Stats()
	r.opts.Logger.Printf("component=route action=computed connector=%s outcome=%s points=%d expanded=%d collisions=%d crossings=%d",
		id, res.Outcome, len(points), res.Expanded, stats.CollisionQueries, stats.CrossingQueries)

	return Route{
		ID:       id,
		Points:   points,
		Outcome:  res.Outcome,
		Expanded: res.Expanded,
		Mapping:  m,
		Queries:  stats,
	}, nil
}

func (r *Router) selfRoute(id core.ConnectorID) (Route, error) {
	if r.opts.Self == nil {
		return Route{}, fmt.Errorf("%w: %s", ErrSelfConnection, id)
	}
	points, err := r.opts.Self.SelfRoute(id)
	if err != nil {
		return Route{}, err
	}
	r.opts.Logger.Printf("component=route action=self_routed connector=%s points=%d", id, len(points))

	return Route{ID: id, Points: points, Self: true}, nil
}

// Reroute computes the given connectors in order and hands each route to the
// Drawer as soon as it is ready, so later connectors see earlier ones as
// crossings. A failing connector does not stop the others; all failures are
// returned joined.
func (r *Router) Reroute(ids ...core.ConnectorID) error {
	if r.opts.Drawer == nil {
		return fmt.Errorf("%w: Reroute needs a Drawer", ErrOptionViolation)
	}
	var errs []error
	for _, id := range ids {
		points, err := r.ComputeRoute(id)
		if err == nil {
			err = r.opts.Drawer.SetRoute(id, points)
		}
		if err != nil {
			r.opts.Logger.Printf("component=route action=reroute_failed connector=%s err=%v", id, err)
			errs = append(errs, fmt.Errorf("connector %s: %w", id, err))
		}
	}

	return errors.Join(errs...)
}
