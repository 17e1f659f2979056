package route

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/orthoroute/core"
	"github.com/katalvlaran/orthoroute/gridmap"
	"github.com/katalvlaran/orthoroute/search"
	"github.com/katalvlaran/orthoroute/simplify"
	"github.com/katalvlaran/orthoroute/walk"
)

// Sentinel errors for the route package.
var (
	// ErrNilHost indicates NewRouter was called without a Host.
	ErrNilHost = errors.New("route: host is nil")

	// ErrSelfConnection indicates a connector whose ends share one shape and
	// no SelfRouter is configured.
	ErrSelfConnection = errors.New("route: self-connection needs a SelfRouter")

	// ErrOptionViolation indicates an invalid Option value or a missing
	// collaborator.
	ErrOptionViolation = errors.New("route: invalid option supplied")
)

// Host is the diagram layer a Router reads from.
type Host interface {
	walk.Collider
	walk.Crosser

	// Endpoints returns the source and target anchors of a connector.
	Endpoints(id core.ConnectorID) (src, dst core.AnchorRef, err error)
	// AnchorPoint resolves an anchor to its exact diagram point.
	AnchorPoint(ref core.AnchorRef) (core.Point, error)
	// AnchorSide resolves the shape side an anchor sits on.
	AnchorSide(ref core.AnchorRef) (core.Side, error)
	// Shapes lists every obstructing shape.
	Shapes() []core.Shape
}

// SelfRouter draws connectors whose both ends are on one shape.
type SelfRouter interface {
	SelfRoute(id core.ConnectorID) ([]core.Point, error)
}

// Drawer receives finished routes.
type Drawer interface {
	SetRoute(id core.ConnectorID, points []core.Point) error
}

// Route is one computed connector route.
type Route struct {
	ID     core.ConnectorID
	Points []core.Point // true source anchor → bends → true target anchor

	Self     bool           // produced by the SelfRouter
	Outcome  search.Outcome // meaningless when Self is set
	Expanded int
	Mapping  gridmap.Mapping
	Queries  walk.Stats
}

// Options configures a Router.
type Options struct {
	Grid     core.Grid
	Mapper   []gridmap.Option
	Search   []search.Option
	Simplify []simplify.Option
	Self     SelfRouter
	Drawer   Drawer
	Logger   *log.Logger

	err error
}

// Option is a functional option for NewRouter.
type Option func(*Options)

// DefaultOptions returns the default grid, default stage options, no
// collaborators and a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Grid:   core.DefaultGrid(),
		Logger: log.New(io.Discard, "", 0),
	}
}

// WithGrid sets the grid shared by mapping and simplification.
func WithGrid(g core.Grid) Option {
	return func(o *Options) {
		if _, err := core.NewGrid(g.Step); err != nil {
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, err)
			return
		}
		o.Grid = g
	}
}

// WithMapperOptions forwards options to gridmap.New.
func WithMapperOptions(opts ...gridmap.Option) Option {
	return func(o *Options) {
		o.Mapper = append(o.Mapper, opts...)
	}
}

// WithSearchOptions forwards options to every search.Search call.
func WithSearchOptions(opts ...search.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// WithSimplifyOptions forwards options to every simplify.Simplify call.
func WithSimplifyOptions(opts ...simplify.Option) Option {
	return func(o *Options) {
		o.Simplify = append(o.Simplify, opts...)
	}
}

// WithSelfRouter installs the collaborator for self-connections.
func WithSelfRouter(s SelfRouter) Option {
	return func(o *Options) {
		o.Self = s
	}
}

// WithDrawer installs the collaborator Reroute hands routes to.
func WithDrawer(d Drawer) Option {
	return func(o *Options) {
		o.Drawer = d
	}
}

// WithLogger sets the logger. A nil logger is rejected.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l == nil {
			o.err = fmt.Errorf("%w: nil logger", ErrOptionViolation)
			return
		}
		o.Logger = l
	}
}
