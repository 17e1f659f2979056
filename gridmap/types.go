package gridmap

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthoroute/core"
)

// ErrOptionViolation is returned by New when an invalid Option was supplied.
var ErrOptionViolation = errors.New("gridmap: invalid option supplied")

const (
	// DefaultMargin is the number of spare cells past the outermost shape.
	DefaultMargin = 5
	// DefaultAnchorOffset is how far, in diagram units, an anchor is pushed
	// away from its shape before it becomes a start or goal cell.
	DefaultAnchorOffset = 20.0
)

// Options tunes a Mapper.
type Options struct {
	// Margin is the count of extra cells past the right/bottom-most shape.
	Margin int
	// AnchorOffset is the nudge applied to anchors, in diagram units.
	AnchorOffset float64
	// NormalOffset nudges top and bottom anchors vertically.
	NormalOffset bool

	err error
}

// Option configures a Mapper.
type Option func(*Options)

// DefaultOptions returns Margin=5, AnchorOffset=20 and horizontal-only nudging.
func DefaultOptions() Options {
	return Options{
		Margin:       DefaultMargin,
		AnchorOffset: DefaultAnchorOffset,
	}
}

// WithMargin sets the safety margin in cells. Negative values are rejected.
func WithMargin(cells int) Option {
	return func(o *Options) {
		if cells < 0 {
			o.err = fmt.Errorf("%w: margin cannot be negative (%d)", ErrOptionViolation, cells)
			return
		}
		o.Margin = cells
	}
}

// WithAnchorOffset sets the anchor nudge in diagram units. Negative values are rejected.
func WithAnchorOffset(units float64) Option {
	return func(o *Options) {
		if units < 0 {
			o.err = fmt.Errorf("%w: anchor offset cannot be negative (%v)", ErrOptionViolation, units)
			return
		}
		o.AnchorOffset = units
	}
}

// WithNormalOffset pushes top anchors up and bottom anchors down instead of
// shifting them along X. Left and right anchors are unaffected.
func WithNormalOffset() Option {
	return func(o *Options) {
		o.NormalOffset = true
	}
}

// Mapping is the discrete view of one connector: where the search may go,
// where it starts and where it must arrive.
type Mapping struct {
	Bounds core.Bounds
	Start  core.Cell
	Goal   core.Cell
}

// Mapper converts diagram geometry into cells. It is immutable and safe for
// concurrent use.
type Mapper struct {
	grid core.Grid
	opts Options
}
