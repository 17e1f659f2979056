package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/orthoroute/core"
)

// Sentinel errors for the search package.
var (
	// ErrNilOracle indicates Search was called without a walkability oracle.
	ErrNilOracle = errors.New("search: oracle is nil")

	// ErrOptionViolation indicates an invalid Option value.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrDiagonalMove is the panic payload raised when two consecutive path
	// nodes share neither row nor column.
	ErrDiagonalMove = errors.New("search: diagonal movement is not allowed")
)

// Oracle is the walkability capability the search consumes.
// *walk.Oracle implements it.
type Oracle interface {
	// Walkable reports whether a path may step from `from` into `to`.
	Walkable(to, from core.Cell) bool
	// Collides is the standalone collision test for c.
	Collides(c core.Cell) bool
	// Bounds returns the searchable cell range.
	Bounds() core.Bounds
}

// Policy selects how successors are generated and priced.
type Policy int

const (
	// PolicyTurnPenalty expands one cell at a time with a bend surcharge.
	PolicyTurnPenalty Policy = iota
	// PolicyJumpPoint jumps along straight runs to the next decision cell.
	PolicyJumpPoint
)

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case PolicyTurnPenalty:
		return "turn"
	case PolicyJumpPoint:
		return "jump"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps "turn" and "jump" to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "turn", "":
		return PolicyTurnPenalty, nil
	case "jump", "jps":
		return PolicyJumpPoint, nil
	default:
		return 0, fmt.Errorf("%w: unknown policy %q", ErrOptionViolation, name)
	}
}

// Outcome tells how a Result was produced.
type Outcome int

const (
	// OutcomeFound means the goal was reached.
	OutcomeFound Outcome = iota
	// OutcomeBlocked means start or goal collides; the loop never ran.
	OutcomeBlocked
	// OutcomeUnreachable means the open set emptied first.
	OutcomeUnreachable
	// OutcomeBudget means MaxExpansions was reached first.
	OutcomeBudget
)

var outcomeNames = [...]string{"found", "blocked", "unreachable", "budget"}

// String implements fmt.Stringer.
func (o Outcome) String() string {
	if o < 0 || int(o) >= len(outcomeNames) {
		return "unknown"
	}

	return outcomeNames[o]
}

// Fallback reports whether the path is the direct two-point fallback.
func (o Outcome) Fallback() bool {
	return o != OutcomeFound
}

// Result is the outcome of one Search call.
//
// Path runs from goal back to start. For a found route it is contiguous:
// consecutive cells are orthogonal neighbours. For every fallback outcome it
// is exactly [goal, start].
type Result struct {
	Path     []core.Cell
	Outcome  Outcome
	Expanded int // nodes moved to the closed set
}

const (
	// DefaultStepCost is the cost of moving one cell.
	DefaultStepCost = 10
	// DefaultTurnCost is the surcharge for changing axis.
	DefaultTurnCost = 5
)

// Options configures Search.
type Options struct {
	// Policy picks the successor generator. Default PolicyTurnPenalty.
	Policy Policy
	// StepCost is the price of one cell of travel. Must be > 0.
	StepCost int
	// TurnCost is the bend surcharge under PolicyTurnPenalty. Must be ≥ 0.
	TurnCost int
	// MaxExpansions caps closed-set growth; 0 means unlimited.
	MaxExpansions int
	// OnExpand is called with every cell moved to the closed set.
	OnExpand func(c core.Cell)

	err error
}

// Option is a functional option for Search.
type Option func(*Options)

// DefaultOptions returns the turn-penalty policy with costs 10/5, no budget
// and a no-op OnExpand hook.
func DefaultOptions() Options {
	return Options{
		Policy:   PolicyTurnPenalty,
		StepCost: DefaultStepCost,
		TurnCost: DefaultTurnCost,
		OnExpand: func(core.Cell) {},
	}
}

// WithPolicy selects the successor policy.
func WithPolicy(p Policy) Option {
	return func(o *Options) {
		if p != PolicyTurnPenalty && p != PolicyJumpPoint {
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, int(p))
			return
		}
		o.Policy = p
	}
}

// WithCosts sets the per-step cost (> 0) and the turn penalty (≥ 0).
func WithCosts(step, turn int) Option {
	return func(o *Options) {
		if step <= 0 || turn < 0 {
			o.err = fmt.Errorf("%w: costs step=%d turn=%d", ErrOptionViolation, step, turn)
			return
		}
		o.StepCost = step
		o.TurnCost = turn
	}
}

// WithMaxExpansions bounds the number of expanded nodes.
//
//	n > 0:  stop with OutcomeBudget after n expansions
//	n == 0: no limit
//	n < 0:  ErrOptionViolation
func WithMaxExpansions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxExpansions cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxExpansions = n
	}
}

// WithOnExpand registers a callback run for every expanded cell.
func WithOnExpand(fn func(c core.Cell)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}
