package bellmanford

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/bellman/matrix"
)

// Sentinel errors returned by the bellmanford package.
var (
	// ErrInvalidGraph indicates malformed input: a nil or non-square matrix,
	// or a source/target index outside the graph. The cause is wrapped as well.
	ErrInvalidGraph = errors.New("bellmanford: invalid graph")

	// ErrVertexOutOfRange indicates that a source or target index is outside [0, V).
	ErrVertexOutOfRange = errors.New("bellmanford: vertex index out of range")

	// ErrWorkLimit indicates that V·max(E, 1) exceeds the configured work bound.
	ErrWorkLimit = errors.New("bellmanford: graph exceeds work limit")

	// ErrOverflow indicates that a finite path sum does not fit in int64.
	ErrOverflow = errors.New("bellmanford: path weight overflows int64")

	// ErrNegativeCycle is returned when a path is requested from a result whose
	// graph has a negative cycle reachable from the source.
	ErrNegativeCycle = errors.New("bellmanford: negative cycle reachable from source")

	// ErrUnreachable indicates that the target has no path from the source.
	ErrUnreachable = errors.New("bellmanford: target unreachable from source")

	// ErrPredecessorLoop indicates that a predecessor walk revisited a vertex
	// before reaching the source.
	ErrPredecessorLoop = errors.New("bellmanford: predecessor walk does not reach source")
)

// DefaultMaxWork bounds V·max(E, 1) for a single engine. At roughly one
// relaxation per unit this keeps a run in the sub-second range on commodity
// hardware.
const DefaultMaxWork int64 = 1 << 30

const panicBadMaxWork = "bellmanford: WithMaxWork: limit must be positive"

// Status classifies the outcome of a run.
type Status int

const (
	// Converged means no edge can be relaxed further; distances are final.
	Converged Status = iota + 1

	// NegativeCycle means a negative-weight cycle is reachable from the source.
	NegativeCycle
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case NegativeCycle:
		return "negative cycle"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// RelaxFunc observes a successful relaxation of e during the given pass
// (1..V−1) that set dist[e.To] to d.
type RelaxFunc func(pass int, e matrix.Edge, d int64)

// Options configures an Engine.
//
// MaxWork    – upper bound on V·max(E, 1). Must be > 0. Default DefaultMaxWork.
// FullPasses – run all V−1 passes even after a pass without improvement.
// OnRelax    – optional hook invoked on every successful relaxation.
type Options struct {
	MaxWork    int64
	FullPasses bool
	OnRelax    RelaxFunc
}

// Option represents a functional option for configuring an Engine.
type Option func(*Options)

// WithMaxWork sets the V·max(E, 1) bound. Panics if limit <= 0.
func WithMaxWork(limit int64) Option {
	if limit <= 0 {
		panic(panicBadMaxWork)
	}

	return func(o *Options) {
		o.MaxWork = limit
	}
}

// WithFullPasses disables the early exit after a pass that changes nothing.
func WithFullPasses() Option {
	return func(o *Options) {
		o.FullPasses = true
	}
}

// WithOnRelax installs a relaxation hook. A nil fn removes it.
func WithOnRelax(fn RelaxFunc) Option {
	return func(o *Options) {
		o.OnRelax = fn
	}
}

// DefaultOptions returns the defaults:
//   - MaxWork:    DefaultMaxWork.
//   - FullPasses: false (stop once a pass changes nothing).
//   - OnRelax:    nil.
func DefaultOptions() Options {
	return Options{
		MaxWork: DefaultMaxWork,
	}
}
