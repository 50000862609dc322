// Notes on implementation choices:
//
//   - The edge list is derived once per Engine (row-major) and never mutated.
//   - Each Run owns a fresh runner holding the distance and predecessor
//     vectors; nothing is shared between runs.
//   - A pass that changes nothing ends the relaxation phase early unless
//     WithFullPasses is set. Later passes could not change anything either, so
//     the vectors are identical.
//   - Verification uses the distance check dist[v] > dist[u] + w.

package bellmanford

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/bellman/matrix"
)

// Result is the outcome of one run from Source.
//
// For Status == Converged, Distances and Predecessors hold one entry per
// vertex and Cycle is nil. For Status == NegativeCycle the vectors are nil
// and Cycle holds a closed walk [c0 c1 … ck c0] of vertex indices whose edge
// weights sum to a negative value.
type Result struct {
	Source       int
	Status       Status
	Distances    []Distance
	Predecessors []Predecessor
	Passes       int   // relaxation passes executed (≤ V−1)
	Cycle        []int // negative cycle witness, NegativeCycle only
}

// Engine runs Bellman-Ford on one immutable graph.
// It is safe for concurrent use: every Run allocates its own state.
type Engine struct {
	n       int           // vertex count V
	edges   []matrix.Edge // row-major edge list
	options Options
}

// NewEngine validates adj and derives its edge list.
//
// Errors:
//   - ErrInvalidGraph (wrapping matrix.ErrNilMatrix) if adj is nil.
//   - ErrWorkLimit if V·max(E, 1) exceeds Options.MaxWork, so an edgeless graph
//     with a huge V is rejected as well.
//
// Complexity:
//
//   - Time:  O(E) to copy the edge list.
//   - Space: O(E).
func NewEngine(adj *matrix.Adjacency, opts ...Option) (*Engine, error) {
	// 1) Build Options (constructors already panic on nonsense values).
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate the graph is non-nil.
	if adj == nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, matrix.ErrNilMatrix)
	}

	// 3) Enforce the work bound before any O(V) allocation happens.
	n := adj.Order()
	edges := adj.Edges()
	if exceedsWork(n, len(edges), cfg.MaxWork) {
		return nil, fmt.Errorf("%w: V=%d E=%d limit=%d", ErrWorkLimit, n, len(edges), cfg.MaxWork)
	}

	return &Engine{n: n, edges: edges, options: cfg}, nil
}

// ShortestPaths builds an Engine for adj and runs it from source.
func ShortestPaths(adj *matrix.Adjacency, source int, opts ...Option) (*Result, error) {
	e, err := NewEngine(adj, opts...)
	if err != nil {
		return nil, err
	}

	return e.Run(source)
}

// ShortestPathsMatrix runs from source on a raw matrix in which a zero entry
// means "no edge". Malformed matrices are rejected with ErrInvalidGraph before
// any relaxation happens.
func ShortestPathsMatrix(rows [][]int64, source int, opts ...Option) (*Result, error) {
	adj, err := matrix.NewAdjacency(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidGraph, err)
	}

	return ShortestPaths(adj, source, opts...)
}

// Order returns V.
func (e *Engine) Order() int { return e.n }

// Edges returns a copy of the relaxation-order edge list.
func (e *Engine) Edges() []matrix.Edge {
	out := make([]matrix.Edge, len(e.edges))
	copy(out, e.edges)

	return out
}

// Run computes shortest distances from source.
//
// A negative cycle reachable from source is not an error: the returned Result
// has Status NegativeCycle. Errors are reserved for invalid input
// (ErrInvalidGraph / ErrVertexOutOfRange) and arithmetic overflow (ErrOverflow).
// A sum that falls below the int64 range only after relaxation has finished
// is a negative cycle, not an overflow.
//
// Steps:
//  1. Validate source.
//  2. Initialize the vectors.
//  3. Relax all edges in up to V−1 passes.
//  4. Verify that no edge can still be relaxed.
//  5. On a violation, extract a cycle witness.
//
// Complexity:
//
//   - Time:  O(V·E) worst case, O(k·E) when k passes suffice.
//   - Space: O(V) per run.
func (e *Engine) Run(source int) (*Result, error) {
	// 1) Validate source is a vertex of the graph.
	if err := matrix.ValidateIndex(source, e.n); err != nil {
		return nil, fmt.Errorf("%w: %w: source: %w", ErrInvalidGraph, ErrVertexOutOfRange, err)
	}

	// 2) Fresh run state; the edge list is shared read-only.
	r := &runner{
		n:       e.n,
		edges:   e.edges,
		options: e.options,
	}
	r.init(source)

	// 3) Relaxation passes.
	if err := r.relaxAll(); err != nil {
		return nil, err
	}

	// 4) Verification pass.
	violated, err := r.verify()
	if err != nil {
		return nil, err
	}

	// 5) Negative cycle: the vectors are not meaningful, return the witness only.
	if violated {
		cycle, err := r.cycle()
		if err != nil {
			return nil, err
		}

		return &Result{
			Source: source,
			Status: NegativeCycle,
			Passes: r.passes,
			Cycle:  cycle,
		}, nil
	}

	return &Result{
		Source:       source,
		Status:       Converged,
		Distances:    r.dist,
		Predecessors: r.pred,
		Passes:       r.passes,
	}, nil
}

// phase tracks where a runner is in its lifecycle. Each step checks the phase
// it expects, so steps cannot run out of order.
type phase int

const (
	phaseUninitialized phase = iota
	phaseInitialized
	phaseRelaxing
	phaseVerifying
	phaseConverged
	phaseNegativeCycle
)

// errPhase reports a runner step invoked out of order.
var errPhase = errors.New("bellmanford: runner step out of order")

// expect fails with errPhase unless the runner is in phase want.
func (r *runner) expect(step string, want phase) error {
	if r.phase != want {
		return fmt.Errorf("bellmanford: %s: phase %d, want %d: %w", step, r.phase, want, errPhase)
	}

	return nil
}

// runner holds the mutable state of a single run.
type runner struct {
	n       int
	edges   []matrix.Edge // shared, read-only
	options Options

	source int
	dist   []Distance    // owned by this run
	pred   []Predecessor // owned by this run
	phase  phase
	passes int
}

// init allocates the vectors: dist[source] = 0, pred[source] = IsSource,
// every other vertex Unreached with NoPredecessor.
func (r *runner) init(source int) {
	r.source = source
	r.dist = make([]Distance, r.n)
	r.pred = make([]Predecessor, r.n)
	r.dist[source] = Finite(0)
	r.pred[source] = AtSource()
	r.phase = phaseInitialized
}

// relax tries to improve dist[e.To] through e. It is the only place where the
// vectors change during the relaxation passes. An unreached tail never relaxes.
func (r *runner) relax(e matrix.Edge) (bool, error) {
	cand, ok := r.dist[e.From].through(e.Weight)
	if !ok {
		return false, fmt.Errorf("%w: edge %s from distance %s", ErrOverflow, e, r.dist[e.From])
	}
	if !cand.improves(r.dist[e.To]) {
		return false, nil
	}

	r.dist[e.To] = cand
	r.pred[e.To] = Via(e.From)
	if r.options.OnRelax != nil {
		r.options.OnRelax(r.passes, e, cand.value)
	}

	return true, nil
}

// pass relaxes every edge once in list order and reports whether anything changed.
func (r *runner) pass() (bool, error) {
	changed := false
	for _, e := range r.edges {
		ok, err := r.relax(e)
		if err != nil {
			return false, err
		}
		changed = changed || ok
	}

	return changed, nil
}

// relaxAll runs up to V−1 passes, stopping after a pass that changes nothing
// unless FullPasses is set.
//
// Complexity: O(V·E).
func (r *runner) relaxAll() error {
	if err := r.expect("relaxAll", phaseInitialized); err != nil {
		return err
	}
	r.phase = phaseRelaxing

	for k := 1; k <= r.n-1; k++ {
		r.passes = k
		changed, err := r.pass()
		if err != nil {
			return fmt.Errorf("bellmanford: pass %d: %w", k, err)
		}
		// Nothing moved: later passes would see the same vectors.
		if !changed && !r.options.FullPasses {
			break
		}
	}

	return nil
}

// verify reports whether some edge can still be relaxed, which means a
// negative cycle is reachable from the source. It does not mutate the vectors.
//
// Complexity: O(E).
func (r *runner) verify() (bool, error) {
	if err := r.expect("verify", phaseRelaxing); err != nil {
		return false, err
	}
	r.phase = phaseVerifying

	for _, e := range r.edges {
		if _, ok := r.improvable(e); ok {
			r.phase = phaseNegativeCycle
			return true, nil
		}
	}
	r.phase = phaseConverged

	return false, nil
}

// improvable reports whether e would improve dist[e.To] once relaxation has
// finished, together with the candidate distance.
//
// A sum beyond the int64 range is decided by its sign: below math.MinInt64 it
// is smaller than every stored distance and improves it (the candidate
// saturates at math.MinInt64); above math.MaxInt64 it improves nothing.
func (r *runner) improvable(e matrix.Edge) (Distance, bool) {
	cand, ok := r.dist[e.From].through(e.Weight)
	if !ok {
		if e.Weight < 0 {
			return Finite(math.MinInt64), true
		}

		return Unreached, false
	}

	return cand, cand.improves(r.dist[e.To])
}

// exceedsWork reports whether n·max(m, 1) > limit without overflowing.
func exceedsWork(n, m int, limit int64) bool {
	if n == 0 {
		return false
	}
	if m == 0 {
		m = 1
	}

	return int64(m) > limit/int64(n)
}
