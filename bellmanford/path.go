package bellmanford

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/katalvlaran/bellman/matrix"
)

// Hop is one edge of a reconstructed path. Distance is the cumulative
// distance from the source to To.
type Hop struct {
	From     int
	To       int
	Distance int64
}

// Path is an ordered source→target sequence of hops.
// An empty, non-nil Path means target == source.
type Path []Hop

// Vertices returns the visited vertices in order, source first.
// It returns nil for an empty path.
func (p Path) Vertices() []int {
	if len(p) == 0 {
		return nil
	}
	out := make([]int, 0, len(p)+1)
	out = append(out, p[0].From)
	for _, h := range p {
		out = append(out, h.To)
	}

	return out
}

// Cost returns the total distance of the path (0 when empty).
func (p Path) Cost() int64 {
	if len(p) == 0 {
		return 0
	}

	return p[len(p)-1].Distance
}

// PathTo reconstructs the path from r.Source to target.
//
// Errors:
//   - ErrNegativeCycle if r.Status is NegativeCycle.
//   - ErrInvalidGraph / ErrVertexOutOfRange if target is outside [0, V).
//   - ErrUnreachable if target has no path from the source.
func (r *Result) PathTo(target int) (Path, error) {
	if r.Status == NegativeCycle {
		return nil, ErrNegativeCycle
	}

	return PathTo(r.Predecessors, r.Distances, r.Source, target)
}

// PathTo walks predecessor pointers from target back to source and returns the
// hops in source→target order, each annotated with the cumulative distance.
//
// target == source yields an empty path. An unreached target yields
// ErrUnreachable. The walk is bounded by V steps; revisiting a vertex or
// running past the bound yields ErrPredecessorLoop.
//
// Complexity: O(path length).
func PathTo(preds []Predecessor, dists []Distance, source, target int) (Path, error) {
	n := len(preds)
	if len(dists) != n {
		return nil, fmt.Errorf("%w: %d predecessors, %d distances: %w",
			ErrInvalidGraph, n, len(dists), matrix.ErrNonSquare)
	}
	if err := matrix.ValidateIndex(source, n); err != nil {
		return nil, fmt.Errorf("%w: %w: source: %w", ErrInvalidGraph, ErrVertexOutOfRange, err)
	}
	if err := matrix.ValidateIndex(target, n); err != nil {
		return nil, fmt.Errorf("%w: %w: target: %w", ErrInvalidGraph, ErrVertexOutOfRange, err)
	}

	if target == source {
		return Path{}, nil
	}
	if preds[target].Kind() == NoPredecessor || !dists[target].Reached() {
		return nil, fmt.Errorf("%w: %d from %d", ErrUnreachable, target, source)
	}

	seen := mapset.NewThreadUnsafeSet[int](target)
	rev := make(Path, 0, 8)
	for v := target; v != source; {
		u, ok := preds[v].Vertex()
		if !ok {
			// Only the source may lack a Via predecessor on a converged chain.
			return nil, fmt.Errorf("%w: vertex %d has predecessor %s", ErrPredecessorLoop, v, preds[v])
		}
		d, _ := dists[v].Value()
		rev = append(rev, Hop{From: u, To: v, Distance: d})
		if seen.Contains(u) || len(rev) > n {
			return nil, fmt.Errorf("%w: revisited %d", ErrPredecessorLoop, u)
		}
		seen.Add(u)
		v = u
	}

	path := make(Path, len(rev))
	for i := range rev {
		path[len(rev)-1-i] = rev[i]
	}

	return path, nil
}
