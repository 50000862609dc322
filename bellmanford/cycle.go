package bellmanford

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"
)

// cycle extracts a negative cycle witness after verify found a violation.
//
// One further full pass is run, remembering the last vertex it improved.
// Walking V predecessor steps back from that vertex is guaranteed to land on
// a vertex of a predecessor cycle, and every such cycle has negative weight.
// The cycle is returned in forward edge order and closed: [c0 … ck c0].
//
// The extra pass mutates the run's vectors; they are discarded by Run.
// OnRelax is not invoked for it. A sum below the int64 range counts as an
// improvement (see improvable).
//
// A walk that cannot close means the predecessor vector is inconsistent; it is
// reported as ErrPredecessorLoop rather than as a NegativeCycle result with no
// witness.
//
// Complexity: O(E + V).
func (r *runner) cycle() ([]int, error) {
	// 1) Only valid right after verify reported a violation.
	if err := r.expect("cycle", phaseNegativeCycle); err != nil {
		return nil, err
	}

	// 2) Extra pass; the violating edge guarantees at least one improvement.
	last := -1
	for _, e := range r.edges {
		cand, ok := r.improvable(e)
		if !ok {
			continue
		}
		r.dist[e.To] = cand
		r.pred[e.To] = Via(e.From)
		last = e.To
	}
	if last < 0 {
		return nil, fmt.Errorf("bellmanford: cycle: no edge improved in witness pass: %w", ErrPredecessorLoop)
	}

	// 3) V steps back from last land on the cycle.
	x := last
	for i := 0; i < r.n; i++ {
		p, ok := r.pred[x].Vertex()
		if !ok {
			return nil, fmt.Errorf("bellmanford: cycle: walk from %d stopped at %d: %w", last, x, ErrPredecessorLoop)
		}
		x = p
	}

	// 4) x is on the cycle; collect it backwards until it closes.
	seen := mapset.NewThreadUnsafeSet[int]()
	back := []int{x}
	seen.Add(x)
	for cur := x; ; {
		p, ok := r.pred[cur].Vertex()
		if !ok {
			return nil, fmt.Errorf("bellmanford: cycle: walk from %d stopped at %d: %w", x, cur, ErrPredecessorLoop)
		}
		if p == x {
			break
		}
		if seen.Contains(p) {
			return nil, fmt.Errorf("bellmanford: cycle: walk from %d does not return to it: %w", x, ErrPredecessorLoop)
		}
		seen.Add(p)
		back = append(back, p)
		cur = p
	}

	// 5) Reverse into forward edge order and close the walk.
	cycle := make([]int, 0, len(back)+1)
	for i := len(back) - 1; i >= 0; i-- {
		cycle = append(cycle, back[i])
	}
	cycle = append(cycle, cycle[0])

	return cycle, nil
}
