package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/matrix"
)

// Vertex indices of the textbook graph.
const (
	vS = iota
	vT
	vX
	vY
	vZ
)

// textbookRows is the five-vertex graph s, t, x, y, z with negative edges
// and no negative cycle. A zero cell means "no edge".
func textbookRows() [][]int64 {
	return [][]int64{
		{0, 6, 0, 7, 0},  // s
		{0, 0, 5, 8, -4}, // t
		{0, -2, 0, 0, 0}, // x
		{0, 0, -3, 0, 9}, // y
		{2, 0, 7, 0, 0},  // z
	}
}

// triangleRows is a 3-cycle 0→1→2→0 whose weights sum to -1.
func triangleRows() [][]int64 {
	return [][]int64{
		{0, 1, 0},
		{0, 0, 1},
		{-3, 0, 0},
	}
}

func mustAdjacency(t testing.TB, rows [][]int64, opts ...matrix.Option) *matrix.Adjacency {
	t.Helper()
	adj, err := matrix.NewAdjacency(rows, opts...)
	require.NoError(t, err)

	return adj
}

// distances flattens a converged result into (value, reached) pairs.
func distances(t testing.TB, res *bellmanford.Result) ([]int64, []bool) {
	t.Helper()
	require.Equal(t, bellmanford.Converged, res.Status)
	vals := make([]int64, len(res.Distances))
	reached := make([]bool, len(res.Distances))
	for i, d := range res.Distances {
		vals[i], reached[i] = d.Value()
	}

	return vals, reached
}

// requireFixedPoint asserts that no edge of adj can relax res any further and
// that every predecessor pointer is tight: dist[v] == dist[u] + w(u,v).
func requireFixedPoint(t testing.TB, adj *matrix.Adjacency, res *bellmanford.Result) {
	t.Helper()
	require.Equal(t, bellmanford.Converged, res.Status)

	for _, e := range adj.Edges() {
		du, ok := res.Distances[e.From].Value()
		if !ok {
			continue
		}
		dv, ok := res.Distances[e.To].Value()
		require.True(t, ok, "edge %s leaves a reached vertex but %d is unreached", e, e.To)
		require.LessOrEqual(t, dv, du+e.Weight, "edge %s can still be relaxed", e)
	}

	for v, p := range res.Predecessors {
		u, ok := p.Vertex()
		if !ok {
			continue
		}
		w, ok := adj.Weight(u, v)
		require.True(t, ok, "predecessor %d of %d is not an edge", u, v)
		du, _ := res.Distances[u].Value()
		dv, _ := res.Distances[v].Value()
		require.Equal(t, du+w, dv, "predecessor %d of %d is not tight", u, v)
	}
}

// requireNegativeCycle asserts that cycle is a closed walk of adj edges with negative total weight.
func requireNegativeCycle(t testing.TB, adj *matrix.Adjacency, cycle []int) {
	t.Helper()
	require.GreaterOrEqual(t, len(cycle), 2, "cycle too short: %v", cycle)
	require.Equal(t, cycle[0], cycle[len(cycle)-1], "cycle not closed: %v", cycle)

	var sum int64
	for i := 0; i+1 < len(cycle); i++ {
		w, ok := adj.Weight(cycle[i], cycle[i+1])
		require.True(t, ok, "cycle %v uses missing edge %d->%d", cycle, cycle[i], cycle[i+1])
		sum += w
	}
	require.Negative(t, sum, "cycle %v has weight %d", cycle, sum)
}
