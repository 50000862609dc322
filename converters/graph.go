package converters

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"

	"github.com/katalvlaran/bellman/bellmanford"
	"github.com/katalvlaran/bellman/matrix"
)

// highlightColor marks shortest-path tree or negative cycle edges in DOT output.
const highlightColor = "crimson"

// FromGraph imports g into an Adjacency whose vertices are g's vertex hashes
// in ascending order. Edge weights are taken as-is when g is weighted and as 1
// otherwise. An undirected edge becomes two directed edges. NoEdge is used as
// the absent sentinel, so zero weights survive.
func FromGraph(g graph.Graph[string, string]) (*matrix.Adjacency, *Labels, error) {
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	am, err := g.AdjacencyMap()
	if err != nil {
		return nil, nil, fmt.Errorf("converters: FromGraph: %w", err)
	}

	names := make([]string, 0, len(am))
	for k := range am {
		names = append(names, k)
	}
	sort.Strings(names)
	labels, err := NewLabels(names...)
	if err != nil {
		return nil, nil, fmt.Errorf("converters: FromGraph: %w", err)
	}

	weighted := g.Traits().IsWeighted
	edges := make([]matrix.Edge, 0, len(am))
	for _, u := range names {
		for v, e := range am[u] {
			w := int64(1)
			if weighted {
				w = int64(e.Properties.Weight)
			}
			edges = append(edges, matrix.Edge{From: labels.index[u], To: labels.index[v], Weight: w})
		}
	}

	adj, err := matrix.FromEdges(len(names), edges)
	if err != nil {
		return nil, nil, fmt.Errorf("converters: FromGraph: %w", err)
	}

	return adj, labels, nil
}

// WriteDOT writes adj in Graphviz DOT format. When res is non-nil, converged
// vertices carry their distance as xlabel and the edges of the shortest-path
// tree are highlighted; for a NegativeCycle result the cycle is highlighted
// instead. A nil l names vertices by index. A res computed on another graph is
// rejected with ErrResultMismatch.
func WriteDOT(w io.Writer, adj *matrix.Adjacency, l *Labels, res *bellmanford.Result) error {
	if adj == nil {
		return ErrNilGraph
	}
	if l == nil {
		names := make([]string, adj.Order())
		for i := range names {
			names[i] = strconv.Itoa(i)
		}
		l, _ = NewLabels(names...)
	}
	if l.Len() != adj.Order() {
		return fmt.Errorf("converters: WriteDOT: %d labels for %d vertices: %w", l.Len(), adj.Order(), ErrLabelCount)
	}

	if err := checkResult(adj, res); err != nil {
		return fmt.Errorf("converters: WriteDOT: %w", err)
	}

	g := graph.New(graph.StringHash, graph.Directed(), graph.Weighted())
	for i := 0; i < adj.Order(); i++ {
		var opts []func(*graph.VertexProperties)
		if res != nil && res.Status == bellmanford.Converged {
			opts = append(opts, graph.VertexAttribute("xlabel", res.Distances[i].String()))
		}
		if err := g.AddVertex(l.Name(i), opts...); err != nil {
			return fmt.Errorf("converters: WriteDOT: vertex %d: %w", i, err)
		}
	}

	marked := highlighted(res)
	for _, e := range adj.Edges() {
		if e.Weight > math.MaxInt || e.Weight < math.MinInt {
			return fmt.Errorf("converters: WriteDOT: edge %s: %w", e, ErrWeightRange)
		}
		opts := []func(*graph.EdgeProperties){graph.EdgeWeight(int(e.Weight))}
		if marked[[2]int{e.From, e.To}] {
			opts = append(opts, graph.EdgeAttribute("color", highlightColor))
		}
		if err := g.AddEdge(l.Name(e.From), l.Name(e.To), opts...); err != nil {
			return fmt.Errorf("converters: WriteDOT: edge %s: %w", e, err)
		}
	}

	return draw.DOT(g, w)
}

// checkResult verifies that every vertex res refers to exists in adj.
// A nil res is always accepted.
func checkResult(adj *matrix.Adjacency, res *bellmanford.Result) error {
	if res == nil {
		return nil
	}
	n := adj.Order()
	switch res.Status {
	case bellmanford.Converged:
		if len(res.Distances) != n || len(res.Predecessors) != n {
			return fmt.Errorf("%d distances, %d predecessors for %d vertices: %w",
				len(res.Distances), len(res.Predecessors), n, ErrResultMismatch)
		}
		for v, p := range res.Predecessors {
			if u, ok := p.Vertex(); ok && matrix.ValidateIndex(u, n) != nil {
				return fmt.Errorf("predecessor %d of %d: %w", u, v, ErrResultMismatch)
			}
		}
	case bellmanford.NegativeCycle:
		for _, v := range res.Cycle {
			if matrix.ValidateIndex(v, n) != nil {
				return fmt.Errorf("cycle vertex %d: %w", v, ErrResultMismatch)
			}
		}
	}

	return nil
}

// highlighted returns the (u, v) pairs to emphasize for res.
func highlighted(res *bellmanford.Result) map[[2]int]bool {
	marked := make(map[[2]int]bool)
	if res == nil {
		return marked
	}
	switch res.Status {
	case bellmanford.Converged:
		for v, p := range res.Predecessors {
			if u, ok := p.Vertex(); ok {
				marked[[2]int{u, v}] = true
			}
		}
	case bellmanford.NegativeCycle:
		for i := 0; i+1 < len(res.Cycle); i++ {
			marked[[2]int{res.Cycle[i], res.Cycle[i+1]}] = true
		}
	}

	return marked
}
