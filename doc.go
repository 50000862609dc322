// Package bellman computes single-source shortest paths on directed graphs
// with negative edge weights and reports negative-weight cycles.
//
// What is inside:
//
//	matrix       the graph model: validated V×V adjacency, row-major edge list
//	bellmanford  the engine: V−1 relaxation passes, verification, cycle witness,
//	             path reconstruction through predecessor pointers
//	converters   vertex labels, text formatting, dominikbraun/graph import,
//	             Graphviz DOT export, gonum/graph export
//	examples     runnable demo on the textbook five-vertex graph
//
// Quick example:
//
//	res, err := bellmanford.ShortestPathsMatrix([][]int64{
//	    {0, 6, 0, 7, 0},
//	    {0, 0, 5, 8, -4},
//	    {0, -2, 0, 0, 0},
//	    {0, 0, -3, 0, 9},
//	    {2, 0, 7, 0, 0},
//	}, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Status == bellmanford.NegativeCycle {
//	    log.Fatalf("negative cycle: %v", res.Cycle)
//	}
//	path, _ := res.PathTo(4) // 0 → 3 → 2 → 1 → 4, cost -2
//
//	go get github.com/katalvlaran/bellman
package bellman
