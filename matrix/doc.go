// SPDX-License-Identifier: MIT

// Package matrix is the graph model consumed by the shortest-path engine.
//
// A graph is a square V×V matrix of int64 weights. Cell (i, j) holds the weight
// of the directed edge i→j, or the "absent" sentinel when there is no such edge.
//
// The package provides:
//
//   - Adjacency: an immutable, validated copy of the matrix with O(1) lookups.
//   - Edge / EdgeList: row-major derivation of the edge list (u, v, w) used as
//     the relaxation order by bellmanford.
//   - FromEdges: sparse construction for graphs that need zero-weight edges.
//   - Validators and sentinel errors for malformed input.
//
// Absent sentinel:
//
//	By default a zero entry means "no edge", so a true zero-weight edge cannot be
//	expressed. This mirrors the classic textbook representation. Pass
//	WithAbsent(NoEdge) (or build via FromEdges) to make 0 an ordinary weight.
//
// Complexity:
//
//   - NewAdjacency: O(V²) scan, O(E) memory (only present cells are kept).
//   - FromEdges:    O(E log E) time, O(E) memory, independent of V.
//   - Weight:       O(log E) binary search over the row-major edge list.
//   - Edges:        O(E) copy.
//
// Example:
//
//	adj, err := matrix.NewAdjacency([][]int64{
//	    {0, 6, 0},
//	    {0, 0, -4},
//	    {2, 0, 0},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range adj.Edges() {
//	    fmt.Println(e)
//	}
package matrix
