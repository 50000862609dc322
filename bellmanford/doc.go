// Package bellmanford computes single-source shortest paths on directed graphs
// whose edge weights may be negative, and detects negative-weight cycles that
// are reachable from the source.
//
// Overview:
//
//   - The graph is a matrix.Adjacency; its row-major edge list fixes the
//     relaxation order.
//   - A run initializes a distance vector (source = 0, everything else
//     Unreached) and a predecessor vector, then relaxes every edge in V−1 passes.
//   - A final verification pass looks for an edge that still improves a
//     distance. If one exists the graph has a negative cycle reachable from the
//     source and the run reports Status NegativeCycle together with a witness
//     cycle. Otherwise it reports Converged with the final vectors.
//   - PathTo walks predecessor pointers from a target back to the source.
//
// Representation choices:
//
//   - Distance is a sum type: Finite(d) or Unreached. Relaxation never adds a
//     weight to an unreached distance, so no "infinity + negative weight"
//     overflow is possible; finite sums are overflow-checked (ErrOverflow).
//     Once relaxation has finished, a sum below the int64 range can only come
//     from a negative cycle and is classified as one.
//   - Predecessor is a tagged optional: NoPredecessor, IsSource or Via(u).
//     The source does not point at itself.
//   - Distance and predecessor vectors are allocated per run and returned to
//     the caller. An Engine holds only the immutable edge list, so concurrent
//     Run calls on the same Engine are independent.
//   - Verification compares distances (dist[v] > dist[u] + w), never indices.
//
// Complexity:
//
//   - Time:  O(V·E) for the relaxation passes, O(E) for verification.
//   - Space: O(V + E).
//
// Options:
//
//   - WithMaxWork(n):  reject graphs with V·max(E, 1) > n (ErrWorkLimit). Default DefaultMaxWork.
//   - WithFullPasses(): always run V−1 passes instead of stopping after a pass
//     that changes nothing. Results are identical either way.
//   - WithOnRelax(fn): observe every successful relaxation.
//
// Errors (sentinel):
//
//   - ErrInvalidGraph      malformed matrix or out-of-range vertex (wraps the cause).
//   - ErrVertexOutOfRange  source or target outside [0, V).
//   - ErrWorkLimit         V·max(E, 1) exceeds the configured bound.
//   - ErrOverflow          a finite path sum left the int64 range.
//   - ErrNegativeCycle     path requested from a NegativeCycle result.
//   - ErrUnreachable       no path from source to target.
//   - ErrPredecessorLoop   predecessor walk did not reach the source.
//
// Example:
//
//	adj, _ := matrix.NewAdjacency(rows)
//	res, err := bellmanford.ShortestPaths(adj, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Status == bellmanford.NegativeCycle {
//	    fmt.Println("negative cycle:", res.Cycle)
//	    return
//	}
//	path, err := res.PathTo(4)
package bellmanford
