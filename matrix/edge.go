// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Edge is a directed, weighted edge From→To.
// Edges are derived from a matrix in row-major order, which fixes the
// relaxation order used by bellmanford (and therefore tie-breaking between
// equally short predecessors).
type Edge struct {
	From   int   // source vertex index
	To     int   // destination vertex index
	Weight int64 // edge weight, may be negative
}

// String renders the edge as "u->v(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d->%d(%d)", e.From, e.To, e.Weight)
}

// EdgeList derives the edge list of a square matrix in which a zero entry
// means "no edge".
//
// For every (i, j) in row-major order, (i, j, rows[i][j]) is emitted when
// rows[i][j] != 0. Parallel edges cannot occur and no deduplication is done.
// A non-square or nil matrix is rejected before anything is emitted.
//
// Complexity: O(V²) time, O(E) memory.
func EdgeList(rows [][]int64) ([]Edge, error) {
	if err := ValidateSquare(rows); err != nil {
		return nil, fmt.Errorf("EdgeList: %w", err)
	}

	return scanEdges(rows, DefaultAbsent), nil
}

// scanEdges collects every cell that differs from absent. rows must be square.
func scanEdges(rows [][]int64, absent int64) []Edge {
	edges := make([]Edge, 0, len(rows))
	var i, j int
	var w int64
	for i = range rows {
		for j, w = range rows[i] {
			if w == absent {
				continue
			}
			edges = append(edges, Edge{From: i, To: j, Weight: w})
		}
	}

	return edges
}
