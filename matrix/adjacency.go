// SPDX-License-Identifier: MIT

package matrix

import (
	"cmp"
	"fmt"
	"slices"
)

// Adjacency is an immutable V×V weight matrix of a directed graph.
//
// Cells equal to the absent sentinel (see WithAbsent) mean "no edge".
// Only the present cells are stored, as a row-major edge list derived once at
// construction, so memory is O(E) whatever V is. The list is shared by all
// readers and an *Adjacency may be used from many goroutines without locking.
type Adjacency struct {
	n      int    // vertex count V
	absent int64  // sentinel for "no edge"
	edges  []Edge // row-major edge list, sorted by (From, To), no duplicates
}

// NewAdjacency validates rows and returns an independent copy.
//
// Errors:
//   - ErrNilMatrix  if rows is nil.
//   - ErrNonSquare  if any row length differs from len(rows).
//
// Complexity: O(V²) time, O(E) memory.
func NewAdjacency(rows [][]int64, opts ...Option) (*Adjacency, error) {
	// 1) Validate shape before reading any cell.
	if err := ValidateSquare(rows); err != nil {
		return nil, fmt.Errorf("NewAdjacency: %w", err)
	}
	o := gatherOptions(opts...)

	// 2) Keep only the present cells; scanEdges already emits row-major order.
	return &Adjacency{
		n:      len(rows),
		absent: o.absent,
		edges:  scanEdges(rows, o.absent),
	}, nil
}

// FromEdges builds an n-vertex Adjacency from a sparse edge list using NoEdge
// as the absent sentinel, so zero-weight edges are preserved.
//
// Duplicate (From, To) pairs follow a last-write-wins policy; the resulting
// edge list is row-major regardless of the input order. No V×V storage is
// allocated, so a huge n with few edges is cheap here; size limits are
// enforced by the consumers (see bellmanford.WithMaxWork).
//
// Errors:
//   - ErrInvalidDimensions if n < 0.
//   - ErrOutOfRange        if an endpoint is outside [0, n).
//   - ErrInvalidWeight     if a weight equals NoEdge.
//
// Complexity: O(E log E) time, O(E) memory.
func FromEdges(n int, edges []Edge) (*Adjacency, error) {
	// 1) Validate the vertex count.
	if n < 0 {
		return nil, fmt.Errorf("FromEdges: n=%d: %w", n, ErrInvalidDimensions)
	}

	// 2) Validate every edge; later duplicates overwrite earlier ones.
	latest := make(map[[2]int]int64, len(edges))
	for k, e := range edges {
		if err := ValidateIndex(e.From, n); err != nil {
			return nil, fmt.Errorf("FromEdges: edge %d from: %w", k, err)
		}
		if err := ValidateIndex(e.To, n); err != nil {
			return nil, fmt.Errorf("FromEdges: edge %d to: %w", k, err)
		}
		if e.Weight == NoEdge {
			return nil, fmt.Errorf("FromEdges: edge %d weight=%d: %w", k, e.Weight, ErrInvalidWeight)
		}
		latest[[2]int{e.From, e.To}] = e.Weight
	}

	// 3) Emit the surviving edges in row-major order.
	out := make([]Edge, 0, len(latest))
	for key, w := range latest {
		out = append(out, Edge{From: key[0], To: key[1], Weight: w})
	}
	slices.SortFunc(out, compareCells)

	return &Adjacency{n: n, absent: NoEdge, edges: out}, nil
}

// compareCells orders edges row-major by (From, To).
func compareCells(a, b Edge) int {
	if c := cmp.Compare(a.From, b.From); c != 0 {
		return c
	}

	return cmp.Compare(a.To, b.To)
}

// Order returns the number of vertices V.
func (a *Adjacency) Order() int { return a.n }

// Absent returns the sentinel that marks a missing edge.
func (a *Adjacency) Absent() int64 { return a.absent }

// Weight returns the weight of i→j and whether the edge exists.
// Out-of-range indices report (0, false).
//
// Complexity: O(log E).
func (a *Adjacency) Weight(i, j int) (int64, bool) {
	if i < 0 || i >= a.n || j < 0 || j >= a.n {
		return 0, false
	}
	k, found := slices.BinarySearchFunc(a.edges, Edge{From: i, To: j}, compareCells)
	if !found {
		return 0, false
	}

	return a.edges[k].Weight, true
}

// HasEdge reports whether i→j exists.
func (a *Adjacency) HasEdge(i, j int) bool {
	_, ok := a.Weight(i, j)
	return ok
}

// Edges returns a copy of the row-major edge list.
func (a *Adjacency) Edges() []Edge {
	out := make([]Edge, len(a.edges))
	copy(out, a.edges)

	return out
}

// EdgeCount returns E.
func (a *Adjacency) EdgeCount() int { return len(a.edges) }

// Rows returns a fresh V×V copy of the cells, absent sentinels included.
//
// Complexity: O(V² + E) time and memory; callers holding a huge sparse
// Adjacency should prefer Edges.
func (a *Adjacency) Rows() [][]int64 {
	rows := make([][]int64, a.n)
	for i := range rows {
		rows[i] = make([]int64, a.n)
		if a.absent != 0 {
			for j := range rows[i] {
				rows[i][j] = a.absent
			}
		}
	}
	for _, e := range a.edges {
		rows[e.From][e.To] = e.Weight
	}

	return rows
}
