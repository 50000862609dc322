package converters

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/bellman/matrix"
)

// ToGonum exports adj as a gonum weighted directed graph. Node IDs equal
// matrix indices; every vertex is present even when isolated. Missing edges
// weigh +Inf and self weight is 0, matching gonum's path package conventions.
//
// Self-loops are rejected with ErrSelfLoop since simple graphs cannot hold them.
func ToGonum(adj *matrix.Adjacency) (*simple.WeightedDirectedGraph, error) {
	if adj == nil {
		return nil, ErrNilGraph
	}
	g := simple.NewWeightedDirectedGraph(0, math.Inf(1))
	for i := 0; i < adj.Order(); i++ {
		g.AddNode(simple.Node(i))
	}
	for _, e := range adj.Edges() {
		if e.From == e.To {
			return nil, fmt.Errorf("converters: ToGonum: edge %s: %w", e, ErrSelfLoop)
		}
		g.SetWeightedEdge(simple.WeightedEdge{
			F: simple.Node(e.From),
			T: simple.Node(e.To),
			W: float64(e.Weight),
		})
	}

	return g, nil
}
