package bellmanford

import (
	"math"
	"strconv"
)

// Distance is the best-known distance of a vertex from the source:
// either Finite(d) or Unreached. The zero value is Unreached.
type Distance struct {
	value   int64
	reached bool
}

// Unreached is the distance of a vertex no relaxation has touched.
var Unreached = Distance{}

// Finite returns a reached distance d.
func Finite(d int64) Distance {
	return Distance{value: d, reached: true}
}

// Reached reports whether the distance is finite.
func (d Distance) Reached() bool { return d.reached }

// Value returns the finite distance and true, or (0, false) if unreached.
func (d Distance) Value() (int64, bool) {
	return d.value, d.reached
}

// String renders the distance, "∞" when unreached.
func (d Distance) String() string {
	if !d.reached {
		return "∞"
	}

	return strconv.FormatInt(d.value, 10)
}

// through returns d + w as a Distance.
// Unreached stays unreached; ok is false when the sum overflows int64.
func (d Distance) through(w int64) (Distance, bool) {
	if !d.reached {
		return Unreached, true
	}
	if (w > 0 && d.value > math.MaxInt64-w) || (w < 0 && d.value < math.MinInt64-w) {
		return Unreached, false
	}

	return Finite(d.value + w), true
}

// improves reports whether d is strictly shorter than old.
// Unreached never improves anything; every finite value improves Unreached.
func (d Distance) improves(old Distance) bool {
	if !d.reached {
		return false
	}
	if !old.reached {
		return true
	}

	return d.value < old.value
}

// PredecessorKind tags a Predecessor.
type PredecessorKind int

const (
	// NoPredecessor marks an unreached vertex.
	NoPredecessor PredecessorKind = iota

	// IsSource marks the source vertex itself.
	IsSource

	// ViaVertex marks a vertex reached through another vertex.
	ViaVertex
)

// Predecessor records which vertex precedes a vertex on its best-known path.
// The zero value is NoPredecessor.
type Predecessor struct {
	kind   PredecessorKind
	vertex int
}

// Via returns a predecessor pointing at u.
func Via(u int) Predecessor {
	return Predecessor{kind: ViaVertex, vertex: u}
}

// AtSource returns the predecessor tag of the source vertex.
func AtSource() Predecessor {
	return Predecessor{kind: IsSource}
}

// Kind returns the tag.
func (p Predecessor) Kind() PredecessorKind { return p.kind }

// Vertex returns the preceding vertex and true for ViaVertex, (-1, false) otherwise.
func (p Predecessor) Vertex() (int, bool) {
	if p.kind != ViaVertex {
		return -1, false
	}

	return p.vertex, true
}

// String renders "-" for NoPredecessor, "source" for IsSource, else the index.
func (p Predecessor) String() string {
	switch p.kind {
	case IsSource:
		return "source"
	case ViaVertex:
		return strconv.Itoa(p.vertex)
	default:
		return "-"
	}
}
