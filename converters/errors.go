package converters

import "errors"

var (
	// ErrEmptyLabel indicates that a vertex label is the empty string.
	ErrEmptyLabel = errors.New("converters: empty vertex label")

	// ErrDuplicateLabel indicates that the same label names two vertices.
	ErrDuplicateLabel = errors.New("converters: duplicate vertex label")

	// ErrLabelCount indicates that the label set does not match the vertex count.
	ErrLabelCount = errors.New("converters: label count does not match vertex count")

	// ErrNilGraph indicates that a nil graph or adjacency was passed.
	ErrNilGraph = errors.New("converters: graph is nil")

	// ErrSelfLoop is returned by ToGonum, whose simple graphs cannot hold self-loops.
	ErrSelfLoop = errors.New("converters: self-loop not representable")

	// ErrResultMismatch indicates a bellmanford.Result computed on a different graph.
	ErrResultMismatch = errors.New("converters: result does not match graph")

	// ErrWeightRange indicates an edge weight that does not fit the target type.
	ErrWeightRange = errors.New("converters: edge weight out of range")
)
