// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Adjacency construction.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: option constructors never panic; every value of
//     int64 is a legal absent sentinel.
package matrix

import "math"

// NoEdge is the canonical absent sentinel when zero-weight edges are needed.
// No realistic edge weight is math.MinInt64.
const NoEdge int64 = math.MinInt64

// DefaultAbsent is the absent sentinel used when no option is given:
// a zero cell means "no edge".
const DefaultAbsent int64 = 0

// Option mutates Options.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	absent int64 // DefaultAbsent
}

// WithAbsent selects the value that marks a missing edge.
// Any other value, 0 included, is stored as an edge weight.
func WithAbsent(v int64) Option {
	return func(o *Options) { o.absent = v }
}

// gatherOptions resolves the defaults and applies opts in order.
func gatherOptions(opts ...Option) Options {
	o := Options{absent: DefaultAbsent}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
