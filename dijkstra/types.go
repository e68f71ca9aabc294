package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Unreachable is the distance reported for vertices the source cannot reach.
const Unreachable = -1

var (
	ErrNilGraph       = errors.New("dijkstra: graph is nil")
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")
	// ErrBadMaxDistance rejects a negative hop cap.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Options is the resolved configuration of one Dijkstra call.
type Options struct {
	Source      int64
	ReturnPath  bool // fill the predecessor map
	MaxDistance int  // hop cap, math.MaxInt when unset

	err error
}

// Option adjusts Options.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id int64) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithReturnPath makes Dijkstra return a predecessor map instead of nil.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum hop count. Vertices whose shortest distance
// would exceed it are reported as Unreachable. Negative values make Dijkstra
// return ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions searches from source without a cap or predecessor map.
func DefaultOptions(source int64) Options {
	return Options{Source: source, MaxDistance: math.MaxInt}
}

// Score is the closeness centrality of one vertex.
//
// Raw is Σ 1/d over every other vertex at finite, non-zero distance d.
// Normalized is Raw/(n−1) for a graph of n > 1 vertices, else 0.
type Score struct {
	ID         int64
	Raw        float64
	Normalized float64
	Reachable  int // vertices counted in Raw
}
