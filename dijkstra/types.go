package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Infinity is the distance reported for nodes that were never reached.
const Infinity int64 = math.MaxInt64

// Sentinel errors returned by Dijkstra and PathTo.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative,
	// which would treat every edge as impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")

	// ErrUnreachable is returned by PathTo when dest has no recorded predecessor chain.
	ErrUnreachable = errors.New("dijkstra: destination unreachable")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev is nil.
// MaxDistance      – nodes whose distance would exceed this stay at Infinity.
//
//	Must be ≥ 0. Default is Infinity (no cap).
//
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped.
//
//	Must be > 0. Default is Infinity (no obstacles).
type Options struct {
	ReturnPath       bool  // Whether to return the predecessor map
	MaxDistance      int64 // Maximum distance to explore
	InfEdgeThreshold int64 // Weight threshold at or above which edges are non-traversable

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
// Invalid options are recorded and surfaced as an error by Dijkstra.
type Option func(*Options)

// DefaultOptions returns Options with no path output, no distance cap and
// no impassable edges.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Negative values cause
// Dijkstra to return ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats edges with weight ≥ threshold as impassable.
// Zero or negative values cause Dijkstra to return ErrBadInfThreshold.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadInfThreshold, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}
