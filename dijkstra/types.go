// Package dijkstra defines core types and configuration options
// for Dijkstra's shortest-path algorithm on weighted graphs.
package dijkstra

import (
	"errors"
	"math"
)

// Inf is the Dist sentinel for vertices unreachable from the source.
const Inf = int64(math.MaxInt64)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted
	// but Dijkstra requires non-negative weights to compute shortest paths.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexOutOfRange indicates that the source (or a PathTo destination)
	// lies outside [0, n). The source must be set via the Source option.
	ErrVertexOutOfRange = errors.New("dijkstra: vertex out of range")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// in the graph. Dijkstra's greedy finalization is only correct for
	// non-negative weights, so this is rejected upfront.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value,
	// which is not meaningful for a distance threshold.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrUnreachable is returned by PathTo when no path exists.
	ErrUnreachable = errors.New("dijkstra: vertex unreachable from source")

	// ErrNoPredecessors is returned by PathTo when the run did not record
	// predecessors (WithReturnPath was not supplied).
	ErrNoPredecessors = errors.New("dijkstra: predecessors not recorded, use WithReturnPath")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source      – starting vertex id (must lie in [0, n); default -1, always invalid).
// ReturnPath  – if true, record the predecessor slice; otherwise Prev is nil.
// MaxDistance – optional cap on distances to explore (vertices beyond are skipped).
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
type Options struct {
	Source      int   // The id of the source vertex
	ReturnPath  bool  // Whether to record the predecessor slice
	MaxDistance int64 // Maximum distance to explore

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex id. Must be supplied on every call;
// the default of -1 fails validation with ErrVertexOutOfRange.
func Source(v int) Option {
	return func(o *Options) {
		o.Source = v
	}
}

// WithReturnPath enables recording of the predecessor slice in the result.
// If not set (default), Result.Prev is nil and PathTo is unavailable.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Vertices whose shortest distance would exceed this value are not explored.
// Negative values are recorded and surfaced as ErrBadMaxDistance when
// Dijkstra is invoked. Default (if not set) is math.MaxInt64 (no cap).
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns an Options struct initialized with the defaults:
//   - Source:      -1 (must be overridden via Source)
//   - ReturnPath:  false (no predecessor slice)
//   - MaxDistance: math.MaxInt64 (no distance limit; explore all reachable)
func DefaultOptions() Options {
	return Options{
		Source:      -1,
		ReturnPath:  false,
		MaxDistance: math.MaxInt64,
	}
}
