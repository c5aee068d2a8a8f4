// Package dfs defines options and error definitions for iterative
// depth-first traversal over a core.Graph.
package dfs

import (
	"context"
	"errors"
)

// Sentinel errors for DFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexOutOfRange is returned when the source lies outside [0, n).
	ErrVertexOutOfRange = errors.New("dfs: vertex out of range")
)

// Option configures DFS behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize DFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is invoked on vertex discovery (pre-order).
	// Returning an error aborts the traversal with that error.
	OnVisit func(v int) error

	// FilterNeighbor can skip edges by returning false.
	// Called for each edge curr→neighbor.
	FilterNeighbor func(curr, neighbor int) bool
}

// DefaultOptions returns Options with background context, a no-op visit
// hook, and no neighbor filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnVisit:        func(int) error { return nil },
		FilterNeighbor: func(_, _ int) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a pre-order hook; returning an error stops the DFS.
func WithOnVisit(fn func(v int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor int) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a DFS traversal:
//   - Order: vertices in discovery (pre-order) sequence.
//   - Parent: predecessor in the DFS tree per vertex, -1 for the source
//     and for vertices the traversal never reached.
type Result struct {
	Order  []int
	Parent []int
}
