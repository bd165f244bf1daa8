// SPDX-License-Identifier: MIT
//
// types.go — tunable options and error definitions for reachability walks.

package reach

import (
	"errors"
	"fmt"
)

// Sentinel errors for reachability queries.
var (
	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("reach: start vertex not found")

	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("reach: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("reach: invalid option supplied")

	// ErrNeighbors is returned when fetching neighbors from the graph fails.
	ErrNeighbors = errors.New("reach: neighbor iteration error")
)

// Option configures a reachability walk via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation when
// the walk starts.
type Option func(*Options)

// Options holds parameters that shape a walk.
type Options struct {
	// MaxDepth, if > 0, stops exploring beyond this many hops.
	MaxDepth int

	// FilterNeighbor can skip a traversal curr→neighbor by returning false.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns Options with no depth limit and no filtering.
func DefaultOptions() Options {
	return Options{
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithMaxDepth stops the walk at the given hop count.
//
//	d > 0: limit to depth d
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a walk:
//   - Order: vertices visited, in visit sequence.
//   - Depth: hop count from the start for every reached vertex.
//   - Parent: predecessor of every reached vertex except the start.
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// Reached reports whether id was visited.
func (r *Result) Reached(id string) bool {
	_, ok := r.Depth[id]
	return ok
}

// PathTo reconstructs the hop path from the start vertex to dest.
func (r *Result) PathTo(dest string) ([]string, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("reach: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
