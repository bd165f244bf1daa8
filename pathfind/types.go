// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: options, results and error outcomes of FindPath.
//
// Options:
//
//	– RequireAccessible: never step into a connector vertex whose connector is inaccessible.
//	– FloorWeight:       heuristic cost per floor of level difference (≤ vertical unit cost).
//	– Logger:            receives not-found suggestions and search summaries.
//	– OnSuggestions:     side channel for close-match shop names when a name is unknown.
//	– MaxHops:           Reachable only; stop the walk after this many edges (0 = no limit).
//
// Errors (sentinel):
//
//	– ErrNilVenue       if the venue pointer is nil.
//	– ErrGraphNotBuilt  if the venue has no routing graph attached yet.
//	– ErrShopNotFound   if a start or end name matches no shop (wrapped in *ShopNotFoundError).
//	– ErrNoPath         if no target is reachable under the current constraints.

package pathfind

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/mallnav/builder"
)

// Sentinel errors returned by FindPath.
var (
	// ErrNilVenue indicates that a nil *venue.Venue was passed.
	ErrNilVenue = errors.New("pathfind: venue is nil")

	// ErrGraphNotBuilt indicates the venue has no routing graph; run builder.Build first.
	ErrGraphNotBuilt = errors.New("pathfind: venue graph not built")

	// ErrShopNotFound indicates a start or end name that matches no shop.
	ErrShopNotFound = errors.New("pathfind: shop not found")

	// ErrNoPath indicates the search exhausted the frontier without reaching a target.
	ErrNoPath = errors.New("pathfind: no path found")
)

// ShopNotFoundError reports which name failed to resolve.
// errors.Is(err, ErrShopNotFound) holds for it.
type ShopNotFoundError struct {
	Name string
}

// Error implements error.
func (e *ShopNotFoundError) Error() string {
	return fmt.Sprintf("%q not found", e.Name)
}

// Unwrap exposes ErrShopNotFound.
func (e *ShopNotFoundError) Unwrap() error { return ErrShopNotFound }

// DefaultFloorWeight is the heuristic cost per floor of level difference. It
// equals the builder's vertical unit cost, the cheapest possible real cost of
// changing one floor, so the heuristic stays admissible.
const DefaultFloorWeight = builder.DefaultVerticalUnitCost

// Options configures FindPath.
type Options struct {
	RequireAccessible bool
	FloorWeight       float64
	Logger            *slog.Logger
	OnSuggestions     func(name string, suggestions []string)
	MaxHops           int
}

// Option represents a functional option for configuring FindPath.
type Option func(*Options)

// DefaultOptions returns Options with no accessibility constraint, the default
// floor weight, a discarding logger and no suggestion handler.
func DefaultOptions() Options {
	return Options{
		FloorWeight: DefaultFloorWeight,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithAccessible sets whether the route must avoid inaccessible connectors.
func WithAccessible(required bool) Option {
	return func(o *Options) {
		o.RequireAccessible = required
	}
}

// WithFloorWeight sets the heuristic cost per floor of level difference.
// Keep it at or below the builder's vertical unit cost for optimal routes.
// Panics if w is negative or not finite.
func WithFloorWeight(w float64) Option {
	if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		panic("pathfind: WithFloorWeight requires a finite non-negative weight")
	}
	return func(o *Options) {
		o.FloorWeight = w
	}
}

// WithLogger routes search diagnostics to logger. Panics on nil.
func WithLogger(logger *slog.Logger) Option {
	if logger == nil {
		panic("pathfind: WithLogger(nil)")
	}
	return func(o *Options) {
		o.Logger = logger.With("component", "pathfind")
	}
}

// WithSuggestionHandler registers fn to receive close-match shop names
// whenever a start or end name does not resolve.
func WithSuggestionHandler(fn func(name string, suggestions []string)) Option {
	return func(o *Options) {
		o.OnSuggestions = fn
	}
}

// WithMaxHops limits Reachable to destinations at most n edges away.
// Zero means no limit. Panics if n is negative.
func WithMaxHops(n int) Option {
	if n < 0 {
		panic("pathfind: WithMaxHops requires n >= 0")
	}
	return func(o *Options) {
		o.MaxHops = n
	}
}

// Result is a found route.
type Result struct {
	// Path is the ordered vertex sequence from the chosen start vertex to the reached target.
	Path []string
	// Cost is the summed edge weight along Path.
	Cost float64
	// Expanded counts vertices popped and expanded by the search.
	Expanded int
}

// Start returns the first vertex of the route.
func (r *Result) Start() string { return r.Path[0] }

// Target returns the last vertex of the route.
func (r *Result) Target() string { return r.Path[len(r.Path)-1] }
