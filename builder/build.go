// SPDX-License-Identifier: MIT
// Package: mallnav/builder
//
// build.go — the single entry point turning a populated venue into its
// routing graph.
//
// Order of construction (fixed, so rebuilds are identical):
//  1. Floors ascending by level.
//  2. Per floor: waypoints, waypoint links, shops, connectors, then either
//     nearest-waypoint attachment or direct declarations.
//  3. Vertical connector legs, connectors in registration order, level pairs ascending.
//  4. Connectivity audit.

package builder

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/mallnav/core"
	"github.com/katalvlaran/mallnav/reach"
	"github.com/katalvlaran/mallnav/venue"
)

// Strategy names how a floor's shops and connectors join the walkable network.
type Strategy int

const (
	// StrategyWaypoints attaches every shop and connector to its nearest corridor waypoint.
	StrategyWaypoints Strategy = iota + 1
	// StrategyDirect uses the connections declared between shops and connectors.
	StrategyDirect
)

// String returns "waypoints" or "direct".
func (s Strategy) String() string {
	switch s {
	case StrategyWaypoints:
		return "waypoints"
	case StrategyDirect:
		return "direct"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// StrategyFor picks the strategy for f from its corridor-layer capability.
func StrategyFor(f *venue.Floor) Strategy {
	if f.HasCorridorLayer() {
		return StrategyWaypoints
	}

	return StrategyDirect
}

// Warning is a data-integrity notice raised during construction. The
// offending item is skipped; construction continues.
type Warning struct {
	Level   int
	Subject string
	Reason  string
}

// String renders the warning for logs and terminals.
func (w Warning) String() string {
	return fmt.Sprintf("level %d: %s: %s", w.Level, w.Subject, w.Reason)
}

// Report describes one build.
type Report struct {
	Graph      *core.Graph
	Strategies map[int]Strategy
	Warnings   []Warning
	Components int
}

// run holds the mutable state of one Build call.
type run struct {
	v      *venue.Venue
	cfg    builderConfig
	g      *core.Graph
	report *Report
}

// Build constructs the routing graph of v, attaches it with v.SetGraph and
// returns a Report. Building again on an unchanged venue yields an identical graph.
//
// Errors:
//   - ErrNilVenue when v is nil.
//   - ErrGraphInsert (wrapping a core error) when the graph rejects a valid item.
//
// Complexity: O(F·(S+C)·W + E) where W is waypoints per floor.
func Build(v *venue.Venue, opts ...Option) (*Report, error) {
	if v == nil {
		return nil, ErrNilVenue
	}
	cfg := newBuilderConfig(opts...)
	r := &run{
		v:   v,
		cfg: cfg,
		g:   core.NewMixedGraph(),
		report: &Report{
			Strategies: make(map[int]Strategy),
		},
	}

	for _, f := range v.Floors() {
		if err := r.floor(f); err != nil {
			return nil, err
		}
	}
	if err := r.vertical(); err != nil {
		return nil, err
	}
	if err := r.audit(); err != nil {
		return nil, err
	}

	r.report.Graph = r.g
	v.SetGraph(r.g)
	stats := r.g.Stats()
	cfg.logger.Info("routing graph built",
		slog.Int("floors", len(r.report.Strategies)),
		slog.Int("vertices", stats.Vertices),
		slog.Int("edges", stats.Edges),
		slog.Int("vertical_edges", stats.DirectedEdges),
		slog.Int("components", r.report.Components),
		slog.Int("warnings", len(r.report.Warnings)),
	)

	return r.report, nil
}

// floor adds a floor's vertices and horizontal edges.
func (r *run) floor(f *venue.Floor) error {
	strategy := StrategyFor(f)
	r.report.Strategies[f.Level] = strategy
	r.cfg.logger.Debug("linking floor", slog.Int("floor", f.Level), slog.String("strategy", strategy.String()))

	for _, w := range f.Waypoints() {
		if err := r.g.AddVertex(venue.WaypointNodeID(w)); err != nil {
			return builderErrorf(stageVertices, err)
		}
	}
	if err := r.corridors(f); err != nil {
		return err
	}

	for _, s := range f.Shops() {
		if err := r.g.AddVertex(venue.ShopNodeID(s)); err != nil {
			return builderErrorf(stageVertices, err)
		}
	}
	for _, c := range f.Connectors() {
		if err := r.g.AddVertex(venue.ConnectorNodeID(c.Name, f.Level)); err != nil {
			return builderErrorf(stageVertices, err)
		}
	}

	switch strategy {
	case StrategyWaypoints:
		if len(f.Links()) > 0 {
			r.cfg.logger.Debug("direct connections ignored on corridor floor",
				slog.Int("floor", f.Level), slog.Int("count", len(f.Links())))
		}
		return r.attach(f)
	default:
		return r.direct(f)
	}
}

// corridors adds the declared waypoint-to-waypoint edges.
func (r *run) corridors(f *venue.Floor) error {
	for _, w := range f.Waypoints() {
		from := venue.WaypointNodeID(w)
		// venue.Floor only records links between declared waypoints.
		for _, id := range w.Links() {
			other, _ := f.Waypoint(id)
			if err := r.link(from, venue.WaypointNodeID(other), venue.Distance(w.Pos, other.Pos)); err != nil {
				return builderErrorf(stageCorridors, err)
			}
		}
	}

	return nil
}

// attach joins every shop and connector on f to its nearest waypoint.
func (r *run) attach(f *venue.Floor) error {
	waypoints := f.Waypoints()
	entities := make([]venue.Entity, 0, len(f.Shops())+len(f.Connectors()))
	for _, s := range f.Shops() {
		entities = append(entities, venue.ShopEntity(s))
	}
	for _, c := range f.Connectors() {
		entities = append(entities, venue.ConnectorEntity(c, f.Level))
	}

	for _, e := range entities {
		w, dist := nearestWaypoint(e, waypoints)
		if w == nil {
			continue
		}
		id, err := e.NodeID()
		if err != nil {
			return builderErrorf(stageAttach, err)
		}
		if err = r.link(id, venue.WaypointNodeID(w), dist); err != nil {
			return builderErrorf(stageAttach, err)
		}
	}

	return nil
}

// direct adds the explicit shop/connector connections of a floor without corridors.
func (r *run) direct(f *venue.Floor) error {
	for _, l := range f.Links() {
		from, errFrom := l.From.NodeID()
		to, errTo := l.To.NodeID()
		if err := errors.Join(errFrom, errTo); err != nil {
			r.warn(f.Level, l.From.Name()+" -> "+l.To.Name(), err.Error())
			continue
		}
		if from == to {
			r.warn(f.Level, from, "connection to itself")
			continue
		}
		if err := r.link(from, to, venue.Distance(l.From.Position(), l.To.Position())); err != nil {
			return builderErrorf(stageDirect, err)
		}
	}

	return nil
}

// vertical adds one directed leg per ordered level pair a connector may carry.
func (r *run) vertical() error {
	for _, c := range r.v.Connectors() {
		levels := c.Levels()
		if len(levels) < 2 {
			r.warn(firstLevel(levels), "Connector:"+c.Name, "serves fewer than two floors")
		}
		for _, from := range levels {
			for _, to := range levels {
				if from == to || !c.Traversable(from, to) {
					continue
				}
				w := math.Abs(float64(to-from)) * r.cfg.verticalUnitCost
				_, err := r.g.AddEdge(
					venue.ConnectorNodeID(c.Name, from),
					venue.ConnectorNodeID(c.Name, to),
					w,
					core.WithEdgeDirected(true),
				)
				if err != nil && !errors.Is(err, core.ErrMultiEdgeNotAllowed) {
					return builderErrorf(stageVertical, err)
				}
			}
		}
	}

	return nil
}

// audit flags connectors without a horizontal edge and isolated shops, and
// counts components.
func (r *run) audit() error {
	for _, f := range r.v.Floors() {
		for _, c := range f.Connectors() {
			id := venue.ConnectorNodeID(c.Name, f.Level)
			if !r.hasHorizontalEdge(id) {
				r.warn(f.Level, id, "connector is not linked to the floor")
			}
		}
		for _, s := range f.Shops() {
			id := venue.ShopNodeID(s)
			if nbrs, err := r.g.NeighborIDs(id); err == nil && len(nbrs) == 0 {
				r.warn(f.Level, id, "shop is isolated")
			}
		}
	}

	comps, err := reach.Components(r.g)
	if err != nil {
		return builderErrorf(stageComponents, err)
	}
	r.report.Components = len(comps)

	return nil
}

func (r *run) hasHorizontalEdge(id string) bool {
	edges, err := r.g.Neighbors(id)
	if err != nil {
		return false
	}
	for _, e := range edges {
		if !e.Directed {
			return true
		}
	}

	return false
}

// link adds an undirected edge; repeated declarations of the same pair are ignored.
func (r *run) link(a, b string, weight float64) error {
	_, err := r.g.AddEdge(a, b, weight)
	if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
		return nil
	}

	return err
}

func (r *run) warn(level int, subject, reason string) {
	w := Warning{Level: level, Subject: subject, Reason: reason}
	r.report.Warnings = append(r.report.Warnings, w)
	r.cfg.logger.Warn("venue data issue",
		slog.Int("floor", level),
		slog.String("subject", subject),
		slog.String("reason", reason),
	)
}

// nearestWaypoint returns the waypoint closest to e; the first declared wins ties.
func nearestWaypoint(e venue.Entity, waypoints []*venue.Waypoint) (*venue.Waypoint, float64) {
	var best *venue.Waypoint
	bestDist := math.Inf(1)
	pos := e.Position()
	for _, w := range waypoints {
		if d := venue.Distance(pos, w.Pos); d < bestDist {
			best, bestDist = w, d
		}
	}

	return best, bestDist
}

func firstLevel(levels []int) int {
	if len(levels) == 0 {
		return 0
	}

	return levels[0]
}
