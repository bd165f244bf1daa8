// SPDX-License-Identifier: MIT
//
// File: astar.go
// Role: multi-source, multi-target A* over a venue routing graph.
//
// Algorithm:
//   - Every vertex of a shop named like the start is seeded with g=0.
//   - Every vertex of a shop named like the end is a goal; the first goal popped wins.
//   - h(n) = min over goals of planar distance + |Δlevel|·FloorWeight.
//   - Lazy decrease-key: duplicates are pushed, stale entries are skipped on pop.
//   - Priority order is (f, g, vertex id) ascending, so equal-cost searches are reproducible.
//
// Complexity:
//   - Time:  O((V + E) log V · T) where T is the number of goal vertices (heuristic term).
//   - Space: O(V + E).

package pathfind

import (
	"container/heap"
	"fmt"
	"log/slog"
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/mallnav/core"
	"github.com/katalvlaran/mallnav/venue"
)

// FindPath returns the cheapest route from any shop named start to any shop
// named end. Names match case-insensitively; a name shared by shops on
// several floors makes every one of them a candidate.
//
// When a name does not resolve, FindPath reports close matches through the
// logger and the suggestion handler, then returns a *ShopNotFoundError.
//
// Errors:
//   - ErrNilVenue, ErrGraphNotBuilt.
//   - ErrShopNotFound (as *ShopNotFoundError) for an unknown start or end.
//   - ErrNoPath if no goal is reachable, e.g. every route needs an inaccessible connector.
//
// FindPath never mutates the venue or its graph and may run concurrently
// with other queries.
func FindPath(v *venue.Venue, start, end string, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if v == nil {
		return nil, ErrNilVenue
	}
	g := v.Graph()
	if g == nil {
		return nil, ErrGraphNotBuilt
	}

	sources, err := resolve(v, start, cfg)
	if err != nil {
		return nil, err
	}
	targets, err := resolve(v, end, cfg)
	if err != nil {
		return nil, err
	}

	r := newRunner(v, g, cfg, targets)
	r.init(sources)
	reached, err := r.process()
	if err != nil {
		return nil, err
	}
	if reached == "" {
		cfg.Logger.Info("no path found",
			slog.String("start", start),
			slog.String("end", end),
			slog.Bool("accessible", cfg.RequireAccessible),
			slog.Int("expanded", r.expanded),
		)
		return nil, fmt.Errorf("%w: from %q to %q", ErrNoPath, start, end)
	}

	res := &Result{
		Path:     r.path(reached),
		Cost:     r.best[reached],
		Expanded: r.expanded,
	}
	cfg.Logger.Debug("path found",
		slog.String("start", res.Start()),
		slog.String("target", res.Target()),
		slog.Float64("cost", res.Cost),
		slog.Int("hops", len(res.Path)-1),
		slog.Int("expanded", res.Expanded),
	)

	return res, nil
}

// resolve maps a shop name to the vertex keys of every matching shop.
func resolve(v *venue.Venue, name string, cfg Options) ([]*venue.Shop, error) {
	shops := v.ShopsNamed(name)
	if len(shops) > 0 {
		return shops, nil
	}

	suggestions := Suggest(v, name)
	cfg.Logger.Warn("shop not found",
		slog.String("name", name),
		slog.Any("suggestions", suggestions),
	)
	if cfg.OnSuggestions != nil {
		cfg.OnSuggestions(name, suggestions)
	}

	return nil, &ShopNotFoundError{Name: name}
}

type goal struct {
	id    string
	pos   r2.Vec
	level int
}

// runner holds the mutable state for a single search.
type runner struct {
	v       *venue.Venue
	g       *core.Graph
	options Options

	goals   []goal
	isGoal  map[string]bool
	blocked map[string]bool    // connector vertices closed by the accessibility filter
	best    map[string]float64 // cheapest known cost from any source
	prev    map[string]string
	h       map[string]float64
	pq      nodePQ

	expanded int
}

func newRunner(v *venue.Venue, g *core.Graph, cfg Options, targets []*venue.Shop) *runner {
	r := &runner{
		v:       v,
		g:       g,
		options: cfg,
		isGoal:  make(map[string]bool, len(targets)),
		blocked: make(map[string]bool),
		best:    make(map[string]float64),
		prev:    make(map[string]string),
		h:       make(map[string]float64),
	}
	for _, s := range targets {
		id := venue.ShopNodeID(s)
		r.isGoal[id] = true
		r.goals = append(r.goals, goal{id: id, pos: s.Pos, level: s.Level})
	}
	if cfg.RequireAccessible {
		r.blocked = inaccessibleVertices(v)
	}

	return r
}

// inaccessibleVertices returns the floor vertices of every connector that is
// not accessible.
func inaccessibleVertices(v *venue.Venue) map[string]bool {
	out := make(map[string]bool)
	for _, c := range v.Connectors() {
		if c.Accessible {
			continue
		}
		for _, l := range c.Levels() {
			out[venue.ConnectorNodeID(c.Name, l)] = true
		}
	}

	return out
}

// init seeds every source vertex with cost zero.
func (r *runner) init(sources []*venue.Shop) {
	heap.Init(&r.pq)
	for _, s := range sources {
		id := venue.ShopNodeID(s)
		if !r.g.HasVertex(id) {
			continue
		}
		r.best[id] = 0
		r.push(id, 0)
	}
}

// process runs the main loop and returns the first goal popped, or "" when
// the frontier empties.
func (r *runner) process() (string, error) {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		if item.g > r.best[item.id] {
			continue // stale
		}
		if r.isGoal[item.id] {
			return item.id, nil
		}
		r.expanded++
		if err := r.relax(item.id, item.g); err != nil {
			return "", err
		}
	}

	return "", nil
}

// relax pushes every neighbor of u whose cost improves through u.
func (r *runner) relax(u string, gu float64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("pathfind: neighbors of %q: %w", u, err)
	}

	var next string
	var cost float64
	for _, e := range edges {
		next = e.Opposite(u)
		if r.blocked[next] {
			continue
		}
		cost = gu + e.Weight
		if old, seen := r.best[next]; seen && cost >= old {
			continue
		}
		r.best[next] = cost
		r.prev[next] = u
		r.push(next, cost)
	}

	return nil
}

func (r *runner) push(id string, g float64) {
	heap.Push(&r.pq, &nodeItem{id: id, g: g, f: g + r.heuristic(id)})
}

// heuristic estimates the remaining cost from id to the nearest goal. A
// vertex that does not resolve to an entity estimates zero.
func (r *runner) heuristic(id string) float64 {
	if h, ok := r.h[id]; ok {
		return h
	}
	h := 0.0
	if e, ok := r.v.Resolve(id); ok {
		pos := e.Position()
		h = math.Inf(1)
		for _, t := range r.goals {
			est := venue.Distance(pos, t.pos) + math.Abs(float64(e.Level-t.level))*r.options.FloorWeight
			if est < h {
				h = est
			}
		}
	}
	r.h[id] = h

	return h
}

// path walks predecessors back from target to its source.
func (r *runner) path(target string) []string {
	var out []string
	for at := target; ; {
		out = append(out, at)
		p, ok := r.prev[at]
		if !ok {
			break
		}
		at = p
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// nodeItem is a frontier entry.
type nodeItem struct {
	id string
	g  float64 // cost from the nearest source
	f  float64 // g + heuristic
}

// nodePQ is a min-heap of *nodeItem ordered by (f, g, id).
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.g != b.g {
		return a.g < b.g
	}

	return a.id < b.id
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
