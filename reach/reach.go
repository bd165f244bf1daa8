// SPDX-License-Identifier: MIT

package reach

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/mallnav/core"
)

// queueItem pairs a vertex ID with its hop depth.
type queueItem struct {
	id    string
	depth int
}

// walker encapsulates mutable walk state.
type walker struct {
	graph *core.Graph
	opts  Options
	queue []queueItem
	res   *Result
}

// From walks g breadth-first from startID, following edges the way a
// traveller can (directed edges only forwards).
// Returns ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation or ErrNeighbors.
func From(g *core.Graph, startID string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(startID) {
		return nil, ErrStartVertexNotFound
	}

	n := g.VertexCount()
	w := &walker{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(startID, 0, "")

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, d int, parent string) {
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		neighbors, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return fmt.Errorf("%w: failed to get neighbors of %q: %v", ErrNeighbors, item.id, err)
		}
		next := item.depth + 1
		for _, nbr := range neighbors {
			if !w.opts.FilterNeighbor(item.id, nbr) {
				continue
			}
			if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
				continue
			}
			if !w.res.Reached(nbr) {
				w.enqueue(nbr, next, item.id)
			}
		}
	}

	return nil
}

// Components partitions g into weakly connected components: directed edges
// are treated as two-way links. Components are ordered by their smallest
// vertex ID and each component lists its vertices in sorted order.
func Components(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	adj := make(map[string][]string)
	for _, e := range g.Edges() {
		adj[e.From] = append(adj[e.From], e.To)
		adj[e.To] = append(adj[e.To], e.From)
	}

	seen := make(map[string]bool)
	var out [][]string
	for _, start := range g.Vertices() {
		if seen[start] {
			continue
		}
		seen[start] = true
		comp := []string{start}
		for i := 0; i < len(comp); i++ {
			for _, nbr := range adj[comp[i]] {
				if !seen[nbr] {
					seen[nbr] = true
					comp = append(comp, nbr)
				}
			}
		}
		sort.Strings(comp)
		out = append(out, comp)
	}

	return out, nil
}
