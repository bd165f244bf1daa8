// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/EdgeBetween/Edges/EdgeCount,
//       plus nextEdgeID().
// Determinism:
//   - Edges() returns edges in creation order (Edge.ID sequence asc).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock.
//   - Read queries under muEdgeAdj read lock.

package core

import (
	"math"
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is a private textual prefix for edge identifiers.
// Ensures stable human-readable IDs like "e1", "e2", ...
const edgeIDPrefix = 'e'

// AddEdge creates a new edge, optionally directed in a mixed graph.
//
// Steps:
//  1. Validate IDs, weight, loops.
//  2. If opts present without allowMixed ⇒ ErrMixedEdgesNotAllowed.
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj, check multi-edge constraint.
//  5. Generate eid atomically.
//  6. Build Edge struct (global g.directed default), apply opts.
//  7. Store in g.edges and adjacency; mirror when undirected.
//
// Complexity: O(1) amortized (hash-map + nested-map updates).
func (g *Graph) AddEdge(from, to string, weight float64, opts ...EdgeOption) (string, error) {
	// 1) Input validation
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if weight < 0 || math.IsNaN(weight) || math.IsInf(weight, 0) {
		return "", ErrBadWeight
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}
	if len(opts) > 0 && !g.allowMixed {
		return "", ErrMixedEdgesNotAllowed
	}

	// 2) Ensure vertices exist
	if err := g.AddVertex(from); err != nil {
		return "", err
	}
	if err := g.AddVertex(to); err != nil {
		return "", err
	}

	// 3) Insert edge under lock
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e := &Edge{From: from, To: to, Weight: weight, Directed: g.directed}
	var opt EdgeOption
	for _, opt = range opts {
		opt(e)
	}

	if !g.allowMulti && g.linkedLocked(from, to, e.Directed) {
		return "", ErrMultiEdgeNotAllowed
	}

	e.ID = nextEdgeID(g)

	// 4) Store and link adjacency
	g.edges[e.ID] = e
	ensureAdjacency(g, from, to)
	g.adjacencyList[from][to][e.ID] = struct{}{}

	// 5) Mirror undirected
	if !e.Directed && from != to {
		ensureAdjacency(g, to, from)
		g.adjacencyList[to][from][e.ID] = struct{}{}
	}

	return e.ID, nil
}

// linkedLocked reports whether adding an edge from→to would duplicate an
// existing traversal. A directed edge only collides with edges that already
// allow from→to; an undirected edge collides with anything between the pair.
// Caller must hold muEdgeAdj.
func (g *Graph) linkedLocked(from, to string, directed bool) bool {
	for eid := range g.adjacencyList[from][to] {
		if e := g.edges[eid]; e != nil && (!e.Directed || e.From == from) {
			return true
		}
	}
	if directed {
		return false
	}

	return len(g.adjacencyList[to][from]) > 0
}

// HasEdge reports whether the graph allows a traversal from→to, i.e. an
// undirected edge between the pair or a directed edge from→to.
//
// Complexity: O(k) where k is the number of parallel edges between the pair.
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) HasEdge(from, to string) bool {
	if from == "" || to == "" {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	for eid := range g.adjacencyList[from][to] {
		if e := g.edges[eid]; e != nil && (!e.Directed || e.From == from) {
			return true
		}
	}

	return false
}

// EdgeBetween returns the lowest-ID edge that allows a traversal from→to.
//
// Errors:
//   - ErrEdgeNotFound when no such edge exists.
//
// Complexity: O(k log k) where k is the number of parallel edges between the pair.
func (g *Graph) EdgeBetween(from, to string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []*Edge
	for eid := range g.adjacencyList[from][to] {
		if e := g.edges[eid]; e != nil && (!e.Directed || e.From == from) {
			out = append(out, e)
		}
	}
	if len(out) == 0 {
		return nil, ErrEdgeNotFound
	}
	sortEdges(out)

	return out[0], nil
}

// Edges returns all edges in creation order.
// Complexity: O(E log E) for sorting; O(E) to assemble the slice.
// Concurrency: read lock on muEdgeAdj.
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)

	return out
}

// EdgeCount returns total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// Opposite returns the endpoint of e that is not id. For a self-loop it
// returns id itself.
func (e *Edge) Opposite(id string) string {
	if e.From == id {
		return e.To
	}

	return e.From
}

// nextEdgeID produces the next "e<N>" identifier.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 21)
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}

// ensureAdjacency allocates adjacencyList[from][to] when missing.
// Caller must hold muEdgeAdj.
func ensureAdjacency(g *Graph, from, to string) {
	if g.adjacencyList[from] == nil {
		g.adjacencyList[from] = make(map[string]map[string]struct{})
	}
	if g.adjacencyList[from][to] == nil {
		g.adjacencyList[from][to] = make(map[string]struct{})
	}
}

// sortEdges orders edges by their numeric sequence ("e2" before "e10").
func sortEdges(es []*Edge) {
	sort.Slice(es, func(i, j int) bool {
		a, b := es[i].ID, es[j].ID
		if len(a) != len(b) {
			return len(a) < len(b)
		}

		return a < b
	})
}
