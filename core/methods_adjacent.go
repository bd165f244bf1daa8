// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs).
// Determinism:
//   - Neighbors() sorts by Edge.ID sequence asc.
//   - NeighborIDs() returns unique IDs sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks.

package core

import "sort"

// Neighbors returns all edges that can be traversed out of the given vertex id.
//
// Neighborhood policy:
//   - Directed edges: include only edges with e.From == id (outgoing edges).
//   - Undirected edges: include incident edges; use Edge.Opposite(id) for the far end.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity:
//   - Time O(d log d), Space O(d), where d is the number of incident edges collected.
//
// Notes:
//   - Returned *Edge values are live catalog entries; treat them as immutable.
func (g *Graph) Neighbors(id string) ([]*Edge, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	// Same lock order as mutators (muVert -> muEdgeAdj).
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	var out []*Edge
	var eid string
	var e *Edge
	for _, edgeSet := range g.adjacencyList[id] {
		for eid = range edgeSet {
			e = g.edges[eid]
			if e == nil {
				continue
			}
			// Directed policy: only outgoing edges.
			if e.Directed && e.From != id {
				continue
			}
			out = append(out, e)
		}
	}
	sortEdges(out)

	return out, nil
}

// NeighborIDs returns the unique set of vertex IDs reachable in one step from id,
// sorted lexicographically ascending.
//
// Errors:
//   - Propagates ErrEmptyVertexID / ErrVertexNotFound from Neighbors(id).
//
// Complexity:
//   - Time O(d log d), Space O(d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(edges))
	out := make([]string, 0, len(edges))
	var other string
	for _, e := range edges {
		other = e.Opposite(id)
		if _, dup := seen[other]; dup {
			continue
		}
		seen[other] = struct{}{}
		out = append(out, other)
	}
	sort.Strings(out)

	return out, nil
}
