// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin, deterministic public facade exposing constructors and read-only getters.
// Policy:
//   - No algorithms or hidden state here.
//   - Concurrency model and invariants are defined in types.go/doc.go.

package core

// NewMixedGraph creates a new Graph that allows per-edge directedness overrides via EdgeOption.
//
// Implementation:
//   - Stage 1: Prepend WithMixedEdges() to the caller-provided options.
//   - Stage 2: Delegate to NewGraph(...) to allocate and apply options deterministically.
//
// Determinism:
//   - Options are applied left-to-right, with WithMixedEdges() always first.
//
// Complexity:
//   - Time O(len(opts)), Space O(len(opts)) for the composed options slice.
func NewMixedGraph(opts ...GraphOption) *Graph {
	mixed := make([]GraphOption, 0, len(opts)+1)
	mixed = append(mixed, WithMixedEdges())
	mixed = append(mixed, opts...)

	return NewGraph(mixed...)
}

// Stats is a point-in-time summary of graph size.
type Stats struct {
	Vertices      int // number of vertices
	Edges         int // number of edge records (an undirected edge counts once)
	DirectedEdges int // number of edge records with Directed == true
}

// Stats returns a snapshot of vertex and edge counts.
//
// Complexity: O(E) to count directed edges.
// Concurrency: muVert then muEdgeAdj read locks.
func (g *Graph) Stats() Stats {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	s := Stats{Vertices: len(g.vertices), Edges: len(g.edges)}
	for _, e := range g.edges {
		if e.Directed {
			s.DirectedEdges++
		}
	}

	return s
}
