// Package core provides the in-memory weighted graph that stores a venue's
// routing network.
//
// Overview:
//
//	Graph is an arena keyed by string vertex IDs. Edges live in a catalog keyed
//	by edge ID ("e1", "e2", ...) and are linked through a nested adjacency map
//	adjacencyList[from][to][edgeID]. Nothing holds pointers between vertices,
//	so entity back-references never form reference cycles.
//
// Edge modes:
//
//   - Undirected (default): stored once, mirrored in adjacency, traversable both ways
//     with the same weight.
//   - Directed: enabled per edge in a mixed graph (NewMixedGraph + WithEdgeDirected(true)).
//     Used for vertical connector legs whose traversability depends on direction.
//
// Weights:
//
//	float64, finite and non-negative. AddEdge rejects anything else with ErrBadWeight.
//
// Determinism:
//
//   - Vertices() returns IDs sorted lexicographically.
//   - Edges() and Neighbors() return edges in creation order.
//
// Concurrency:
//
//	All methods are safe for concurrent use. Lock order is always muVert before
//	muEdgeAdj. A graph that is no longer mutated can be shared freely between
//	concurrent path queries.
//
// Example:
//
//	g := core.NewMixedGraph()
//	_, _ = g.AddEdge("A", "B", 3.5)
//	_, _ = g.AddEdge("B", "C", 5, core.WithEdgeDirected(true))
//	nbrs, _ := g.NeighborIDs("B") // [A C]
package core
