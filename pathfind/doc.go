// SPDX-License-Identifier: MIT

// Package pathfind finds the cheapest route between two named shops of a
// venue whose routing graph has been built.
//
// Overview:
//
//   - A* search seeded from every shop carrying the start name, ending at the
//     first shop carrying the end name that leaves the frontier.
//   - The heuristic is planar distance plus level difference times FloorWeight.
//     With FloorWeight at or below the builder's vertical unit cost it never
//     overestimates, so returned routes are cheapest.
//   - WithAccessible(true) refuses to enter the floor vertices of any
//     connector flagged inaccessible.
//   - Unknown names yield *ShopNotFoundError; up to three close matches are
//     reported through the logger and WithSuggestionHandler.
//
// Determinism:
//
//   - Frontier ties break on (f, g, vertex id), so identical queries on an
//     identical graph return identical paths.
//
// Concurrency:
//
//   - FindPath only reads the venue and graph. Queries may run in parallel.
//
// Complexity:
//
//   - Time:  O((V + E) log V) heap work plus O(T) heuristic evaluation per new vertex.
//   - Space: O(V + E) for costs, predecessors and lazy heap entries.
package pathfind
