// SPDX-License-Identifier: MIT

// Package reach answers connectivity questions about a built routing graph:
// which vertices a traveller can reach from a start vertex (From), and how the
// graph splits into weakly connected components (Components).
//
// The builder uses Components to count disconnected parts of a venue, the
// command-line inspector prints component sizes, and pathfind.Reachable
// uses From to list destinations. From is a plain
// breadth-first walk: hop counts, parent links and visit order, with an
// optional depth limit and neighbor filter.
//
// Complexity:
//
//	– Time:  O(V + E)
//	– Space: O(V + E)
package reach
