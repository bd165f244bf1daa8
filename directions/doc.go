// SPDX-License-Identifier: MIT

// Package directions turns a routed vertex path into words.
//
// Generate walks consecutive vertex pairs, computes each walk's heading with
// Bearing and classifies the change against the previous heading:
//
//	d = (next − prev) mod 360
//	straight   d < 30 or d > 330
//	left       30 ≤ d < 150
//	u-turn     150 ≤ d ≤ 210
//	right      210 < d ≤ 330
//
// Floor changes are announced before the instruction that follows them.
// Shops are named, connectors are named with their kind, and waypoints are
// rendered as "the corridor".
//
// Describe and Trace expose the same path as location labels and as
// positioned locations for a renderer.
package directions
