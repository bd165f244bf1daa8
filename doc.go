// SPDX-License-Identifier: MIT

// Package mallnav routes travellers through multi-floor indoor venues.
//
// A venue is a set of floors holding shops, corridor waypoints and vertical
// connectors (elevators, escalators, stairs). The packages compose as a
// pipeline:
//
//	venuefile/  — YAML/JSON venue description → populated venue.Venue
//	venue/      — spatial model, tagged entities and stable vertex keys
//	builder/    — venue → weighted routing graph (core.Graph) + data-integrity report
//	core/       — thread-safe weighted graph with mixed directed/undirected edges
//	reach/      — breadth-first reachability and connected components
//	pathfind/   — multi-source A* between shop names, accessibility filter, suggestions
//	directions/ — vertex path → turn-by-turn instructions and location labels
//
// Quick start:
//
//	v, _, err := venuefile.Load("mall.yaml")
//	if err != nil { … }
//	if _, err = builder.Build(v); err != nil { … }
//	res, err := pathfind.FindPath(v, "Bakery", "Cinema", pathfind.WithAccessible(true))
//	if err != nil { … }
//	steps, _ := directions.Generate(v, res.Path)
//
// The mallnav command under cmd/mallnav wraps the same pipeline with YAML
// configuration and structured logging.
package mallnav
