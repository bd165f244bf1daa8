// SPDX-License-Identifier: MIT

// Package venuefile loads venue descriptions from YAML or JSON.
//
// A description lists connectors once at the top level and floors with the
// connector names present on them, their shops, and either a corridor layer
// (corridors of waypoints plus extra waypoint links) or direct shop/connector
// connections:
//
//	connectors:
//	  - {name: E1, type: elevator, accessible: true, x: 10, y: 0}
//	floors:
//	  - level: 0
//	    connectors: [E1]
//	    shops: [{name: Bakery, x: 0, y: 0}]
//	    connections: [{from: Bakery, to: E1}]
//
// Entries that reference something missing are skipped and returned as
// warnings; only unreadable input or unknown connector types and directions
// fail the load. The returned venue has no graph yet; pass it to builder.Build.
package venuefile
