// Package builder turns a populated venue.Venue into its weighted routing graph.
//
// Overview:
//
//	Every floor contributes vertices for its shops, its connectors (one vertex
//	per connector per floor) and its corridor waypoints. How shops and
//	connectors join the walkable network depends on one capability flag,
//	Floor.HasCorridorLayer:
//
//	  - StrategyWaypoints: waypoint links become edges weighted by Euclidean
//	    distance, and each shop/connector gets one edge to its nearest waypoint.
//	  - StrategyDirect: the floor's declared shop/connector connections become
//	    edges weighted by Euclidean distance.
//
//	Both strategies share one code path; only the attachment step differs.
//
// Vertical legs:
//
//	For each connector and each ordered pair of floors it serves, a directed edge
//	from→to is added when Connector.Traversable(from, to) holds, weighted
//	|from−to| × vertical unit cost (DefaultVerticalUnitCost unless overridden
//	with WithVerticalUnitCost). Horizontal edges are undirected.
//
// Diagnostics:
//
//	Data problems never abort a build. They are returned as Report.Warnings and
//	logged at warn level through the logger passed with WithLogger.
//
// Determinism:
//
//	Floors, entities and connectors are visited in a fixed order, so building an
//	unchanged venue twice yields the same vertices, edges, edge IDs and weights.
//
// Example:
//
//	report, err := builder.Build(v, builder.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	fmt.Println(report.Graph.EdgeCount(), len(report.Warnings))
package builder
