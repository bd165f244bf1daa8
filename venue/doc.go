// Package venue models a multi-floor indoor venue: floors, shops, vertical
// connectors (elevators, escalators, stairs) and corridor waypoints, plus the
// addressing scheme that turns each (entity, floor) pair into a graph vertex key.
//
// Entities:
//
//   - Floor:     one level; owns shops, waypoints, segments and direct links in declaration order.
//   - Shop:      named point destination on one floor.
//   - Connector: vertical transit serving two or more floors; one vertex per served floor.
//   - Waypoint:  corridor point; shops and connectors attach to the nearest one.
//   - Segment:   named ordered run of waypoints, linked end to end.
//
// Entity is a tagged variant over Shop, Connector-on-a-floor and Waypoint. All
// per-kind decisions (position, description, vertex key) are made in one
// switch on Entity.Kind.
//
// Vertex keys:
//
//	"Bakery @ Level 0"
//	"Connector:E1 @ Level 1"
//	"Waypoint:c3 @ Level 0"
//
// The level is the last token, so keys parse back deterministically
// (ParseNodeID, Venue.Resolve). Shop names may not start with a marker.
//
// Lifecycle:
//
//	A Venue is populated once, then handed to the builder, which attaches the
//	derived routing graph with SetGraph. Path queries only read the venue.
package venue
