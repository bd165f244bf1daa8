// SPDX-License-Identifier: MIT

package venue

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// EntityKind tags the variant held by an Entity.
type EntityKind int

// Entity kinds.
const (
	KindShop EntityKind = iota + 1
	KindConnector
	KindWaypoint
)

// String returns the lower-case kind name.
func (k EntityKind) String() string {
	switch k {
	case KindShop:
		return "shop"
	case KindConnector:
		return "connector"
	case KindWaypoint:
		return "waypoint"
	default:
		return fmt.Sprintf("EntityKind(%d)", int(k))
	}
}

// Entity is a routable element in its floor context: a Shop, a Connector on
// one of its floors, or a corridor Waypoint. Exactly one of the pointer
// fields is set, matching Kind. Build values with ShopEntity, ConnectorEntity
// and WaypointEntity so the floor context is always recorded.
type Entity struct {
	Kind      EntityKind
	Level     int
	Shop      *Shop
	Connector *Connector
	Waypoint  *Waypoint

	leveled bool
}

// ShopEntity wraps s.
func ShopEntity(s *Shop) Entity {
	return Entity{Kind: KindShop, Level: s.Level, Shop: s, leveled: true}
}

// ConnectorEntity wraps c on the given floor level.
func ConnectorEntity(c *Connector, level int) Entity {
	return Entity{Kind: KindConnector, Level: level, Connector: c, leveled: true}
}

// WaypointEntity wraps w.
func WaypointEntity(w *Waypoint) Entity {
	return Entity{Kind: KindWaypoint, Level: w.Level, Waypoint: w, leveled: true}
}

// Position returns the entity's 2D position on its floor.
func (e Entity) Position() r2.Vec {
	switch e.Kind {
	case KindShop:
		return e.Shop.Pos
	case KindConnector:
		return e.Connector.Pos
	case KindWaypoint:
		return e.Waypoint.Pos
	default:
		return r2.Vec{}
	}
}

// Name returns the shop name, connector name or waypoint id.
func (e Entity) Name() string {
	switch e.Kind {
	case KindShop:
		return e.Shop.Name
	case KindConnector:
		return e.Connector.Name
	case KindWaypoint:
		return e.Waypoint.ID
	default:
		return ""
	}
}

// Describe renders the entity for travellers: a shop by name, a connector by
// name and kind, and any waypoint as "the corridor".
func (e Entity) Describe() string {
	switch e.Kind {
	case KindShop:
		return e.Shop.Name
	case KindConnector:
		return fmt.Sprintf("%s (%s)", e.Connector.Name, e.Connector.Kind)
	case KindWaypoint:
		return "the corridor"
	default:
		return "unknown location"
	}
}

// NodeID returns the graph vertex key for the entity.
//
// Errors:
//   - ErrFloorRequired: a connector entity without a floor it serves.
//   - ErrUnknownVertex: a zero or inconsistent Entity.
func (e Entity) NodeID() (string, error) {
	switch e.Kind {
	case KindShop:
		if e.Shop == nil {
			break
		}
		return ShopNodeID(e.Shop), nil
	case KindConnector:
		if e.Connector == nil {
			break
		}
		if !e.leveled || !e.Connector.Serves(e.Level) {
			return "", fmt.Errorf("%w: %s", ErrFloorRequired, e.Connector.Name)
		}
		return ConnectorNodeID(e.Connector.Name, e.Level), nil
	case KindWaypoint:
		if e.Waypoint == nil {
			break
		}
		return WaypointNodeID(e.Waypoint), nil
	}

	return "", fmt.Errorf("%w: entity of kind %s", ErrUnknownVertex, e.Kind)
}

// Distance is the Euclidean distance between two positions on the same floor.
func Distance(a, b r2.Vec) float64 {
	return r2.Norm(r2.Sub(a, b))
}
