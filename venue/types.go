// SPDX-License-Identifier: MIT
//
// types.go — spatial model entities: Floor, Shop, Connector, Waypoint, Segment.
//
// Back-references are plain floor levels, never owning pointers. Entities are
// created through Venue methods and are immutable afterwards.

package venue

import (
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// ConnectorKind is the vertical-transit category of a Connector.
type ConnectorKind string

// Connector kinds.
const (
	Elevator  ConnectorKind = "elevator"
	Escalator ConnectorKind = "escalator"
	Stairs    ConnectorKind = "stairs"
)

// ParseConnectorKind maps a textual type onto a ConnectorKind (case-insensitive).
// An empty string yields Elevator.
func ParseConnectorKind(s string) (ConnectorKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Elevator):
		return Elevator, nil
	case string(Escalator):
		return Escalator, nil
	case string(Stairs):
		return Stairs, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadConnectorKind, s)
	}
}

// Direction is the permitted travel direction of an escalator.
type Direction string

// Directions.
const (
	Up   Direction = "up"
	Down Direction = "down"
	Both Direction = "both"
)

// ParseDirection maps a textual direction onto a Direction (case-insensitive).
// An empty string yields Both.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Both):
		return Both, nil
	case string(Up):
		return Up, nil
	case string(Down):
		return Down, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadDirection, s)
	}
}

// Shop is a named destination on one floor.
type Shop struct {
	Name  string
	Pos   r2.Vec
	Level int

	links []Entity
}

// Links returns the entities declared as directly connected to the shop.
func (s *Shop) Links() []Entity { return append([]Entity(nil), s.links...) }

// Connector is a vertical-transit element spanning several floors. It is one
// vertex per served floor in the routing graph.
type Connector struct {
	Name       string
	Kind       ConnectorKind
	Accessible bool
	Direction  Direction
	Pos        r2.Vec

	levels []int
	links  map[int][]Entity
}

// ConnectorSpec describes a connector before it is registered with a Venue.
type ConnectorSpec struct {
	Name       string
	Kind       ConnectorKind
	Accessible bool
	Direction  Direction
	Pos        r2.Vec
}

// Levels returns the floor levels the connector serves, ascending.
func (c *Connector) Levels() []int { return append([]int(nil), c.levels...) }

// Serves reports whether the connector is present on the given level.
func (c *Connector) Serves(level int) bool {
	i := sort.SearchInts(c.levels, level)
	return i < len(c.levels) && c.levels[i] == level
}

// Links returns the entities declared as directly connected to the connector on level.
func (c *Connector) Links(level int) []Entity { return append([]Entity(nil), c.links[level]...) }

// Traversable reports whether the connector can carry a traveller from
// fromLevel to toLevel. Escalators honour their Direction; elevators and
// stairs run both ways regardless of it.
func (c *Connector) Traversable(fromLevel, toLevel int) bool {
	if c.Kind != Escalator {
		return true
	}
	switch c.Direction {
	case Both:
		return true
	case Up:
		return toLevel > fromLevel
	case Down:
		return toLevel < fromLevel
	default:
		return false
	}
}

// Waypoint is a corridor point on one floor.
type Waypoint struct {
	ID    string
	Pos   r2.Vec
	Level int

	links []string
}

// Links returns the ids of waypoints on the same floor declared adjacent to w,
// in declaration order.
func (w *Waypoint) Links() []string { return append([]string(nil), w.links...) }

// Segment is a named, ordered run of waypoints. It groups waypoints for
// rendering; it is not a graph vertex.
type Segment struct {
	ID        string
	Level     int
	Waypoints []string
}

// Link is a direct connection declared between two entities on one floor.
type Link struct {
	From Entity
	To   Entity
}

// Floor is one level of the venue and owns its entities in declaration order.
type Floor struct {
	Level int

	shops      []*Shop
	shopIndex  map[string]*Shop
	connectors []*Connector
	waypoints  []*Waypoint
	wpIndex    map[string]*Waypoint
	segments   []*Segment
	links      []Link
}

func newFloor(level int) *Floor {
	return &Floor{
		Level:     level,
		shopIndex: make(map[string]*Shop),
		wpIndex:   make(map[string]*Waypoint),
	}
}

// Shops returns the floor's shops in declaration order.
func (f *Floor) Shops() []*Shop { return append([]*Shop(nil), f.shops...) }

// Shop returns the shop with the exact given name.
func (f *Floor) Shop(name string) (*Shop, bool) {
	s, ok := f.shopIndex[name]
	return s, ok
}

// Connectors returns the connectors present on the floor in placement order.
func (f *Floor) Connectors() []*Connector { return append([]*Connector(nil), f.connectors...) }

// Connector returns the connector with the given name if it is present on the floor.
func (f *Floor) Connector(name string) (*Connector, bool) {
	for _, c := range f.connectors {
		if c.Name == name {
			return c, true
		}
	}

	return nil, false
}

// Waypoints returns the floor's corridor waypoints in declaration order.
func (f *Floor) Waypoints() []*Waypoint { return append([]*Waypoint(nil), f.waypoints...) }

// Waypoint returns the waypoint with the given id.
func (f *Floor) Waypoint(id string) (*Waypoint, bool) {
	w, ok := f.wpIndex[id]
	return w, ok
}

// Segments returns the floor's corridor segments in declaration order.
func (f *Floor) Segments() []*Segment { return append([]*Segment(nil), f.segments...) }

// Links returns the direct connections declared on the floor in declaration order.
func (f *Floor) Links() []Link { return append([]Link(nil), f.links...) }

// HasCorridorLayer reports whether the floor declares any corridor waypoints.
// Floors with a corridor layer route through waypoints; floors without one
// fall back to direct connections.
func (f *Floor) HasCorridorLayer() bool { return len(f.waypoints) > 0 }
