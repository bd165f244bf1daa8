// SPDX-License-Identifier: MIT
//
// nodeid.go — stable vertex keys for (entity, floor) pairs.
//
// Format:
//
//	shop       "<name> @ Level <n>"
//	connector  "Connector:<name> @ Level <n>"
//	waypoint   "Waypoint:<id> @ Level <n>"
//
// The level is always the last token, so parsing splits on the last separator.

package venue

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	levelSeparator  = " @ Level "
	connectorMarker = "Connector:"
	waypointMarker  = "Waypoint:"
)

// NodeRef is a parsed vertex key.
type NodeRef struct {
	Kind  EntityKind
	Key   string // shop name, connector name or waypoint id
	Level int
}

// ShopNodeID returns the vertex key of s.
func ShopNodeID(s *Shop) string {
	return s.Name + levelSeparator + strconv.Itoa(s.Level)
}

// ConnectorNodeID returns the vertex key of the named connector on level.
func ConnectorNodeID(name string, level int) string {
	return connectorMarker + name + levelSeparator + strconv.Itoa(level)
}

// WaypointNodeID returns the vertex key of w.
func WaypointNodeID(w *Waypoint) string {
	return waypointMarker + w.ID + levelSeparator + strconv.Itoa(w.Level)
}

// ParseNodeID splits a vertex key into kind, key and level.
// It does not check that the entity exists; use Venue.Resolve for that.
func ParseNodeID(id string) (NodeRef, error) {
	i := strings.LastIndex(id, levelSeparator)
	if i < 0 {
		return NodeRef{}, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}
	level, err := strconv.Atoi(id[i+len(levelSeparator):])
	if err != nil {
		return NodeRef{}, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	head := id[:i]
	ref := NodeRef{Kind: KindShop, Key: head, Level: level}
	switch {
	case strings.HasPrefix(head, connectorMarker):
		ref.Kind, ref.Key = KindConnector, strings.TrimPrefix(head, connectorMarker)
	case strings.HasPrefix(head, waypointMarker):
		ref.Kind, ref.Key = KindWaypoint, strings.TrimPrefix(head, waypointMarker)
	}
	if ref.Key == "" {
		return NodeRef{}, fmt.Errorf("%w: %q", ErrUnknownVertex, id)
	}

	return ref, nil
}

// reservedName reports whether a shop name would parse as another kind.
func reservedName(name string) bool {
	return strings.HasPrefix(name, connectorMarker) || strings.HasPrefix(name, waypointMarker)
}
