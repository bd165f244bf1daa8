// SPDX-License-Identifier: MIT
//
// errors.go — sentinel errors for the venue package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context (floor level, names) with %w wrapping.

package venue

import "errors"

var (
	// ErrDuplicateFloor is returned when a floor level is declared twice.
	ErrDuplicateFloor = errors.New("venue: duplicate floor level")

	// ErrUnknownFloor is returned when an operation references an undeclared floor level.
	ErrUnknownFloor = errors.New("venue: unknown floor level")

	// ErrDuplicateShop is returned when a shop name repeats on the same floor.
	ErrDuplicateShop = errors.New("venue: duplicate shop on floor")

	// ErrDuplicateConnector is returned when a connector name is declared twice.
	ErrDuplicateConnector = errors.New("venue: duplicate connector")

	// ErrUnknownConnector is returned when a floor references an undeclared connector.
	ErrUnknownConnector = errors.New("venue: unknown connector")

	// ErrDuplicateWaypoint is returned when a waypoint or segment id repeats on the same floor.
	ErrDuplicateWaypoint = errors.New("venue: duplicate corridor id on floor")

	// ErrUnknownWaypoint is returned when a corridor declaration references a missing waypoint.
	ErrUnknownWaypoint = errors.New("venue: unknown corridor waypoint")

	// ErrUnknownEntity is returned when a direct connection names neither a shop
	// nor a connector present on the floor.
	ErrUnknownEntity = errors.New("venue: unknown shop or connector")

	// ErrEmptyName is returned for entities declared without a name or id.
	ErrEmptyName = errors.New("venue: empty name")

	// ErrReservedName is returned when a shop name would collide with the
	// connector or waypoint key markers.
	ErrReservedName = errors.New("venue: name uses a reserved node marker")

	// ErrBadConnectorKind is returned when parsing an unknown connector type.
	ErrBadConnectorKind = errors.New("venue: unknown connector type")

	// ErrBadDirection is returned when parsing an unknown escalator direction.
	ErrBadDirection = errors.New("venue: unknown connector direction")

	// ErrFloorRequired is returned when a connector is addressed without a floor
	// it actually serves.
	ErrFloorRequired = errors.New("venue: connector address requires a served floor level")

	// ErrUnknownVertex is returned when a vertex id cannot be parsed or resolved.
	ErrUnknownVertex = errors.New("venue: unknown vertex id")
)
