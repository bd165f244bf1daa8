// SPDX-License-Identifier: MIT

package builder

// DefaultVerticalUnitCost is the cost of moving one floor level on any connector.
// Pathfinder heuristics must not weigh a floor change above this value.
const DefaultVerticalUnitCost = 5.0

// Stage names used to prefix insert errors.
const (
	stageVertices   = "vertices"
	stageCorridors  = "corridors"
	stageAttach     = "attach"
	stageDirect     = "direct"
	stageVertical   = "vertical"
	stageComponents = "components"
)
