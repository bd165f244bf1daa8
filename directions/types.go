// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: turn classes and sentinel errors.

package directions

import (
	"errors"
	"fmt"
)

// ErrEmptyPath is returned for a path with no vertices.
var ErrEmptyPath = errors.New("directions: empty path")

// Turn is the qualitative change of heading between two consecutive walks.
type Turn int

// Turn classes, keyed on the heading change d in [0°, 360°), counter-clockwise positive.
const (
	// Straight: d < 30° or d > 330°.
	Straight Turn = iota + 1
	// Left: 30° ≤ d < 150°.
	Left
	// UTurn: 150° ≤ d ≤ 210°.
	UTurn
	// Right: 210° < d ≤ 330°.
	Right
)

// String returns a short lower-case label.
func (t Turn) String() string {
	switch t {
	case Straight:
		return "straight"
	case Left:
		return "left"
	case UTurn:
		return "u-turn"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Turn(%d)", int(t))
	}
}

// phrase renders the directive leading an instruction toward a place.
func (t Turn) phrase() string {
	switch t {
	case Left:
		return "Turn left toward"
	case Right:
		return "Turn right toward"
	case UTurn:
		return "Make a U-turn toward"
	default:
		return "Continue straight toward"
	}
}
