// SPDX-License-Identifier: MIT

package directions

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Bearing returns the heading from a to b in degrees in [0, 360), measured
// counter-clockwise from the +X axis. ok is false when a and b coincide.
func Bearing(a, b r2.Vec) (deg float64, ok bool) {
	d := r2.Sub(b, a)
	if d.X == 0 && d.Y == 0 {
		return 0, false
	}

	return normalize(math.Atan2(d.Y, d.X) * 180 / math.Pi), true
}

// Classify maps the change from heading prev to heading next onto a Turn.
func Classify(prev, next float64) Turn {
	d := normalize(next - prev)
	switch {
	case d < 30 || d > 330:
		return Straight
	case d < 150:
		return Left
	case d <= 210:
		return UTurn
	default:
		return Right
	}
}

// normalize folds deg into [0, 360).
func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	if deg >= 360 {
		deg = 0
	}

	return deg
}
