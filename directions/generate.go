// SPDX-License-Identifier: MIT

package directions

import (
	"fmt"

	"github.com/katalvlaran/mallnav/venue"
)

// Generate turns a vertex path into turn-by-turn instructions.
//
// Any path of two or more vertices opens with "Start at X and head toward
// Y.", where Y is the first later stop that does not share X's position.
// Every later walk is classified against the previous heading. A floor
// change is announced before the instruction that follows it, and vertical
// legs keep the heading they were entered with. Zero-length walks are
// silent. The last instruction is always "You have arrived at X.".
//
// Errors:
//   - ErrEmptyPath for an empty path.
//   - venue.ErrUnknownVertex (wrapped) when a vertex does not resolve in v.
func Generate(v *venue.Venue, path []string) ([]string, error) {
	stops, err := Trace(v, path)
	if err != nil {
		return nil, err
	}

	var (
		out        []string
		heading    float64
		hasHeading bool
		announced  int // walks ending at or before this stop were covered by the start line
	)
	if len(stops) > 1 {
		announced = firstDeparture(stops)
		out = append(out, fmt.Sprintf("Start at %s and head toward %s.",
			stops[0].Entity.Describe(), stops[announced].Entity.Describe()))
	}
	for i := 0; i+1 < len(stops); i++ {
		from, to := stops[i], stops[i+1]
		if from.Level != to.Level {
			out = append(out, floorChange(from, to))
			continue
		}
		b, ok := Bearing(from.Entity.Position(), to.Entity.Position())
		if !ok {
			continue
		}
		switch {
		case i+1 <= announced:
		case !hasHeading:
			out = append(out, fmt.Sprintf("Head toward %s.", to.Entity.Describe()))
		default:
			out = append(out, fmt.Sprintf("%s %s.", Classify(heading, b).phrase(), to.Entity.Describe()))
		}
		heading, hasHeading = b, true
	}
	out = append(out, fmt.Sprintf("You have arrived at %s.", stops[len(stops)-1].Entity.Describe()))

	return out, nil
}

// firstDeparture returns the index of the first stop after stops[0] that
// lies on another floor or at another position. A path that never leaves
// its start yields the last index.
func firstDeparture(stops []venue.Location) int {
	for j := 1; j < len(stops); j++ {
		if stops[j].Level != stops[0].Level {
			return j
		}
		if _, ok := Bearing(stops[j-1].Entity.Position(), stops[j].Entity.Position()); ok {
			return j
		}
	}

	return len(stops) - 1
}

func floorChange(from, to venue.Location) string {
	way := "up"
	if to.Level < from.Level {
		way = "down"
	}
	if to.Entity.Kind == venue.KindConnector {
		return fmt.Sprintf("Take %s %s to Level %d.", to.Entity.Describe(), way, to.Level)
	}

	return fmt.Sprintf("Go %s to Level %d.", way, to.Level)
}

// Describe renders each vertex of path as "<description> @ Level <n>".
func Describe(v *venue.Venue, path []string) ([]string, error) {
	stops, err := Trace(v, path)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(stops))
	for i, s := range stops {
		out[i] = fmt.Sprintf("%s @ Level %d", s.Entity.Describe(), s.Level)
	}

	return out, nil
}

// Trace resolves every vertex of path to its placement, in path order, for
// an external renderer.
func Trace(v *venue.Venue, path []string) ([]venue.Location, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	out := make([]venue.Location, len(path))
	for i, id := range path {
		loc, ok := v.Locate(id)
		if !ok {
			return nil, fmt.Errorf("%w: %q", venue.ErrUnknownVertex, id)
		}
		out[i] = loc
	}

	return out, nil
}
