// SPDX-License-Identifier: MIT

package pathfind

import (
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/katalvlaran/mallnav/venue"
)

const (
	// SuggestionLimit is the maximum number of close matches returned by Suggest.
	SuggestionLimit = 3
	// SuggestionCutoff is the minimum similarity ratio in [0,1] for a close match.
	SuggestionCutoff = 0.6
)

// Suggest returns up to SuggestionLimit shop names similar to name, best
// match first. Similarity is the case-insensitive sequence-matcher ratio;
// names below SuggestionCutoff are dropped and equal scores sort by name.
func Suggest(v *venue.Venue, name string) []string {
	if v == nil {
		return nil
	}

	type scored struct {
		name  string
		score float64
	}
	var hits []scored

	m := difflib.NewMatcher(nil, nil)
	m.SetSeq2(chars(name))
	for _, candidate := range v.ShopNames() {
		m.SetSeq1(chars(candidate))
		if m.RealQuickRatio() < SuggestionCutoff || m.QuickRatio() < SuggestionCutoff {
			continue
		}
		if r := m.Ratio(); r >= SuggestionCutoff {
			hits = append(hits, scored{name: candidate, score: r})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if hits[i].score != hits[j].score {
			return hits[i].score > hits[j].score
		}
		return hits[i].name < hits[j].name
	})
	if len(hits) > SuggestionLimit {
		hits = hits[:SuggestionLimit]
	}

	out := make([]string, len(hits))
	for i, h := range hits {
		out[i] = h.name
	}

	return out
}

// chars splits s into lower-cased single-character elements for the matcher.
func chars(s string) []string {
	return strings.Split(strings.ToLower(s), "")
}
