package main

import (
	"slices"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/samber/lo"
)

const maxSuggestions = 3

// suggest returns up to maxSuggestions candidates closest to text by edit
// distance, nearest first. Candidates further than a third of the text
// length (at least 2) are dropped.
func suggest(text string, candidates []string) []string {
	limit := max(2, len(text)/3)

	type scored struct {
		text string
		dist int
	}
	near := lo.FilterMap(candidates, func(c string, _ int) (scored, bool) {
		d := levenshtein.Distance(text, c, nil)
		return scored{c, d}, d > 0 && d <= limit
	})
	slices.SortFunc(near, func(a, b scored) int {
		if a.dist != b.dist {
			return a.dist - b.dist
		}

		return strings.Compare(a.text, b.text)
	})
	if len(near) > maxSuggestions {
		near = near[:maxSuggestions]
	}

	return lo.Map(near, func(s scored, _ int) string { return s.text })
}
