package service

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how different a name may be and still be offered
// as a "did you mean" hint.
const maxSuggestDistance = 3

// closestName returns the candidate nearest to input by edit distance,
// ignoring case, or "" when none is close enough.
func closestName(input string, candidates []string) string {
	best := ""
	bestDist := maxSuggestDistance + 1
	needle := strings.ToLower(input)
	for _, c := range candidates {
		d := levenshtein.ComputeDistance(needle, strings.ToLower(c))
		if d < bestDist {
			best, bestDist = c, d
		}
	}
	return best
}
