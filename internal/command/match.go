package command

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// MatchSpecies resolves a typed species name against the candidate list.
// Exact case-insensitive matches win; otherwise the closest candidate
// within the edit-distance limit is returned. The limit scales with the
// candidate length so short names don't match loosely.
func MatchSpecies(input string, candidates []string) (string, bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", false
	}

	for _, cand := range candidates {
		if strings.EqualFold(input, cand) {
			return cand, true
		}
	}

	lowered := strings.ToLower(input)
	best := ""
	bestDist := -1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(lowered, strings.ToLower(cand))
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		if bestDist == -1 || dist < bestDist {
			best = cand
			bestDist = dist
		}
	}
	return best, best != ""
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
