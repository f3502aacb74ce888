package cli

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestMaxDistance bounds how far a typo may be from its suggestion
const suggestMaxDistance = 2

var viewNames = []string{"home", "news", "article", "documents", "docs", "contacts"}

// suggest returns the candidate closest to name, or "" when none is close enough
func suggest(name string, candidates []string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return ""
	}

	best, bestDistance := "", suggestMaxDistance+1

	for _, candidate := range candidates {
		distance := levenshtein.ComputeDistance(name, strings.ToLower(candidate))
		if distance < bestDistance {
			best, bestDistance = candidate, distance
		}
	}

	return best
}

// withSuggestion appends a hint to msg when a close candidate exists
func withSuggestion(msg, name string, candidates []string) string {
	if s := suggest(name, candidates); s != "" && s != name {
		return msg + " (did you mean " + s + "?)"
	}

	return msg
}
