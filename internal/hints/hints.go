// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"fmt"
	"strings"
)

// maxListed caps how many names a hint enumerates.
const maxListed = 8

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, a user config path to create.
func ForConfigNotFound(searchedPaths []string, appDir string) string {
	hint := "use --config /path/to/file.yaml"
	for _, p := range searchedPaths {
		if appDir != "" && strings.Contains(p, appDir) {
			hint += " or create " + p
			break
		}
	}
	return format(hint)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForUnknownName returns a hint for an unrecognized name (extension, style):
// the closest known name when one is near, otherwise a sample of the names.
func ForUnknownName(name string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if match := closest(name, available); match != "" {
		return format(fmt.Sprintf("did you mean %q?", match))
	}
	if len(available) <= maxListed {
		return format("available: " + strings.Join(available, ", "))
	}
	return format(fmt.Sprintf("%d available, e.g. %s", len(available), strings.Join(available[:maxListed], ", ")))
}

// closest returns the available name within edit distance 2 of name, or "".
func closest(name string, available []string) string {
	name = strings.ToLower(name)
	best, bestDist := "", 3
	for _, candidate := range available {
		if d := distance(name, strings.ToLower(candidate)); d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}

// distance is the Levenshtein distance between a and b.
func distance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
