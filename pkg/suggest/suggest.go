// Package suggest finds registered argument names that look like a mistyped one.
package suggest

import (
	"cmp"
	"slices"
	"strings"
)

// threshold is the minimum similarity score required for a candidate to be suggested.
const threshold = 0.5

type match struct {
	name  string
	score float64
}

// FindSimilar returns up to maxResults candidates similar to target, best first. Leading dashes
// are ignored when scoring, so "--ouput" is compared to "--output" as "ouput" and "output", but
// candidates are returned unchanged.
func FindSimilar(target string, candidates []string, maxResults int) []string {
	target = trimDashes(target)
	if target == "" || maxResults <= 0 {
		return []string{}
	}

	matches := make([]match, 0, len(candidates))
	for _, name := range candidates {
		score := calculateSimilarity(target, trimDashes(name))
		if score > threshold {
			matches = append(matches, match{name: name, score: score})
		}
	}

	slices.SortFunc(matches, func(a, b match) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}
		return cmp.Compare(a.name, b.name)
	})

	result := make([]string, 0, maxResults)
	for i := 0; i < len(matches) && i < maxResults; i++ {
		result = append(result, matches[i].name)
	}
	return result
}

func trimDashes(s string) string {
	return strings.TrimLeft(s, "-")
}

func calculateSimilarity(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}
	if strings.HasPrefix(b, a) {
		return 0.9
	}
	ra, rb := []rune(a), []rune(b)
	distance := levenshteinDistance(ra, rb)
	maxLen := float64(max(len(ra), len(rb)))

	return 1.0 - float64(distance)/maxLen
}

// levenshteinDistance keeps two rows of the edit-distance matrix.
func levenshteinDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
