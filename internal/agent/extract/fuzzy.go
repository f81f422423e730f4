package extract

import "strings"

// levenshtein computes the edit distance between two strings using the
// classic two-row dynamic program.
func levenshtein(a, b string) int {
	if len(a) < len(b) {
		a, b = b, a
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 0; i < len(a); i++ {
		curr[0] = i + 1
		for j := 0; j < len(b); j++ {
			cost := 1
			if a[i] == b[j] {
				cost = 0
			}
			ins := prev[j+1] + 1
			del := curr[j] + 1
			sub := prev[j] + cost
			curr[j+1] = min(ins, del, sub)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// similarity returns a ratio in [0, 1]: 1 minus the normalized edit distance,
// compared case-insensitively.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	dist := levenshtein(strings.ToLower(a), strings.ToLower(b))
	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}
	return 1.0 - float64(dist)/float64(maxLen)
}
