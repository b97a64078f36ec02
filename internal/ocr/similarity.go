package ocr

import "strings"

// Similarity scores how close two strings are, case-insensitively, as
// 1 - editDistance/maxLen clamped to [0,1]. Two empty strings score 1.
// Pure and deterministic: the matcher's confidence values derive entirely
// from this function and the catalog snapshot.
func Similarity(a, b string) float64 {
	ra := []rune(strings.ToLower(a))
	rb := []rune(strings.ToLower(b))

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}

	if maxLen == 0 {
		return 1
	}

	score := 1 - float64(levenshtein(ra, rb))/float64(maxLen)
	if score < 0 {
		return 0
	}

	return score
}

// levenshtein computes the edit distance with unit-cost insertions,
// deletions and substitutions over a full (len(b)+1) x (len(a)+1) table.
// Catalog names are tens of characters at most, so the quadratic cost
// stays negligible.
func levenshtein(a, b []rune) int {
	track := make([][]int, len(b)+1)
	for j := range track {
		track[j] = make([]int, len(a)+1)
	}

	for i := 0; i <= len(a); i++ {
		track[0][i] = i
	}

	for j := 0; j <= len(b); j++ {
		track[j][0] = j
	}

	for j := 1; j <= len(b); j++ {
		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			track[j][i] = min(
				track[j][i-1]+1,      // insertion
				track[j-1][i]+1,      // deletion
				track[j-1][i-1]+cost, // substitution
			)
		}
	}

	return track[len(b)][len(a)]
}
