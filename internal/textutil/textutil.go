package textutil

import (
	"strings"
)

// Normalize converts text to lowercase and collapses all whitespace runs
// into single spaces. The result has no leading or trailing whitespace.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// OverlapRatio returns the fraction of distinct words in a that also appear
// in b. Words are compared as an unordered set. An empty a yields 0.0 so an
// empty page is never considered contained in anything.
func OverlapRatio(a, b string) float64 {
	wordsA := wordSet(a)
	if len(wordsA) == 0 {
		return 0.0
	}

	wordsB := wordSet(b)
	shared := 0
	for w := range wordsA {
		if wordsB[w] {
			shared++
		}
	}
	return float64(shared) / float64(len(wordsA))
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}
