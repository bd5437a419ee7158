package classifier

import (
	"unicode/utf8"

	"github.com/jaywantadh/DeckSweep/internal/textutil"
)

// Result holds the outcome of a keep/drop sweep over a deck's page texts.
// Kept and Dropped are ascending 0-based page indices; every index in
// 0..Total-1 appears in exactly one of the two.
type Result struct {
	Total   int
	Kept    []int
	Dropped []int
}

// IsRedundant reports whether prev's words are mostly contained in curr.
// curr must be strictly longer than prev, measured in characters rather
// than bytes so multi-byte text is judged by its visible length; a shorter
// or equal-length successor never absorbs a page, even at full word
// overlap. Both inputs are expected to be normalized already.
func IsRedundant(prev, curr string, threshold float64) bool {
	if utf8.RuneCountInString(curr) <= utf8.RuneCountInString(prev) {
		return false
	}
	return textutil.OverlapRatio(prev, curr) >= threshold
}

// Sweep walks the page texts in order and decides, for every page, whether
// it is redundant relative to its immediate successor. The last page is
// always kept. Decisions are independent: a page is judged against its
// direct successor even if that successor is itself dropped later.
func Sweep(texts []string, threshold float64) Result {
	res := Result{Total: len(texts)}

	for i := range texts {
		if i == len(texts)-1 {
			res.Kept = append(res.Kept, i)
			continue
		}
		if IsRedundant(texts[i], texts[i+1], threshold) {
			res.Dropped = append(res.Dropped, i)
		} else {
			res.Kept = append(res.Kept, i)
		}
	}

	return res
}
