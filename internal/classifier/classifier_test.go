package classifier

import (
	"reflect"
	"testing"
)

func TestIsRedundantLengthGuard(t *testing.T) {
	// Full word overlap, but successor is not strictly longer.
	if IsRedundant("a b c", "a b c", 0.5) {
		t.Errorf("equal-length successor must never absorb a page")
	}
	if IsRedundant("a b c d", "a b", 0.0) {
		t.Errorf("shorter successor must never absorb a page")
	}
}

func TestIsRedundantLengthGuardCountsCharacters(t *testing.T) {
	// "a ééééé" is 7 characters but 12 bytes; the guard must compare
	// characters, not bytes.
	if IsRedundant("a a a a a", "a ééééé", 0.0) {
		t.Errorf("successor with fewer characters but more bytes must not absorb a page")
	}
	// 7 characters < 9 characters, overlap {a} of {a, ééééé} = 0.5.
	if !IsRedundant("a ééééé", "a b c d e", 0.5) {
		t.Errorf("character-longer successor was rejected by a byte-length comparison")
	}
}

func TestIsRedundantThreshold(t *testing.T) {
	// 3 of 4 distinct words of prev appear in curr: ratio 0.75.
	prev := "a b c d"
	curr := "a b c x y z"
	if !IsRedundant(prev, curr, 0.75) {
		t.Errorf("expected redundant at threshold 0.75")
	}
	if IsRedundant(prev, curr, 0.76) {
		t.Errorf("expected not redundant at threshold 0.76")
	}
}

func TestIsRedundantEmptyPrev(t *testing.T) {
	// Overlap ratio of an empty page is defined as 0.0, so only a zero
	// threshold can mark it redundant.
	if IsRedundant("", "a b c", 0.5) {
		t.Errorf("empty page must not be redundant at threshold 0.5")
	}
	if !IsRedundant("", "a b c", 0.0) {
		t.Errorf("empty page is redundant only at threshold 0.0")
	}
}

func TestSweepIncrementalReveal(t *testing.T) {
	// Scenario: page 0 is fully contained in page 1, page 2 is unrelated.
	texts := []string{"a b c", "a b c d", "x y z"}
	res := Sweep(texts, 0.9)

	if !reflect.DeepEqual(res.Kept, []int{1, 2}) {
		t.Errorf("Kept = %v, want [1 2]", res.Kept)
	}
	if !reflect.DeepEqual(res.Dropped, []int{0}) {
		t.Errorf("Dropped = %v, want [0]", res.Dropped)
	}
}

func TestSweepSinglePage(t *testing.T) {
	res := Sweep([]string{"only slide"}, 0.9)
	if !reflect.DeepEqual(res.Kept, []int{0}) {
		t.Errorf("Kept = %v, want [0]", res.Kept)
	}
	if len(res.Dropped) != 0 {
		t.Errorf("Dropped = %v, want empty", res.Dropped)
	}
}

func TestSweepLastPageAlwaysKept(t *testing.T) {
	texts := []string{"a", "a b", "a b c", "a b c d"}
	for _, threshold := range []float64{0.0, 0.5, 0.9, 1.0, 1.01} {
		res := Sweep(texts, threshold)
		last := len(texts) - 1
		found := false
		for _, i := range res.Kept {
			if i == last {
				found = true
			}
		}
		if !found {
			t.Errorf("threshold %v: last page not kept", threshold)
		}
	}
}

func TestSweepZeroThreshold(t *testing.T) {
	// Threshold 0.0 degenerates to "any length increase": even pages with
	// no shared words are dropped, since 0.0 >= 0.0.
	texts := []string{"a", "x y", "p q r"}
	res := Sweep(texts, 0.0)
	if !reflect.DeepEqual(res.Dropped, []int{0, 1}) {
		t.Errorf("Dropped = %v, want [0 1]", res.Dropped)
	}
}

func TestSweepThresholdAboveOne(t *testing.T) {
	// Ratio never exceeds 1.0, so nothing qualifies.
	texts := []string{"a b", "a b c", "a b c d"}
	res := Sweep(texts, 1.01)
	if len(res.Dropped) != 0 {
		t.Errorf("Dropped = %v, want empty", res.Dropped)
	}
	if !reflect.DeepEqual(res.Kept, []int{0, 1, 2}) {
		t.Errorf("Kept = %v, want [0 1 2]", res.Kept)
	}
}

func TestSweepMonotoneInThreshold(t *testing.T) {
	texts := []string{"a b c", "a b c d", "a b x y", "a b x y z", "end"}
	prev := -1
	for _, threshold := range []float64{0.0, 0.25, 0.5, 0.75, 0.9, 1.0} {
		res := Sweep(texts, threshold)
		if prev >= 0 && len(res.Dropped) > prev {
			t.Errorf("threshold %v dropped %d pages, more than lower threshold dropped (%d)",
				threshold, len(res.Dropped), prev)
		}
		prev = len(res.Dropped)
	}
}

func TestSweepDoesNotCompareTransitively(t *testing.T) {
	// Known limitation: each page is judged only against its immediate
	// successor. Page 0 overlaps page 2 completely, but page 1 in between
	// shares nothing with page 0, so page 0 survives.
	texts := []string{"a b c", "x y z w", "a b c x y z w more"}
	res := Sweep(texts, 0.9)
	if !reflect.DeepEqual(res.Kept, []int{0, 2}) {
		t.Errorf("Kept = %v, want [0 2]", res.Kept)
	}
	if !reflect.DeepEqual(res.Dropped, []int{1}) {
		t.Errorf("Dropped = %v, want [1]", res.Dropped)
	}
}

func TestSweepEmptyPageNeverDropped(t *testing.T) {
	texts := []string{"", "a b c", "a b c d"}
	res := Sweep(texts, 0.9)
	for _, i := range res.Dropped {
		if i == 0 {
			t.Errorf("empty page was dropped")
		}
	}
}
