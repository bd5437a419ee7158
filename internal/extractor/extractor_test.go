package extractor

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/jaywantadh/DeckSweep/internal/pdftest"
)

func TestPageTextsNormalizedAndOrdered(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pdf")
	pdftest.WriteDeck(t, path, []string{"a b c", "a b c d", "x y z"})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("failed to open fixture: %v", err)
	}
	defer doc.Close()

	if doc.NumPages() != 3 {
		t.Fatalf("NumPages() = %d, want 3", doc.NumPages())
	}

	want := []string{"a b c", "a b c d", "x y z"}
	if got := doc.PageTexts(); !reflect.DeepEqual(got, want) {
		t.Errorf("PageTexts() = %v, want %v", got, want)
	}
}

func TestOpenMissingFile(t *testing.T) {
	if _, err := Open(filepath.Join(t.TempDir(), "nope.pdf")); err == nil {
		t.Errorf("expected an error opening a missing file")
	}
}
