package assembler

import (
	"fmt"
	"strconv"

	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// CopyPages writes a new PDF at outPath containing exactly the pages of
// inPath whose 0-based indices appear in keep, in the given order. Pages are
// copied with their resources intact. An existing file at outPath is
// overwritten.
func CopyPages(inPath, outPath string, keep []int) error {
	if len(keep) == 0 {
		return fmt.Errorf("refusing to write an empty document")
	}

	// pdfcpu selects pages by 1-based number.
	selected := make([]string, len(keep))
	for i, idx := range keep {
		selected[i] = strconv.Itoa(idx + 1)
	}

	if err := api.CollectFile(inPath, outPath, selected, nil); err != nil {
		return fmt.Errorf("failed to write cleaned PDF: %v", err)
	}
	return nil
}
