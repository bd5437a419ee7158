package extractor

import (
	"fmt"
	"os"
	"strings"

	"rsc.io/pdf"

	"github.com/jaywantadh/DeckSweep/internal/textutil"
)

// Document wraps an open PDF so the underlying file handle can be released
// on every exit path. The reader stays valid until Close is called.
type Document struct {
	file   *os.File
	reader *pdf.Reader
}

// Open opens the PDF at path for text extraction.
func Open(path string) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %v", err)
	}

	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to stat PDF: %v", err)
	}

	reader, err := pdf.NewReader(file, info.Size())
	if err != nil {
		file.Close()
		return nil, fmt.Errorf("failed to read PDF: %v", err)
	}

	return &Document{file: file, reader: reader}, nil
}

// NumPages returns the page count of the document.
func (d *Document) NumPages() int {
	return d.reader.NumPage()
}

// PageTexts extracts the text of every page in order and returns the
// normalized form of each, index-aligned with the document's pages. Pages
// with a null page object yield an empty string.
func (d *Document) PageTexts() []string {
	texts := make([]string, 0, d.reader.NumPage())

	for i := 1; i <= d.reader.NumPage(); i++ {
		page := d.reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}

		var buf strings.Builder
		for _, text := range page.Content().Text {
			buf.WriteString(text.S)
			buf.WriteString(" ")
		}
		texts = append(texts, textutil.Normalize(buf.String()))
	}

	return texts
}

// Close releases the underlying file handle.
func (d *Document) Close() error {
	return d.file.Close()
}
