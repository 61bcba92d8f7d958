package download

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ledongthuc/pdf"
)

var pdfMagic = []byte("%PDF")

// IsPDF reports whether the file starts with the PDF signature
func IsPDF(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	defer f.Close()

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, head); err != nil {
		return false
	}
	return bytes.Equal(head, pdfMagic)
}

// PageCount returns the number of pages of the PDF at path
func PageCount(path string) (pages int, err error) {
	if !IsPDF(path) {
		return 0, fmt.Errorf("%s: not a PDF file", path)
	}

	// the pdf reader panics on some malformed xref tables
	defer func() {
		if r := recover(); r != nil {
			pages, err = 0, fmt.Errorf("%s: unreadable PDF: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	defer f.Close()
	return r.NumPage(), nil
}
