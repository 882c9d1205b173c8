package services

import (
	"fmt"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

const (
	maxPDFPages       = 5
	maxExtractedChars = 10000

	pageTruncationMarker = "\n[Document truncated after 5 pages]"
)

// ExtractionError reports a structural PDF read failure (corrupt, encrypted
// or otherwise unreadable file). It is distinct from an extraction that
// simply yields no text, which returns ("", nil).
type ExtractionError struct {
	Reason string
}

func (e *ExtractionError) Error() string {
	return "pdf extraction failed: " + e.Reason
}

type PDFExtractor struct{}

func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText reads plain text from the first pages of a PDF file. Output is
// capped at maxPDFPages pages (a truncation marker is appended when the cap
// is hit) and then at maxExtractedChars characters. Pages without extractable
// text contribute nothing. Structural failures come back as *ExtractionError.
func (s *PDFExtractor) ExtractText(path string) (text string, err error) {
	// The pdf package panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = &ExtractionError{Reason: fmt.Sprintf("%v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", &ExtractionError{Reason: err.Error()}
	}
	defer f.Close()

	var b []byte
	totalPage := reader.NumPage()
	for pageIndex := 1; pageIndex <= totalPage; pageIndex++ {
		if pageIndex > maxPDFPages {
			b = append(b, pageTruncationMarker...)
			break
		}

		page := reader.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil || content == "" {
			continue
		}
		b = append(b, content...)
		b = append(b, '\n')
	}

	return capChars(string(b), maxExtractedChars), nil
}

// capChars truncates s to at most n bytes without splitting a UTF-8 rune.
func capChars(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
