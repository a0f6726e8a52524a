// Package pdftext supplies the plain text of the leading pages of a PDF
// document, using the mupdf bindings. It implements the extractor's
// TextSource capability.
package pdftext

import (
	"os"
	"strings"

	"github.com/gen2brain/go-fitz"

	"acordier/expense-extract/internal/logging"
	"acordier/expense-extract/internal/parsererror"
)

// Reader extracts text from PDF files.
type Reader struct {
	logger logging.Logger
}

// NewReader creates a PDF text reader.
func NewReader(logger logging.Logger) *Reader {
	return &Reader{logger: logger}
}

// LeadingText returns the concatenated text of the first maxPages pages,
// one page per line group. Pages with no extractable text contribute an
// empty string. A document that cannot be opened is an error; a page
// that fails to render is not.
func (r *Reader) LeadingText(path string, maxPages int) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", err
	}

	doc, err := fitz.New(path)
	if err != nil {
		return "", &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF",
			Msg:            err.Error(),
		}
	}
	defer func() {
		if err := doc.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close PDF document",
				logging.Field{Key: "file", Value: path})
		}
	}()

	pages := doc.NumPage()
	if maxPages > 0 && pages > maxPages {
		pages = maxPages
	}

	var sb strings.Builder
	for i := 0; i < pages; i++ {
		text, err := doc.Text(i)
		if err != nil {
			r.logger.WithError(err).Warn("Failed to extract page text",
				logging.Field{Key: "file", Value: path},
				logging.Field{Key: "page", Value: i + 1})
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	return sb.String(), nil
}

// PageCount returns the number of pages in the document.
func (r *Reader) PageCount(path string) (int, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return 0, &parsererror.InvalidFormatError{
			FilePath:       path,
			ExpectedFormat: "PDF",
			Msg:            err.Error(),
		}
	}
	defer func() {
		if err := doc.Close(); err != nil {
			r.logger.WithError(err).Warn("Failed to close PDF document",
				logging.Field{Key: "file", Value: path})
		}
	}()

	return doc.NumPage(), nil
}
