package parsererror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDocumentReadError(t *testing.T) {
	cause := errors.New("file is truncated")
	err := &DocumentReadError{Path: "reports/q1.pdf", Err: cause}

	assert.Contains(t, err.Error(), "reports/q1.pdf")
	assert.Contains(t, err.Error(), "truncated")
	assert.True(t, errors.Is(err, cause))
}

func TestDocumentReadErrorAs(t *testing.T) {
	var target *DocumentReadError
	wrapped := fmt.Errorf("batch item 3: %w", &DocumentReadError{Path: "x.pdf", Err: errors.New("boom")})

	assert.True(t, errors.As(wrapped, &target))
	assert.Equal(t, "x.pdf", target.Path)
}

func TestInvalidFormatError(t *testing.T) {
	err := &InvalidFormatError{FilePath: "notes.txt", ExpectedFormat: "PDF", Msg: "not a PDF header"}

	assert.Contains(t, err.Error(), "notes.txt")
	assert.Contains(t, err.Error(), "PDF")
}

func TestEmptyBatchError(t *testing.T) {
	err := &EmptyBatchError{DocumentCount: 4}
	assert.Contains(t, err.Error(), "4 documents")
	assert.Contains(t, err.Error(), "nothing to export")
}

func TestPatternConfigError(t *testing.T) {
	err := &PatternConfigError{Field: "currency", Reason: "unknown type 'date'"}
	assert.Contains(t, err.Error(), "currency")
	assert.Contains(t, err.Error(), "unknown type")
}
