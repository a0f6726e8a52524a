package pdftext

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acordier/expense-extract/internal/logging"
	"acordier/expense-extract/internal/parsererror"
)

func TestLeadingTextMissingFile(t *testing.T) {
	r := NewReader(logging.NewMockLogger())

	_, err := r.LeadingText(filepath.Join(t.TempDir(), "missing.pdf"), 2)
	assert.Error(t, err)
	assert.True(t, os.IsNotExist(err))
}

func TestLeadingTextNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a document"), 0600))

	r := NewReader(logging.NewMockLogger())

	_, err := r.LeadingText(path, 2)
	require.Error(t, err)

	var formatErr *parsererror.InvalidFormatError
	assert.ErrorAs(t, err, &formatErr)
}

func TestPageCountNotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.pdf")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0600))

	r := NewReader(logging.NewMockLogger())

	_, err := r.PageCount(path)
	assert.Error(t, err)
}
