package pdfsplit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acordier/expense-extract/internal/logging"
)

func TestSplitAllUnreadableInput(t *testing.T) {
	s := NewSplitter(logging.NewMockLogger())
	dir := t.TempDir()

	_, err := s.SplitAll(filepath.Join(dir, "missing.pdf"), filepath.Join(dir, "out"))
	assert.Error(t, err)
}

func TestSplitAllCreatesOutputDirectory(t *testing.T) {
	s := NewSplitter(logging.NewMockLogger())
	dir := t.TempDir()
	outDir := filepath.Join(dir, "pages")

	_, err := s.SplitAll(filepath.Join(dir, "missing.pdf"), outDir)
	require.Error(t, err)

	// The output directory is prepared before the input is touched
	info, err := os.Stat(outDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestExtractPageUnreadableInput(t *testing.T) {
	s := NewSplitter(logging.NewMockLogger())
	dir := t.TempDir()

	err := s.ExtractPage(filepath.Join(dir, "missing.pdf"), filepath.Join(dir, "out.pdf"), 1)
	assert.Error(t, err)
}
