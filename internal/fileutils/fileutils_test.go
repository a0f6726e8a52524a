package fileutils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	assert.True(t, FileExists(path))
	assert.False(t, FileExists(filepath.Join(dir, "missing.pdf")))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureDirectoryExists(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")

	require.NoError(t, EnsureDirectoryExists(dir))
	assert.True(t, DirectoryExists(dir))

	// Idempotent
	assert.NoError(t, EnsureDirectoryExists(dir))
}

func TestListFilesWithExtension(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.PDF", "notes.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0600))
	}
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0750))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "c.pdf"), []byte("x"), 0600))

	files, err := ListFilesWithExtension(dir, ".pdf")
	require.NoError(t, err)

	require.Len(t, files, 3)
	// Sorted, case-insensitive extension match, recursive
	assert.Equal(t, filepath.Join(dir, "a.PDF"), files[0])
	assert.Equal(t, filepath.Join(dir, "b.pdf"), files[1])
	assert.Equal(t, filepath.Join(sub, "c.pdf"), files[2])
}

func TestListFilesWithExtensionMissingDir(t *testing.T) {
	_, err := ListFilesWithExtension(filepath.Join(t.TempDir(), "nope"), ".pdf")
	assert.Error(t, err)
}
