// Package fileutils provides common file operations used throughout the
// application.
package fileutils

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileExists checks if a file exists and is not a directory
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirectoryExists checks if a directory exists
func DirectoryExists(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// EnsureDirectoryExists creates a directory if it doesn't exist
func EnsureDirectoryExists(dirPath string) error {
	if !DirectoryExists(dirPath) {
		if err := os.MkdirAll(dirPath, 0750); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}
	return nil
}

// ListFilesWithExtension returns the files under dirPath carrying the
// given extension (case-insensitive), sorted for stable batch order.
func ListFilesWithExtension(dirPath, extension string) ([]string, error) {
	if !DirectoryExists(dirPath) {
		return nil, fmt.Errorf("directory does not exist: %s", dirPath)
	}

	extension = strings.ToLower(extension)
	var files []string

	err := filepath.Walk(dirPath, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() && strings.ToLower(filepath.Ext(path)) == extension {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	sort.Strings(files)
	return files, nil
}
