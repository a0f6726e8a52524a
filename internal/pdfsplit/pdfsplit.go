// Package pdfsplit produces standalone single-page documents from a
// source PDF. It is independent of the extraction core.
package pdfsplit

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"acordier/expense-extract/internal/fileutils"
	"acordier/expense-extract/internal/logging"
)

// Splitter writes per-page PDFs.
type Splitter struct {
	logger logging.Logger
}

// NewSplitter creates a page splitter.
func NewSplitter(logger logging.Logger) *Splitter {
	return &Splitter{logger: logger}
}

// SplitAll writes one standalone PDF per page of inFile into outDir and
// returns the produced file paths in page order.
func (s *Splitter) SplitAll(inFile, outDir string) ([]string, error) {
	if err := fileutils.EnsureDirectoryExists(outDir); err != nil {
		return nil, err
	}

	pages, err := api.PageCountFile(inFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read page count of '%s': %w", inFile, err)
	}

	if err := api.SplitFile(inFile, outDir, 1, nil); err != nil {
		return nil, fmt.Errorf("failed to split '%s': %w", inFile, err)
	}

	base := strings.TrimSuffix(filepath.Base(inFile), filepath.Ext(inFile))
	paths := make([]string, 0, pages)
	for page := 1; page <= pages; page++ {
		paths = append(paths, filepath.Join(outDir, fmt.Sprintf("%s_%d.pdf", base, page)))
	}

	s.logger.Info("Split document into pages",
		logging.Field{Key: "file", Value: inFile},
		logging.Field{Key: "pages", Value: pages})
	return paths, nil
}

// ExtractPage writes a standalone PDF containing only the given 1-based
// page of inFile.
func (s *Splitter) ExtractPage(inFile, outFile string, page int) error {
	pages, err := api.PageCountFile(inFile)
	if err != nil {
		return fmt.Errorf("failed to read page count of '%s': %w", inFile, err)
	}
	if page < 1 || page > pages {
		return fmt.Errorf("page %d out of range, document '%s' has %d pages", page, inFile, pages)
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(outFile)); err != nil {
		return err
	}

	if err := api.TrimFile(inFile, outFile, []string{strconv.Itoa(page)}, nil); err != nil {
		return fmt.Errorf("failed to extract page %d of '%s': %w", page, inFile, err)
	}

	s.logger.Info("Extracted single page",
		logging.Field{Key: "file", Value: inFile},
		logging.Field{Key: "page", Value: page},
		logging.Field{Key: "output", Value: outFile})
	return nil
}
