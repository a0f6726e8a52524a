// Package split handles splitting multi-page PDFs into per-page files
package split

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"acordier/expense-extract/cmd/root"
	"acordier/expense-extract/internal/logging"
)

// Cmd represents the split command
var Cmd = &cobra.Command{
	Use:   "split",
	Short: "Split a PDF into one file per page",
	Long: `Split a multi-page PDF into single-page PDFs named <name>_<page>.pdf
in the output directory. Use --page to extract just one page instead.

Example:
  expense-extract split -i bundle.pdf -o pages/`,
	Run: splitFunc,
}

// Page selects a single page to extract instead of splitting all pages
var Page int

func init() {
	Cmd.Flags().IntVar(&Page, "page", 0, "Extract only this page (1-based)")
}

func splitFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" || output == "" {
		logger.Fatal("Input file and output directory must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}
	splitter := appContainer.GetSplitter()

	if Page > 0 {
		base := filepath.Base(input)
		ext := filepath.Ext(base)
		outFile := filepath.Join(output, base[:len(base)-len(ext)]+"_page.pdf")

		if err := splitter.ExtractPage(input, outFile, Page); err != nil {
			logger.Fatalf("Failed to extract page %d: %v", Page, err)
		}
		root.Log.Infof("Extracted page %d to %s", Page, outFile)
		return
	}

	pages, err := splitter.SplitAll(input, output)
	if err != nil {
		logger.Fatalf("Failed to split PDF: %v", err)
	}

	logger.Info("Split completed",
		logging.Field{Key: "pages", Value: len(pages)},
		logging.Field{Key: "output", Value: output})
}
