// Package batch handles batch processing of expense report directories
package batch

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"acordier/expense-extract/cmd/common"
	"acordier/expense-extract/cmd/root"
	"acordier/expense-extract/internal/extractor"
	"acordier/expense-extract/internal/fileutils"
	"acordier/expense-extract/internal/logging"
	"acordier/expense-extract/internal/parsererror"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process expense report PDFs from a directory",
	Long: `Batch process all PDF files in the input directory and write the
extracted fields to a single CSV or XLSX file, one row per document.
Documents that cannot be read are skipped and reported, they never abort
the batch.

Example:
  expense-extract batch -i reports/ -o expenses.csv`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	inputDir := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if inputDir == "" || output == "" {
		logger.Fatal("Input directory and output file must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		logger.Fatalf("Failed to read input directory: %v", err)
	}
	if len(files) == 0 {
		logger.Warn("No PDF files found in input directory")
		return
	}

	logger.Info("Found files for processing",
		logging.Field{Key: "count", Value: len(files)})

	runner := appContainer.GetBatchRunner()
	runner.SetProgress(func(done, total int, path string) {
		logger.Info("Processed document",
			logging.Field{Key: "progress", Value: fmt.Sprintf("%d/%d", done, total)},
			logging.Field{Key: "file", Value: filepath.Base(path)})
	})

	records, failures := runner.Run(context.Background(), files)

	for _, failure := range failures {
		logger.WithError(failure.Err).Warn("Skipped unreadable document",
			logging.Field{Key: "file", Value: filepath.Base(failure.Path)})
	}

	if len(records) == 0 || extractor.AllEmpty(records) {
		logger.Fatalf("Batch produced no output: %v",
			&parsererror.EmptyBatchError{DocumentCount: len(files)})
	}

	if err := common.WriteRecords(records, output); err != nil {
		logger.Fatalf("Failed to write output: %v", err)
	}

	root.Log.Info(fmt.Sprintf("Batch processing completed. %d of %d documents extracted.",
		len(records), len(files)))
}
