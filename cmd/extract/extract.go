// Package extract handles single-document field extraction
package extract

import (
	"context"

	"github.com/spf13/cobra"

	"acordier/expense-extract/cmd/common"
	"acordier/expense-extract/cmd/root"
	"acordier/expense-extract/internal/models"
)

// Cmd represents the extract command
var Cmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract summary fields from one expense report PDF",
	Long: `Extract the summary fields from a single expense report PDF and write
them as a one-row CSV or XLSX file. The output format follows the output
file extension, defaulting to CSV.

Example:
  expense-extract extract -i report.pdf -o report.csv`,
	Run: extractFunc,
}

func extractFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	input := root.SharedFlags.Input
	output := root.SharedFlags.Output
	if input == "" {
		logger.Fatal("Input file must be specified with -i")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	runner := appContainer.GetBatchRunner()
	records, failures := runner.Run(context.Background(), []string{input})
	if len(failures) > 0 {
		logger.Fatalf("Failed to process %s: %v", input, failures[0].Err)
	}

	record := records[0]
	if record.IsEmpty() {
		logger.Warn("No summary fields found in document")
	}

	if output == "" {
		printRecord(record)
		return
	}

	if err := common.WriteRecords([]models.ExpenseRecord{record}, output); err != nil {
		logger.Fatalf("Failed to write output: %v", err)
	}
	root.Log.Infof("Extraction completed successfully, output written to %s", output)
}

func printRecord(record models.ExpenseRecord) {
	values := record.Columns()
	for i, name := range models.ColumnNames {
		root.Log.WithField(name, values[i]).Info("Extracted field")
	}
}
