// Package common provides helpers shared by the CLI commands
package common

import (
	"path/filepath"
	"strings"

	"acordier/expense-extract/internal/export"
	"acordier/expense-extract/internal/models"
)

// WriteRecords writes records to the output path, choosing the format by
// file extension: .xlsx produces a workbook, everything else CSV.
func WriteRecords(records []models.ExpenseRecord, output string) error {
	if strings.EqualFold(filepath.Ext(output), ".xlsx") {
		return export.WriteRecordsToXLSX(records, output)
	}
	return export.WriteRecordsToCSV(records, output)
}
