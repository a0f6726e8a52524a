package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"acordier/expense-extract/internal/models"
)

// SheetName is the worksheet the records land on.
const SheetName = "Expense Data"

// RecordsToXLSX renders records into an XLSX workbook and returns its
// bytes. Header row first, then one row per record in input order;
// amounts are written as numeric cells, absent values stay empty.
func RecordsToXLSX(records []models.ExpenseRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	index, err := f.NewSheet(SheetName)
	if err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("xlsx sheet: %w", err)
	}

	for i, name := range models.ColumnNames {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(SheetName, cell, name); err != nil {
			return nil, fmt.Errorf("xlsx header: %w", err)
		}
	}

	for rowIdx, record := range records {
		row := rowIdx + 2
		setCell := func(col int, v interface{}) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			if err := f.SetCellValue(SheetName, cell, v); err != nil {
				log.WithError(err).Warn("Failed to set cell value")
			}
		}

		setCell(1, record.SourceName)
		if record.LegalEntity != "" {
			setCell(2, record.LegalEntity)
		}
		if record.Currency != "" {
			setCell(3, record.Currency)
		}
		if record.AmountDueEmployee != nil {
			setCell(4, record.AmountDueEmployee.InexactFloat64())
		}
		if record.AmountDueCompanyCard != nil {
			setCell(5, record.AmountDueCompanyCard.InexactFloat64())
		}
		if record.TotalPaidByCompany != nil {
			setCell(6, record.TotalPaidByCompany.InexactFloat64())
		}
	}

	_ = f.SetColWidth(SheetName, "A", "A", 32)
	_ = f.SetColWidth(SheetName, "B", "C", 16)
	_ = f.SetColWidth(SheetName, "D", "F", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf, nil
}

// WriteRecordsToXLSX writes records to an XLSX file on disk.
func WriteRecordsToXLSX(records []models.ExpenseRecord, xlsxFile string) error {
	log.WithField("file", xlsxFile).WithField("count", len(records)).Info("Writing records to XLSX file")

	buf, err := RecordsToXLSX(records)
	if err != nil {
		return err
	}

	dir := filepath.Dir(xlsxFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	if err := os.WriteFile(xlsxFile, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("error writing XLSX file: %w", err)
	}

	log.WithField("file", xlsxFile).Info("Successfully wrote XLSX file")
	return nil
}
