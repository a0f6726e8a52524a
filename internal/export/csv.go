// Package export renders extracted records into tabular output formats.
// Absent values become empty cells, never zeros or error markers.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"

	"acordier/expense-extract/internal/models"
)

var log = logrus.New()

// Delimiter is the CSV field separator, configurable via SetDelimiter.
var Delimiter rune = ','

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// SetDelimiter sets the delimiter for CSV output
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// RecordsToCSV renders records as CSV into a buffer in canonical column
// order. An empty batch still produces the header row.
func RecordsToCSV(records []models.ExpenseRecord) (*bytes.Buffer, error) {
	if records == nil {
		records = []models.ExpenseRecord{}
	}

	buf := &bytes.Buffer{}
	csvWriter := csv.NewWriter(buf)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return nil, fmt.Errorf("error writing CSV data: %w", err)
	}

	return buf, nil
}

// WriteRecordsToCSV writes records to a CSV file in canonical column
// order. An empty batch still produces the header row.
func WriteRecordsToCSV(records []models.ExpenseRecord, csvFile string) error {
	if records == nil {
		records = []models.ExpenseRecord{}
	}

	log.WithFields(logrus.Fields{
		"file":  csvFile,
		"count": len(records),
	}).Info("Writing records to CSV file")

	dir := filepath.Dir(csvFile)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = Delimiter

	if err := gocsv.MarshalCSV(records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.WithField("file", csvFile).Info("Successfully wrote CSV file")
	return nil
}
