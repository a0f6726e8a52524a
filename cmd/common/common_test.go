package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"acordier/expense-extract/internal/models"
)

func TestWriteRecordsByExtension(t *testing.T) {
	records := []models.ExpenseRecord{
		{
			SourceName:        "a.pdf",
			Currency:          "EUR",
			AmountDueEmployee: models.NewMoney(decimal.RequireFromString("42.50")),
		},
	}

	dir := t.TempDir()

	csvPath := filepath.Join(dir, "out.csv")
	require.NoError(t, WriteRecords(records, csvPath))
	data, err := os.ReadFile(csvPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "a.pdf")

	xlsxPath := filepath.Join(dir, "out.XLSX")
	require.NoError(t, WriteRecords(records, xlsxPath))
	info, err := os.Stat(xlsxPath)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
