package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Exports always carry two decimal places, whatever precision the source
// amount parsed with.
func TestMoneyMarshalCSV(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Two places kept", "1234.56", "1234.56"},
		{"Trailing zeros kept", "-200.00", "-200.00"},
		{"Integer widened", "42", "42.00"},
		{"Extra precision rounded", "0.125", "0.13"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMoney(decimal.RequireFromString(tc.input))
			out, err := m.MarshalCSV()
			require.NoError(t, err)
			assert.Equal(t, tc.expected, out)
		})
	}
}

func TestMoneyUnmarshalCSV(t *testing.T) {
	var m Money
	require.NoError(t, m.UnmarshalCSV("1234.56"))
	assert.True(t, m.Equal(decimal.RequireFromString("1234.56")))

	var empty Money
	require.NoError(t, empty.UnmarshalCSV(""))
	assert.True(t, empty.IsZero())

	var bad Money
	assert.Error(t, bad.UnmarshalCSV("not-a-number"))
}

func TestMoneyMarshalJSON(t *testing.T) {
	record := ExpenseRecord{
		SourceName:        "march.pdf",
		AmountDueEmployee: NewMoney(decimal.RequireFromString("-200.00")),
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"amount_due_employee":"-200.00"`)
	// Absent amounts are omitted entirely
	assert.NotContains(t, string(data), "total_paid_by_company")
}
