package models

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpenseRecordIsEmpty(t *testing.T) {
	amount := NewMoney(decimal.NewFromFloat(12.50))

	tests := []struct {
		name   string
		record ExpenseRecord
		empty  bool
	}{
		{"Only source name", ExpenseRecord{SourceName: "a.pdf"}, true},
		{"With currency", ExpenseRecord{SourceName: "a.pdf", Currency: "USD"}, false},
		{"With amount", ExpenseRecord{SourceName: "a.pdf", AmountDueEmployee: amount}, false},
		{"With legal entity", ExpenseRecord{SourceName: "a.pdf", LegalEntity: "ACME$1"}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.empty, tc.record.IsEmpty())
		})
	}
}

func TestExpenseRecordColumns(t *testing.T) {
	record := ExpenseRecord{
		SourceName:           "march.pdf",
		LegalEntity:          "ACME$1",
		Currency:             "USD",
		AmountDueEmployee:    NewMoney(decimal.NewFromFloat(1234.56)),
		AmountDueCompanyCard: NewMoney(decimal.NewFromFloat(-200)),
	}

	cols := record.Columns()
	assert.Equal(t, []string{"march.pdf", "ACME$1", "USD", "1234.56", "-200.00", ""}, cols)
	assert.Len(t, cols, len(ColumnNames))
}

func TestFieldTypeValid(t *testing.T) {
	assert.True(t, FieldToken.Valid())
	assert.True(t, FieldFreeText.Valid())
	assert.True(t, FieldAmount.Valid())
	assert.False(t, FieldType("date").Valid())
}
