// Package models defines the data structures shared by the extraction
// core, the exporters and the front-ends.
package models

// ExpenseRecord is one extracted summary row per processed document.
// Every field except SourceName is optional: an empty string or nil
// pointer means the field was absent or unparseable in the source text.
// Exporters must render absent values as empty cells, never as zero.
type ExpenseRecord struct {
	SourceName           string `csv:"source_name" json:"source_name"`
	LegalEntity          string `csv:"legal_entity" json:"legal_entity,omitempty"`
	Currency             string `csv:"currency" json:"currency,omitempty"`
	AmountDueEmployee    *Money `csv:"amount_due_employee" json:"amount_due_employee,omitempty"`
	AmountDueCompanyCard *Money `csv:"amount_due_company_card" json:"amount_due_company_card,omitempty"`
	TotalPaidByCompany   *Money `csv:"total_paid_by_company" json:"total_paid_by_company,omitempty"`
}

// Canonical field names, shared by the pattern registry, the assembler
// and the exporters.
const (
	FieldNameSourceName           = "source_name"
	FieldNameLegalEntity          = "legal_entity"
	FieldNameCurrency             = "currency"
	FieldNameAmountDueEmployee    = "amount_due_employee"
	FieldNameAmountDueCompanyCard = "amount_due_company_card"
	FieldNameTotalPaidByCompany   = "total_paid_by_company"
)

// ColumnNames is the canonical export column order.
var ColumnNames = []string{
	FieldNameSourceName,
	FieldNameLegalEntity,
	FieldNameCurrency,
	FieldNameAmountDueEmployee,
	FieldNameAmountDueCompanyCard,
	FieldNameTotalPaidByCompany,
}

// IsEmpty reports whether no field beyond the source name was extracted.
func (r ExpenseRecord) IsEmpty() bool {
	return r.LegalEntity == "" &&
		r.Currency == "" &&
		r.AmountDueEmployee == nil &&
		r.AmountDueCompanyCard == nil &&
		r.TotalPaidByCompany == nil
}

// Columns returns the record's values in canonical column order, with
// absent amounts rendered as empty strings.
func (r ExpenseRecord) Columns() []string {
	return []string{
		r.SourceName,
		r.LegalEntity,
		r.Currency,
		formatAmount(r.AmountDueEmployee),
		formatAmount(r.AmountDueCompanyCard),
		formatAmount(r.TotalPaidByCompany),
	}
}

func formatAmount(m *Money) string {
	if m == nil {
		return ""
	}
	return m.StringFixed(2)
}
