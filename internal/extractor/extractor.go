// Package extractor assembles ExpenseRecords from raw document text and
// runs batches of documents through the extraction pipeline.
package extractor

import (
	"acordier/expense-extract/internal/amount"
	"acordier/expense-extract/internal/fields"
	"acordier/expense-extract/internal/logging"
	"acordier/expense-extract/internal/models"
)

// Extractor turns the bounded leading text of a document into one
// ExpenseRecord. It is pure: no I/O, no shared mutable state, safe for
// concurrent use.
type Extractor struct {
	registry *fields.Registry
	logger   logging.Logger
}

// New creates an Extractor over the given pattern registry.
func New(registry *fields.Registry, logger logging.Logger) *Extractor {
	if registry == nil {
		registry = fields.DefaultRegistry()
	}
	return &Extractor{registry: registry, logger: logger}
}

// Extract locates every configured field in the text and assembles a
// record. Fields are independently optional: a missing or malformed
// value leaves its record field absent and never blocks the others.
// SourceName is left empty for the caller to assign.
func (e *Extractor) Extract(text string) models.ExpenseRecord {
	var record models.ExpenseRecord

	for _, pattern := range e.registry.Patterns() {
		raw, ok := pattern.Locate(text)
		if !ok {
			e.logger.Debug("Field not found", logging.Field{Key: "field", Value: pattern.Name})
			continue
		}

		switch pattern.Name {
		case models.FieldNameLegalEntity:
			record.LegalEntity = raw
		case models.FieldNameCurrency:
			record.Currency = raw
		case models.FieldNameAmountDueEmployee:
			record.AmountDueEmployee = e.normalize(pattern.Name, raw)
		case models.FieldNameAmountDueCompanyCard:
			record.AmountDueCompanyCard = e.normalize(pattern.Name, raw)
		case models.FieldNameTotalPaidByCompany:
			record.TotalPaidByCompany = e.normalize(pattern.Name, raw)
		default:
			e.logger.Warn("Pattern matched an unmapped field",
				logging.Field{Key: "field", Value: pattern.Name})
		}
	}

	return record
}

func (e *Extractor) normalize(field, raw string) *models.Money {
	value := amount.Normalize(raw)
	if value == nil {
		e.logger.Debug("Amount unparseable, leaving field absent",
			logging.Field{Key: "field", Value: field},
			logging.Field{Key: "raw", Value: raw})
		return nil
	}
	return models.NewMoney(*value)
}
