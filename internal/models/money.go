package models

import (
	"github.com/shopspring/decimal"
)

// Money is a monetary amount that renders with exactly two decimal places
// in every textual export, so CSV rows, JSON payloads and the CLI print
// path agree on one representation. It wraps decimal.Decimal for
// arithmetic; record fields use *Money with nil meaning absent.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal value.
func NewMoney(d decimal.Decimal) *Money {
	return &Money{Decimal: d}
}

// MarshalCSV renders the amount with two decimal places for gocsv.
func (m Money) MarshalCSV() (string, error) {
	return m.StringFixed(2), nil
}

// UnmarshalCSV parses a CSV cell back into an amount. An empty cell
// leaves the zero value.
func (m *Money) UnmarshalCSV(s string) error {
	if s == "" {
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return err
	}
	m.Decimal = d
	return nil
}

// MarshalJSON keeps the two-decimal rendering in JSON payloads.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(`"` + m.StringFixed(2) + `"`), nil
}
