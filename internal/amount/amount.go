// Package amount normalizes raw monetary strings captured from document
// text into canonical signed decimal values.
package amount

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// SetLogger sets a custom logger for this package
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// currencyMarkers matches the recognized currency codes and symbols
// together with any whitespace around them, so a marker disappears
// cleanly whether it leads or trails the digits.
var currencyMarkers = regexp.MustCompile(`\s*(?:USD|EUR|GBP|[€$£])\s*`)

// Normalize parses a raw captured amount string into a signed decimal.
// It handles parenthesized negatives, the recognized currency markers and
// both thousands/decimal separator conventions. A nil result means the
// input was absent or unparseable; normalization never returns an error.
func Normalize(raw string) *decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	// Accounting notation: (1,234.56) means -1234.56
	negative := strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")")
	if negative {
		raw = raw[1 : len(raw)-1]
	}

	cleaned := Standardize(raw)

	value, err := decimal.NewFromString(cleaned)
	if err != nil {
		log.WithFields(logrus.Fields{
			"raw":     raw,
			"cleaned": cleaned,
		}).Debug("Amount did not parse, treating as absent")
		return nil
	}

	if negative || strings.HasPrefix(cleaned, "-") {
		value = value.Abs().Neg()
	}
	return &value
}

// Standardize strips currency markers and rewrites the thousands/decimal
// separators of the raw string into the canonical dot-decimal form that
// decimal.NewFromString accepts. It does not attempt any further repair;
// leftover junk is expected to fail the subsequent parse.
func Standardize(raw string) string {
	s := currencyMarkers.ReplaceAllString(strings.TrimSpace(raw), "")

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")

	switch {
	case hasComma && hasDot:
		// Whichever separator appears first groups thousands, the other
		// marks the decimal point: 1.234,56 vs 1,234.56.
		if strings.Index(s, ".") < strings.Index(s, ",") {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.ReplaceAll(s, ",", ".")
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	case hasComma:
		// A lone comma is a thousands separator: 1,234 -> 1234. Fractions
		// expressed with a bare comma are not a convention this input uses.
		s = strings.ReplaceAll(s, ",", "")
	}
	// A lone dot is already a decimal point, leave it alone.

	return strings.TrimSpace(s)
}
