// Package fields locates labeled key/value pairs in raw document text.
// A pattern is an exact label phrase followed by an optional colon
// separator and a type-directed value capture; the registry holds the
// fixed set of patterns describing an expense-report summary page.
package fields

import (
	"regexp"
	"strings"

	"acordier/expense-extract/internal/models"
	"acordier/expense-extract/internal/parsererror"
)

// Capture expressions per field type. Amount captures use one unified
// character class including parentheses and minus, so accounting-style
// negatives survive into normalization.
const (
	tokenCapture    = `(\S+)`
	freeTextCapture = `([^\n]+)`
	amountCapture   = `(?:USD|EUR|GBP|[€$£])?\s*([\d,.()-]+)`
)

// tokenFilter strips everything that is not alphanumeric or '$' from a
// captured token, defending against punctuation artifacts left behind by
// text extraction.
var tokenFilter = regexp.MustCompile(`[^a-zA-Z0-9$]+`)

// Pattern is a compiled, matchable field pattern.
type Pattern struct {
	Name string
	Type models.FieldType
	re   *regexp.Regexp
}

// Compile builds a matchable Pattern from a declarative spec. A spec with
// an empty name or label, or an unknown type tag, is a configuration
// error.
func Compile(spec models.FieldSpec) (Pattern, error) {
	if spec.Name == "" {
		return Pattern{}, &parsererror.PatternConfigError{Field: spec.Name, Reason: "empty field name"}
	}
	if spec.Label == "" {
		return Pattern{}, &parsererror.PatternConfigError{Field: spec.Name, Reason: "empty label"}
	}
	if !spec.Type.Valid() {
		return Pattern{}, &parsererror.PatternConfigError{
			Field:  spec.Name,
			Reason: "unknown type '" + string(spec.Type) + "'",
		}
	}

	var capture string
	switch spec.Type {
	case models.FieldToken:
		capture = tokenCapture
	case models.FieldFreeText:
		capture = freeTextCapture
	case models.FieldAmount:
		capture = amountCapture
	}

	re, err := regexp.Compile(regexp.QuoteMeta(spec.Label) + `\s*:?\s*` + capture)
	if err != nil {
		return Pattern{}, &parsererror.PatternConfigError{Field: spec.Name, Reason: err.Error()}
	}

	return Pattern{Name: spec.Name, Type: spec.Type, re: re}, nil
}

// MustCompile is Compile for the built-in patterns, where a failure is a
// programming error.
func MustCompile(spec models.FieldSpec) Pattern {
	p, err := Compile(spec)
	if err != nil {
		panic(err)
	}
	return p
}

// Locate returns the first match of the pattern in text, or false when
// the field is absent. Summary fields are assumed to appear once near the
// document start, so repeated labels are not disambiguated.
func (p Pattern) Locate(text string) (string, bool) {
	matches := p.re.FindStringSubmatch(text)
	if len(matches) < 2 {
		return "", false
	}

	value := strings.TrimSpace(matches[1])
	if p.Type == models.FieldToken {
		value = tokenFilter.ReplaceAllString(value, "")
	}
	if value == "" {
		return "", false
	}
	return value, true
}
