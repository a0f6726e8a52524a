package models

// FieldType tags how a field's captured value is interpreted.
type FieldType string

const (
	// FieldToken captures a single whitespace-delimited token.
	FieldToken FieldType = "token"

	// FieldFreeText captures the remainder of the line.
	FieldFreeText FieldType = "free-text"

	// FieldAmount captures a monetary value which is then normalized
	// into a signed decimal.
	FieldAmount FieldType = "amount"
)

// Valid reports whether the type tag is one of the known kinds.
func (t FieldType) Valid() bool {
	switch t {
	case FieldToken, FieldFreeText, FieldAmount:
		return true
	}
	return false
}

// FieldSpec is the declarative form of a field pattern: a field name, the
// exact label phrase that precedes the value in the document text, and a
// type tag. The registry compiles specs into matchable patterns. Specs
// are fixed configuration, not user data.
type FieldSpec struct {
	Name  string    `yaml:"name"`
	Label string    `yaml:"label"`
	Type  FieldType `yaml:"type"`
}
