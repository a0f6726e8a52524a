// Package parsererror defines the error types surfaced by document
// processing. Field-level misses are not errors at all; these types cover
// the document and batch boundaries.
package parsererror

import "fmt"

// DocumentReadError reports that a single document could not be read or
// processed. The batch runner records it as a diagnostic and continues
// with the remaining documents.
type DocumentReadError struct {
	Path string
	Err  error
}

func (e *DocumentReadError) Error() string {
	return fmt.Sprintf("failed to read document '%s': %v", e.Path, e.Err)
}

func (e *DocumentReadError) Unwrap() error {
	return e.Err
}

// InvalidFormatError reports that an input file does not conform to the
// expected document format.
type InvalidFormatError struct {
	FilePath       string
	ExpectedFormat string
	Msg            string
}

func (e *InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid format in file '%s': %s. Expected: %s",
		e.FilePath, e.Msg, e.ExpectedFormat)
}

// EmptyBatchError reports that no document in a batch yielded any data,
// so there is nothing to export.
type EmptyBatchError struct {
	DocumentCount int
}

func (e *EmptyBatchError) Error() string {
	return fmt.Sprintf("no data extracted from any of the %d documents, nothing to export", e.DocumentCount)
}

// PatternConfigError reports a malformed field pattern configuration.
// This is a programming or deployment error, not a runtime condition to
// recover from.
type PatternConfigError struct {
	Field  string
	Reason string
}

func (e *PatternConfigError) Error() string {
	return fmt.Sprintf("invalid field pattern '%s': %s", e.Field, e.Reason)
}
