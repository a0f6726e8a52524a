package extractor

import (
	"context"
	"path/filepath"

	"acordier/expense-extract/internal/logging"
	"acordier/expense-extract/internal/models"
	"acordier/expense-extract/internal/parsererror"
)

// DefaultMaxPages bounds how much leading text is searched per document.
// The labeled summary fields appear near the document start, so two
// pages is a precision/performance tradeoff, not a correctness bound.
const DefaultMaxPages = 2

// TextSource supplies the plain text of the leading pages of a document.
// A page with no extractable text contributes an empty string, not an
// error.
type TextSource interface {
	LeadingText(path string, maxPages int) (string, error)
}

// Failure is a per-document diagnostic from a batch run.
type Failure struct {
	Path string
	Err  error
}

// ProgressFunc is called after each document is handled, successfully or
// not. It replaces any global progress state in the front-ends.
type ProgressFunc func(done, total int, path string)

// BatchRunner processes documents sequentially and isolates per-document
// failures so one unreadable file never aborts the batch.
type BatchRunner struct {
	extractor *Extractor
	source    TextSource
	maxPages  int
	logger    logging.Logger
	progress  ProgressFunc
}

// NewBatchRunner wires an extraction batch. maxPages values below one
// fall back to DefaultMaxPages.
func NewBatchRunner(e *Extractor, source TextSource, maxPages int, logger logging.Logger) *BatchRunner {
	if maxPages < 1 {
		maxPages = DefaultMaxPages
	}
	return &BatchRunner{
		extractor: e,
		source:    source,
		maxPages:  maxPages,
		logger:    logger,
	}
}

// SetProgress installs an optional progress callback.
func (b *BatchRunner) SetProgress(fn ProgressFunc) {
	b.progress = fn
}

// Run extracts one record per readable document, in input order. Failed
// documents are reported as diagnostics alongside the records of their
// siblings. Cancelling the context stops before the next document and
// returns whatever completed so far.
func (b *BatchRunner) Run(ctx context.Context, paths []string) ([]models.ExpenseRecord, []Failure) {
	records := make([]models.ExpenseRecord, 0, len(paths))
	var failures []Failure

	for i, path := range paths {
		if ctx.Err() != nil {
			b.logger.Warn("Batch cancelled",
				logging.Field{Key: "processed", Value: i},
				logging.Field{Key: "total", Value: len(paths)})
			return records, failures
		}

		record, err := b.processOne(path)
		if err != nil {
			b.logger.WithError(err).Error("Skipping unreadable document",
				logging.Field{Key: "file", Value: path})
			failures = append(failures, Failure{Path: path, Err: err})
		} else {
			records = append(records, record)
		}

		if b.progress != nil {
			b.progress(i+1, len(paths), path)
		}
	}

	b.logger.Info("Batch completed",
		logging.Field{Key: "records", Value: len(records)},
		logging.Field{Key: "failures", Value: len(failures)})
	return records, failures
}

func (b *BatchRunner) processOne(path string) (models.ExpenseRecord, error) {
	text, err := b.source.LeadingText(path, b.maxPages)
	if err != nil {
		return models.ExpenseRecord{}, &parsererror.DocumentReadError{Path: path, Err: err}
	}

	record := b.extractor.Extract(text)
	record.SourceName = filepath.Base(path)
	return record, nil
}

// AllEmpty reports whether no record carries any extracted data, the
// "nothing to export" condition surfaced by the front-ends.
func AllEmpty(records []models.ExpenseRecord) bool {
	for _, r := range records {
		if !r.IsEmpty() {
			return false
		}
	}
	return true
}
