// Package container provides dependency injection for the expense-extract
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"acordier/expense-extract/internal/amount"
	"acordier/expense-extract/internal/config"
	"acordier/expense-extract/internal/export"
	"acordier/expense-extract/internal/extractor"
	"acordier/expense-extract/internal/fields"
	"acordier/expense-extract/internal/logging"
	"acordier/expense-extract/internal/pdfsplit"
	"acordier/expense-extract/internal/pdftext"
)

// Container holds all application dependencies and provides methods to
// access them.
//
// Container is immutable after creation - all fields are private and can
// only be accessed through getter methods. This prevents accidental
// modification of dependencies after initialization.
type Container struct {
	logger   logging.Logger
	config   *config.Config
	registry *fields.Registry

	extractor *extractor.Extractor
	batch     *extractor.BatchRunner
	reader    *pdftext.Reader
	splitter  *pdfsplit.Splitter
}

// NewContainer creates and wires all application dependencies.
// This is the main entry point for dependency injection in the application.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	// Package-level loggers for packages that keep the shared-logger idiom
	shared := config.ConfigureLoggingFromConfig(cfg)
	amount.SetLogger(shared)
	export.SetLogger(shared)

	if len(cfg.CSV.Delimiter) == 1 {
		export.SetDelimiter(rune(cfg.CSV.Delimiter[0]))
	}

	registry, err := fields.LoadRegistry(cfg.Extract.PatternsFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load field patterns: %w", err)
	}

	reader := pdftext.NewReader(logger)
	splitter := pdfsplit.NewSplitter(logger)

	ext := extractor.New(registry, logger)
	batch := extractor.NewBatchRunner(ext, reader, cfg.Extract.MaxPages, logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: "patterns_count", Value: len(registry.Patterns())},
		logging.Field{Key: "max_pages", Value: cfg.Extract.MaxPages})

	return &Container{
		logger:    logger,
		config:    cfg,
		registry:  registry,
		extractor: ext,
		batch:     batch,
		reader:    reader,
		splitter:  splitter,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRegistry returns the compiled field pattern registry.
func (c *Container) GetRegistry() *fields.Registry {
	return c.registry
}

// GetExtractor returns the single-document field extractor.
func (c *Container) GetExtractor() *extractor.Extractor {
	return c.extractor
}

// GetBatchRunner returns the batch runner wired with the PDF text source.
func (c *Container) GetBatchRunner() *extractor.BatchRunner {
	return c.batch
}

// GetReader returns the PDF text reader.
func (c *Container) GetReader() *pdftext.Reader {
	return c.reader
}

// GetSplitter returns the PDF page splitter.
func (c *Container) GetSplitter() *pdfsplit.Splitter {
	return c.splitter
}

// Close performs cleanup of container resources.
// This method should be called when the container is no longer needed.
func (c *Container) Close() error {
	// Currently no resources need explicit cleanup
	c.logger.Info("Container closed")
	return nil
}
