// Package root contains the root command for the application
package root

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"acordier/expense-extract/internal/amount"
	"acordier/expense-extract/internal/config"
	"acordier/expense-extract/internal/container"
	"acordier/expense-extract/internal/export"
	"acordier/expense-extract/internal/logging"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// AppConfig holds the resolved configuration after PersistentPreRun
	AppConfig *config.Config

	// AppContainer holds the wired dependencies after PersistentPreRun
	AppContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "expense-extract",
		Short: "A CLI tool to extract summary fields from expense report PDFs.",
		Long: `expense-extract pulls the summary fields (legal entity, currency and
reimbursement amounts) from the first pages of expense report PDFs and
writes them as CSV or XLSX rows, one row per document.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to expense-extract!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}

			// Command-line flags win over config file and environment
			if MaxPages > 0 {
				cfg.Extract.MaxPages = MaxPages
			}
			if PatternsFile != "" {
				cfg.Extract.PatternsFile = PatternsFile
			}
			AppConfig = cfg

			// Set the configured logger for the shared-logger packages
			amount.SetLogger(Log)
			export.SetLogger(Log)

			// Ensure CSV delimiter is updated after env variables are loaded
			if delim := os.Getenv("CSV_DELIMITER"); delim != "" {
				Log.WithField("delimiter", delim).Debug("Setting CSV delimiter from environment")
				export.SetDelimiter([]rune(delim)[0])
			}

			c, err := container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize dependencies: %v", err)
			}
			AppContainer = c
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// MaxPages bounds the number of leading pages searched per document
	MaxPages int

	// PatternsFile optionally points at a YAML field pattern override
	PatternsFile string
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().IntVarP(&MaxPages, "max-pages", "p", 0, "Number of leading pages to search (default from config)")
	Cmd.PersistentFlags().StringVar(&PatternsFile, "patterns", "", "YAML file overriding the built-in field patterns")
}

// GetConfig returns the resolved application configuration.
func GetConfig() *config.Config {
	return AppConfig
}

// GetContainer returns the wired dependency container.
func GetContainer() *container.Container {
	return AppContainer
}

// GetLogrusAdapter returns the shared logger wrapped in the logging.Logger
// interface for components that expect it.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
