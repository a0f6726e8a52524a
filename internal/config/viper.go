package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	CSV struct {
		Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	} `mapstructure:"csv" yaml:"csv"`

	Extract struct {
		// MaxPages bounds how many leading pages of each document are
		// searched for summary fields.
		MaxPages int `mapstructure:"max_pages" yaml:"max_pages"`

		// PatternsFile optionally overrides the built-in field pattern
		// registry with a YAML file.
		PatternsFile string `mapstructure:"patterns_file" yaml:"patterns_file"`
	} `mapstructure:"extract" yaml:"extract"`

	Server struct {
		Address       string `mapstructure:"address" yaml:"address"`
		MaxUploadSize int64  `mapstructure:"max_upload_size" yaml:"max_upload_size"`
	} `mapstructure:"server" yaml:"server"`
}

// InitializeConfig loads configuration hierarchically: defaults, then an
// optional config file, then EXPENSE_* environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.expense-extract")
	v.AddConfigPath(".expense-extract")
	v.AddConfigPath(".")

	v.SetEnvPrefix("EXPENSE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Continue with defaults and env vars
			Logger.Warnf("Error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("csv.delimiter", ",")

	v.SetDefault("extract.max_pages", 2)
	v.SetDefault("extract.patterns_file", "")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.max_upload_size", int64(32<<20))
}

// validateConfig validates the configuration values
func validateConfig(config *Config) error {
	if _, err := logrus.ParseLevel(config.Log.Level); err != nil {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	if config.Log.Format != "text" && config.Log.Format != "json" {
		return fmt.Errorf("invalid log format: %s (must be 'text' or 'json')", config.Log.Format)
	}

	if len(config.CSV.Delimiter) != 1 {
		return fmt.Errorf("CSV delimiter must be a single character, got: %s", config.CSV.Delimiter)
	}

	if config.Extract.MaxPages < 1 {
		return fmt.Errorf("extract.max_pages must be at least 1, got: %d", config.Extract.MaxPages)
	}

	if config.Server.MaxUploadSize < 1 {
		return fmt.Errorf("server.max_upload_size must be positive, got: %d", config.Server.MaxUploadSize)
	}

	return nil
}

// ConfigureLoggingFromConfig configures a logger based on the Config struct
func ConfigureLoggingFromConfig(config *Config) *logrus.Logger {
	logger := logrus.New()

	logLevel, err := logrus.ParseLevel(strings.ToLower(config.Log.Level))
	if err != nil {
		logger.Warnf("Invalid log level '%s', using 'info'", config.Log.Level)
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	if strings.ToLower(config.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return logger
}
