// Package config provides environment and file based configuration for
// the application.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var (
	once sync.Once
	// Logger is the shared logrus instance configured from the environment.
	Logger = logrus.New()
)

// LoadEnv loads environment variables from a .env file if one exists in
// the current or parent directory.
func LoadEnv() {
	once.Do(func() {
		envFile := ".env"
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			envFile = filepath.Join("..", ".env")
			if _, err := os.Stat(envFile); os.IsNotExist(err) {
				return
			}
		}

		if err := godotenv.Load(envFile); err != nil {
			Logger.Warnf("Error loading .env file: %v", err)
			return
		}
		Logger.Debugf("Loaded environment variables from %s", envFile)
	})
}

// ConfigureLogging sets up the shared logger from LOG_LEVEL and
// LOG_FORMAT environment variables and returns it.
func ConfigureLogging() *logrus.Logger {
	logLevelStr := GetEnv("LOG_LEVEL", "info")

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		Logger.Warnf("Invalid log level '%s', using 'info'", logLevelStr)
		logLevel = logrus.InfoLevel
	}
	Logger.SetLevel(logLevel)

	if strings.ToLower(GetEnv("LOG_FORMAT", "text")) == "json" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	return Logger
}

// GetEnv retrieves an environment variable with a fallback value if not set
func GetEnv(key, fallback string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	return value
}
