package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"acordier/expense-extract/cmd/batch"
	"acordier/expense-extract/cmd/extract"
	"acordier/expense-extract/cmd/root"
	"acordier/expense-extract/cmd/serve"
	"acordier/expense-extract/cmd/split"
)

func init() {
	// 1. Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// 2. Configure global log level directly - this affects ALL new loggers
	configureLogLevelDirectly()

	// 3. Now that logging is properly configured, initialize root command
	root.Init()

	// 4. Add all subcommands
	root.Cmd.AddCommand(extract.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(split.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances before any logging happens
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
