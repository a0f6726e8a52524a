// Package serve runs the HTTP front-end for batch extraction
package serve

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"acordier/expense-extract/cmd/root"
	"acordier/expense-extract/internal/server"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP extraction service",
	Long: `Run an HTTP server that accepts expense report PDFs as multipart
uploads on POST /api/extract and responds with the extracted records as
an XLSX attachment (or CSV with ?format=csv).

Example:
  expense-extract serve --address :8080`,
	Run: serveFunc,
}

// Address overrides the configured listen address when set
var Address string

func init() {
	Cmd.Flags().StringVar(&Address, "address", "", "Listen address (default from config)")
}

func serveFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	cfg := appContainer.GetConfig()
	if Address != "" {
		cfg.Server.Address = Address
	}

	srv := server.NewServer(cfg, appContainer.GetBatchRunner(), appContainer.GetLogger())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := srv.Start(ctx); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}
}
