// Command migrate applies the embedded schema migrations to the configured
// Postgres database and exits.
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/peerprep/user-service/internal/config"
	"github.com/peerprep/user-service/internal/logging"
	"github.com/peerprep/user-service/internal/storage"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	m, err := storage.NewPostgresManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "migration failed", "err", err)
		os.Exit(1)
	}
	defer m.Close()

	logger.Info(ctx, "migrations applied")
}
