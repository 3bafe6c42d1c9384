package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/realtydesk/realty-api/internal/config"
	"github.com/realtydesk/realty-api/internal/db"
	"github.com/realtydesk/realty-api/internal/httpapi"
	"github.com/realtydesk/realty-api/internal/logging"
)

func newServeCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Connect to MongoDB and serve the REST API.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (default: PORT env or 5000)")

	return cmd
}

func runServe(ctx context.Context, port string) error {
	cfg := config.Load()
	if port != "" {
		cfg.Port = port
	}
	logging.Setup(cfg.DevMode)

	database, err := db.Connect(ctx, cfg.MongoURI, cfg.Database)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer func() {
		if err := db.Close(context.Background(), database); err != nil {
			slog.Warn("closing database", "error", err)
		}
	}()

	slog.Info("starting api server", "port", cfg.Port, "database", cfg.Database)

	srv := httpapi.NewServer(cfg, httpapi.NewStores(database))
	return srv.Run()
}
