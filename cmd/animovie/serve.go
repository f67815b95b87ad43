package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Harshitv21/Anime-Movie-API/internal/api"
	"github.com/Harshitv21/Anime-Movie-API/internal/config"
)

// newServeCmd returns the "serve" subcommand that runs the HTTP gateway.
func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP gateway",
		Long:  "Start the gateway server and serve requests until interrupted.",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := config.SetupLogger(cfg.App.LogLevel)

			tmdbClient, jikanClient := initClients(cfg, logger)
			handlers := api.NewHandlers(tmdbClient, jikanClient, cfg.TMDB.ImageBaseURL, logger)
			server := api.NewServer(cfg.Server.Port, handlers, logger)

			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			return server.Start(ctx)
		},
	}
}
