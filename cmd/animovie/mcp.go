package main

import (
	"github.com/spf13/cobra"

	"github.com/Harshitv21/Anime-Movie-API/internal/config"
	mcpserver "github.com/Harshitv21/Anime-Movie-API/internal/mcp"
)

// newMCPServeCmd returns the "mcp" subcommand. It starts an MCP server
// over stdin/stdout exposing the gateway's search and trending tools to
// MCP hosts.
func newMCPServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server over stdio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			logger := config.SetupLogger(cfg.App.LogLevel)
			tmdbClient, jikanClient := initClients(cfg, logger)

			srv := mcpserver.NewServer(mcpserver.Deps{
				TMDB:      tmdbClient,
				Jikan:     jikanClient,
				ImageBase: cfg.TMDB.ImageBaseURL,
			}, logger)
			return srv.ServeStdio(cmd.Context())
		},
	}
}
