package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Harshitv21/Anime-Movie-API/internal/config"
)

// newStatusCmd returns the "status" subcommand that checks upstream
// provider reachability.
func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check upstream provider reachability",
		Long:  "Ping the TMDB and Jikan APIs and report whether each is reachable.",
		RunE: func(_ *cobra.Command, _ []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	logger := config.SetupLogger(cfg.App.LogLevel)
	tmdbClient, jikanClient := initClients(cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	fmt.Println(styleHeader.Render("Upstream providers"))

	if err := tmdbClient.Ping(ctx); err != nil {
		fmt.Printf("%s %s\n", styleError.Render("✗ TMDB"), styleDim.Render(err.Error()))
	} else {
		fmt.Println(styleSuccess.Render("✓ TMDB"))
	}

	if err := jikanClient.Ping(ctx); err != nil {
		fmt.Printf("%s %s\n", styleError.Render("✗ Jikan"), styleDim.Render(err.Error()))
	} else {
		fmt.Println(styleSuccess.Render("✓ Jikan"))
	}

	return nil
}
