package main

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/Harshitv21/Anime-Movie-API/internal/config"
	"github.com/Harshitv21/Anime-Movie-API/internal/httpclient"
	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/jikan"
	"github.com/Harshitv21/Anime-Movie-API/internal/metadata/tmdb"
)

// Lipgloss styles used across commands.
var (
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))  // red
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
	styleDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))  // gray

	styleHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("5")).
			MarginBottom(1)
)

// loadConfig loads and validates the configuration file.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// initClients creates the two upstream provider clients over a shared
// HTTP wrapper.
func initClients(cfg *config.Config, logger *slog.Logger) (*tmdb.Client, *jikan.Client) {
	hc := httpclient.New(httpclient.DefaultConfig(), logger)
	tmdbClient := tmdb.New(cfg.TMDB.BaseURL, cfg.TMDB.AccessToken, hc)
	jikanClient := jikan.New(cfg.Jikan.BaseURL, hc)
	return tmdbClient, jikanClient
}
