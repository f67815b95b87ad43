package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const starterConfig = `server:
  port: 8080

tmdb:
  access_token: "your-tmdb-read-access-token"

app:
  log_level: info
`

// newConfigCmd returns the "config" subcommand group for configuration management.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration management",
	}

	cmd.AddCommand(newConfigValidateCmd(), newConfigInitCmd(), newConfigShowCmd())
	return cmd
}

// newConfigValidateCmd returns the "config validate" subcommand that checks config file validity.
func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			_, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			fmt.Println(styleSuccess.Render("✓ Configuration is valid"))
			return nil
		},
	}
}

// newConfigInitCmd returns the "config init" subcommand that writes a starter config file.
func newConfigInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := os.Stat(configPath); err == nil {
				return fmt.Errorf("config file already exists at %s", configPath)
			}
			if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
				return fmt.Errorf("create config directory: %w", err)
			}
			if err := os.WriteFile(configPath, []byte(starterConfig), 0o600); err != nil {
				return fmt.Errorf("write config file: %w", err)
			}
			fmt.Println(styleSuccess.Render("✓ Wrote " + configPath))
			return nil
		},
	}
}

// newConfigShowCmd returns the "config show" subcommand that prints the
// loaded configuration with the access token masked.
func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show the effective configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}

			fmt.Println(styleHeader.Render("Configuration"))
			fmt.Printf("server.port           %d\n", cfg.Server.Port)
			fmt.Printf("tmdb.access_token     %s\n", maskToken(cfg.TMDB.AccessToken))
			fmt.Printf("tmdb.base_url         %s\n", cfg.TMDB.BaseURL)
			fmt.Printf("tmdb.image_base_url   %s\n", cfg.TMDB.ImageBaseURL)
			fmt.Printf("jikan.base_url        %s\n", cfg.Jikan.BaseURL)
			fmt.Printf("app.log_level         %s\n", cfg.App.LogLevel)
			return nil
		},
	}
}

// maskToken hides all but the last four characters of a token.
func maskToken(token string) string {
	if len(token) <= 4 {
		return "****"
	}
	return "****" + token[len(token)-4:]
}
