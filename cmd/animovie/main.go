package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "1.0.0"

var configPath string

func main() {
	rootCmd := &cobra.Command{
		Use:   "animovie",
		Short: "HTTP gateway for movie, TV and anime metadata",
		Long: "Animovie is a thin HTTP gateway over the TMDB and Jikan APIs.\n" +
			"It exposes trending, popular, upcoming, search and image endpoints\n" +
			"for movies, TV shows and anime.",
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs/animovie.yaml", "path to configuration file")

	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true

	rootCmd.AddCommand(
		newVersionCmd(),
		newServeCmd(),
		newStatusCmd(),
		newConfigCmd(),
		newMCPServeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styleError.Render(err.Error()))
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("Animovie v%s\n", version)
		},
	}
}
