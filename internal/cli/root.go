// Package cli defines Cobra command definitions for the navalha CLI.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/navalha-dev/navalha/internal/api"
	"github.com/navalha-dev/navalha/internal/config"
	"github.com/navalha-dev/navalha/internal/log"
	"github.com/navalha-dev/navalha/internal/tui"
	"github.com/navalha-dev/navalha/internal/tui/app"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "navalha",
	Short: "Terminal client for the Navalha barbershop API",
	Long: `Navalha is a terminal client for managing a barbershop:
appointments, clients and services, backed by the Navalha server API.
Run without arguments to open the interactive interface.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsTTY() {
			return cmd.Help()
		}

		cfg, client, err := buildClient()
		if err != nil {
			return err
		}

		logger, err := log.NewLogger(configHome())
		if err != nil {
			// The log is best-effort; the app runs without it.
			logger = nil
		}

		return tui.Run(app.New(cfg, client, logger))
	},
}

// configHome is where .navalha/ lives: the user's home directory, or
// the working directory when home cannot be determined.
func configHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}

// buildClient loads the configuration and constructs the API gateway.
func buildClient() (*config.Config, *api.Client, error) {
	cfg := config.Load(configHome())
	timeout := time.Duration(cfg.Server.TimeoutSeconds) * time.Second
	client, err := api.NewClient(cfg.Server.BaseURL, timeout)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid server address %q: %w", cfg.Server.BaseURL, err)
	}
	return cfg, client, nil
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(configCmd)
}
