package main

import (
	"fmt"
	"os"

	"github.com/HashiniGamage/CareerNexusModel/internal/config"
	"github.com/HashiniGamage/CareerNexusModel/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for forecasts, exports, and user accounts.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	// Precedence: explicit flag, then config file, then flag default. The
	// DATABASE_URL env var wins over the config file.
	cfg := config.Config{DatabaseURL: os.Getenv("DATABASE_URL")}
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	cfg = cfg.MergeWithDefaults(fileConfig)
	if cfg.Port == 0 {
		cfg.Port = servePort
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database URL is required; set DATABASE_URL or database_url in the config file")
	}

	srv, err := server.New(server.Config{
		Port:        cfg.Port,
		DatabaseURL: cfg.DatabaseURL,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
