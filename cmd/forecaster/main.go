// Package main provides the entry point for the career forecaster CLI and HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/HashiniGamage/CareerNexusModel/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	configPath string
	verbose    bool

	// fileConfig holds values from --config, used as defaults for flags the
	// user did not set. Zero-valued when no config file is given.
	fileConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "forecaster",
	Short: "Career demand forecaster",
	Long:  "Forecaster synthesizes 24-month job demand outlooks per industry and experience level, serves them over a REST API, and exports runs as CSV, model JSON, and a Streamlit script.",
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if configPath == "" {
			return nil
		}
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		fileConfig = *cfg
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a JSON config file supplying flag defaults")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Print detailed output")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
