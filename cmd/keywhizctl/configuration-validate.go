package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rayrc/keywhiz/pkg/config"
)

// configurationValidateCmd represents the configuration validate command
var configurationValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the current state of the configuration",
	Long: `Validate the current state of the configuration file and environment.

Example:
  keywhizctl configuration validate`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := validateConfiguration(); err != nil {
			fmt.Fprintf(os.Stderr, "Configuration validation failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	configurationCmd.AddCommand(configurationValidateCmd)
}

func validateConfiguration() error {
	fmt.Println("Validating configuration...")

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	fmt.Printf("Config file: %s\n", cfg.ConfigFilePath())

	if err := cfg.Validate(); err != nil {
		return err
	}

	if os.Getenv("DATABASE_URL") == "" {
		return fmt.Errorf("DATABASE_URL is not set")
	}

	fmt.Println("Configuration is valid.")
	return nil
}
