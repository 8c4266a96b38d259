package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command all subcommands attach to
var rootCmd = &cobra.Command{
	Use:   "keywhizctl",
	Short: "Keywhiz secret distribution service",
	Long: `keywhizctl manages the Keywhiz secret distribution service.

Keywhiz stores secrets and controls which clients may retrieve them
through group membership: a client can read a secret when it shares at
least one group with it.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
