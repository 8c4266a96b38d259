package main

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"github.com/rayrc/keywhiz/pkg/db"
)

// dbCmd represents the db command
var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the database",
	Long:  `Manage the database schema and migrations.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'db' requires a subcommand (migrate, ping)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// dbPingCmd represents the db ping command
var dbPingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check database connectivity",
	Long: `Check that the database configured through DATABASE_URL is reachable.

Example:
  keywhizctl db ping`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := pingDatabase(); err != nil {
			fmt.Fprintln(os.Stderr, "Database ping failed:", err)
			os.Exit(1)
		}
		fmt.Println("Database is reachable")
	},
}

func init() {
	rootCmd.AddCommand(dbCmd)
	dbCmd.AddCommand(dbPingCmd)
}

func pingDatabase() error {
	dbURL := db.URL()
	if dbURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	conn, err := sql.Open("postgres", dbURL)
	if err != nil {
		return fmt.Errorf("failed to open connection: %w", err)
	}
	defer func() { _ = conn.Close() }()

	return conn.Ping()
}
