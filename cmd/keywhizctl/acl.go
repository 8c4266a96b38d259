package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// aclCmd represents the acl command
var aclCmd = &cobra.Command{
	Use:   "acl",
	Short: "Manage access control state",
	Long:  `Manage Keywhiz access control state from declarative ACL files.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'acl' requires a subcommand (apply, watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(aclCmd)
}
