package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rayrc/keywhiz/pkg/aclfile"
	"github.com/rayrc/keywhiz/pkg/config"
	"github.com/rayrc/keywhiz/pkg/db"
)

// aclApplyCmd represents the acl apply command
var aclApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a declarative ACL file",
	Long: `Apply a declarative ACL file.

This command parses the ACL YAML and converges database state towards it:
missing clients, groups and secrets are created, and declared memberships
and grants are put in place. Existing state that matches the file is left
untouched, so applying the same file twice is a no-op.

With --prune, memberships and grants present in the database but absent
from the file are removed. Entities are never pruned.

Example:
  keywhizctl acl apply --file acl.yml
  keywhizctl acl apply --file acl.yml --prune`,
	Run: func(cmd *cobra.Command, args []string) {
		file, _ := cmd.Flags().GetString("file")
		prune, _ := cmd.Flags().GetBool("prune")

		result, err := applyACLFile(file, prune)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to apply ACL file: %v\n", err)
			os.Exit(1)
		}

		// Output result as JSON
		output, _ := json.MarshalIndent(result, "", "  ")
		fmt.Println(string(output))
	},
}

func init() {
	aclCmd.AddCommand(aclApplyCmd)
	aclApplyCmd.Flags().StringP("file", "f", "", "ACL file to apply (default: acl_file from configuration)")
	aclApplyCmd.Flags().Bool("prune", false, "remove memberships and grants absent from the file")
}

func applyACLFile(path string, prune bool) (*aclfile.Result, error) {
	cfg := config.Get()
	if path == "" {
		path = cfg.ACLFile
	}
	if path == "" {
		return nil, fmt.Errorf("no ACL file given: pass --file or set acl_file in configuration")
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	loader := aclfile.NewLoader(aclfile.NewGormStore(database), cfg.DefaultCreator)
	result, err := loader.LoadFromFile(path, prune)
	if err != nil {
		return nil, err
	}

	fmt.Printf("Applied %s: %d change(s)\n", path, len(result.Changes))
	return result, nil
}
