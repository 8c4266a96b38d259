package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fsnotify/fsnotify"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rayrc/keywhiz/pkg/aclfile"
	"github.com/rayrc/keywhiz/pkg/config"
	"github.com/rayrc/keywhiz/pkg/db"
)

// aclWatchCmd represents the acl watch command
var aclWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch an ACL file and re-apply it when it changes",
	Long: `Watch an ACL file and re-apply it when it changes.

Each time the watched file is written, its contents are parsed and applied
the same way "acl apply" does. A file that fails to parse or apply is
logged and skipped; the previous state stays in place.

Example:
  keywhizctl acl watch /run/keywhiz/acl.yml
  keywhizctl acl watch /run/keywhiz/acl.yml --prune`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		filename := args[0]
		prune, _ := cmd.Flags().GetBool("prune")

		if err := watchACLFile(filename, prune); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch ACL file: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	aclCmd.AddCommand(aclWatchCmd)
	aclWatchCmd.Flags().Bool("prune", false, "remove memberships and grants absent from the file")
}

func watchACLFile(filename string, prune bool) error {
	cfg := config.Get()
	configureLogging(cfg)

	database, err := db.Connect(db.Config{})
	if err != nil {
		return err
	}
	loader := aclfile.NewLoader(aclfile.NewGormStore(database), cfg.DefaultCreator)

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	log.Infof("Watching %s for ACL changes", filename)

	// Handle signals for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				log.Info("File modified, re-applying ACL file...")

				result, err := loader.LoadFromFile(filename, prune)
				if err != nil {
					log.Errorf("Error applying ACL file: %v", err)
					continue
				}
				log.Infof("Applied %s: %d change(s)", filename, len(result.Changes))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Errorf("Watcher error: %v", err)
		case <-sigChan:
			log.Info("Shutting down...")
			return nil
		}
	}
}
