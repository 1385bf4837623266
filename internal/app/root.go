package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	flagForce  bool
	flagDryRun bool
	flagDBPath string

	// RootCmd is the root command for dockprune.
	RootCmd = &cobra.Command{
		Use:   "dockprune",
		Short: "Reclaim disk space from docker and developer caches",
		Long: `dockprune inventories docker images, containers, volumes, networks and
build cache, plus well-known developer caches (Homebrew, npm, Xcode, ...),
and removes what you no longer need.

Destructive commands always show what they are about to remove and ask
for confirmation unless --force is given. --dry-run reports without
touching anything.

Examples:
  # Show docker disk usage and what is reclaimable
  dockprune

  # Safe cleanup: stopped containers, dangling images, unused volumes
  dockprune purge

  # Pick categories interactively
  dockprune select

  # Remove everything docker holds
  dockprune nuclear

  # Developer caches on this machine
  dockprune system
  dockprune system purge

  # What past runs freed
  dockprune history`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runList,
	}
)

func init() {
	RootCmd.PersistentFlags().BoolVarP(&flagForce, "force", "f", false, "skip confirmation prompts")
	RootCmd.PersistentFlags().BoolVar(&flagDryRun, "dry-run", false, "show what would be removed without making changes")
	RootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "history database path (default: ~/.dockprune/history.db)")

	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command.
func Execute() error {
	return RootCmd.Execute()
}

// historyDBPath returns the history database path, using the flag value
// or the default under the user's home.
func historyDBPath() (string, error) {
	if flagDBPath != "" {
		return flagDBPath, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	dir := filepath.Join(home, ".dockprune")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create dockprune directory: %w", err)
	}
	return filepath.Join(dir, "history.db"), nil
}
