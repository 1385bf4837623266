package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/dockprune/internal/config"
	"github.com/blackwell-systems/dockprune/internal/diskfree"
	"github.com/blackwell-systems/dockprune/internal/output"
	"github.com/blackwell-systems/dockprune/internal/prompt"
	"github.com/blackwell-systems/dockprune/internal/store"
	"github.com/blackwell-systems/dockprune/internal/syscache"
)

var systemCmd = &cobra.Command{
	Use:   "system",
	Short: "Manage developer caches (Homebrew, npm, Xcode, ...)",
	Long: `Inventory well-known package-manager and build-tool caches under your
home directory and purge them.

Cache names listed in ` + "`<config>/exclude`" + ` (one per line) are shown in
the inventory but never offered for purging.`,
	RunE: runSystemList,
}

var systemListCmd = &cobra.Command{
	Use:   "list",
	Short: "List purgeable developer caches",
	RunE:  runSystemList,
}

var systemPurgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Purge all developer caches",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSystemPurge(false)
	},
}

var systemSelectCmd = &cobra.Command{
	Use:   "select",
	Short: "Interactively select developer caches to purge",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSystemPurge(true)
	},
}

func init() {
	systemCmd.AddCommand(systemListCmd)
	systemCmd.AddCommand(systemPurgeCmd)
	systemCmd.AddCommand(systemSelectCmd)
	RootCmd.AddCommand(systemCmd)
}

func runSystemList(cmd *cobra.Command, args []string) error {
	entries := syscache.Discover()
	if len(entries) == 0 {
		output.Success("No purgeable caches found. System is clean.")
		return nil
	}

	fmt.Println(output.Bold("Developer Caches"))
	fmt.Println()
	fmt.Print(output.RenderCacheTable(entries))
	fmt.Println()

	if stats, err := diskfree.ForPath("/"); err == nil {
		fmt.Printf("%s %s free of %s\n",
			output.Bold("Disk:"),
			output.FormatBytes(stats.Free),
			output.FormatBytes(stats.Total))
		fmt.Println()
	}

	fmt.Printf("Run %s to pick caches to purge\n", output.Bold("dockprune system select"))
	fmt.Printf("Run %s to purge all of them\n", output.Bold("dockprune system purge"))
	return nil
}

// purgeableCaches applies the exclusion config to the discovered
// entries. A broken config file degrades to "nothing excluded". The
// inventory shown by `system list` is unfiltered; exclusions only keep
// caches out of purge and select candidates.
func purgeableCaches() []syscache.Entry {
	entries := syscache.Discover()

	dir, err := config.Dir()
	if err != nil {
		return entries
	}
	ex, err := config.LoadExclusions(dir)
	if err != nil {
		return entries
	}
	return filterExcluded(entries, ex)
}

// filterExcluded drops the entries whose names the operator excluded.
func filterExcluded(entries []syscache.Entry, ex *config.Exclusions) []syscache.Entry {
	if ex == nil || ex.Len() == 0 {
		return entries
	}
	var kept []syscache.Entry
	for _, e := range entries {
		if ex.Excluded(e.Name) {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

func runSystemPurge(interactive bool) error {
	caches := purgeableCaches()
	if len(caches) == 0 {
		output.Success("No purgeable caches found. System is clean.")
		return nil
	}

	if flagDryRun {
		output.DryRunBanner()
	}

	var total uint64
	for _, c := range caches {
		total += c.Size
	}

	var selected []syscache.Entry
	switch {
	case flagForce:
		selected = caches
	case interactive:
		labels := make([]string, len(caches))
		for i, c := range caches {
			labels[i] = fmt.Sprintf("%s (%s)", c.Name, output.FormatBytes(c.Size))
		}
		picked, err := prompt.MultiSelect("Select caches to purge:", labels)
		if err != nil {
			return err
		}
		for _, i := range picked {
			selected = append(selected, caches[i])
		}
	case flagDryRun:
		selected = caches
	default:
		ok, err := prompt.Confirm(fmt.Sprintf(
			"Purge all %d caches (%s)? This cannot be undone",
			len(caches), output.FormatBytes(total)))
		if err != nil {
			return err
		}
		if !ok {
			output.Warning("Aborted")
			return nil
		}
		selected = caches
	}

	if len(selected) == 0 {
		output.Warning("Nothing selected. Aborting.")
		return nil
	}

	fmt.Println()
	fmt.Println(output.Bold("Selected for removal:"))
	for _, c := range selected {
		output.Info("%s (%s) - %s", c.Name, output.FormatBytes(c.Size), c.Description)
	}
	fmt.Println()

	command := "system purge"
	if interactive {
		command = "system select"
	}

	if flagDryRun {
		output.Warning("Dry run - no changes made")
		recordRun(command, 0, nil)
		return nil
	}

	var freed uint64
	var actions []store.Action
	for _, c := range selected {
		output.Info("Removing %s...", c.Name)
		a := store.Action{Label: fmt.Sprintf("%s (%s)", c.Name, output.FormatBytes(c.Size))}
		n, err := syscache.Purge(c)
		if err != nil {
			a.Error = err.Error()
			output.Error("Failed to clear %s: %v", c.Name, err)
		} else {
			freed += n
			output.Success("%s cleared", c.Name)
		}
		actions = append(actions, a)
	}

	if freed > 0 {
		fmt.Println()
		fmt.Printf("%s %s\n", output.Bold("Space freed:"), output.Green(output.FormatBytes(freed)))
	}

	recordRun(command, freed, actions)
	return nil
}
