package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/dockprune/internal/docker"
	"github.com/blackwell-systems/dockprune/internal/output"
	"github.com/blackwell-systems/dockprune/internal/prompt"
	"github.com/blackwell-systems/dockprune/internal/store"
)

var purgeCmd = &cobra.Command{
	Use:   "purge",
	Short: "Safely remove unused docker resources",
	Long: `Remove stopped containers, dangling images, unused volumes, unused
networks and unreferenced build cache. Running containers, tagged images
in use, and referenced volumes are untouched.`,
	RunE: runPurge,
}

func init() {
	RootCmd.AddCommand(purgeCmd)
}

// purgeStep is one prune invocation in the safe-cleanup sequence.
// Category purges act on already-stopped containers only; nothing is
// ever stopped here, unlike the nuclear flow.
type purgeStep struct {
	running string
	done    string
	fn      func() error
}

func runPurge(cmd *cobra.Command, args []string) error {
	client := docker.NewClient()
	if err := requireDocker(client); err != nil {
		return err
	}

	if flagDryRun {
		output.DryRunBanner()
	}

	before, err := measureUsage(client)
	if err != nil {
		return err
	}

	if before.TotalReclaimable() == 0 {
		output.Success("Nothing to clean up. Docker is already tidy.")
		return nil
	}

	fmt.Printf("Found %s of reclaimable space:\n\n", output.FormatBytes(before.TotalReclaimable()))
	if n := before.Images.Unused(); n > 0 {
		output.Info("%d dangling images (%s)", n, output.FormatBytes(before.Images.Reclaimable))
	}
	if n := before.Containers.Unused(); n > 0 {
		output.Info("%d stopped containers (%s)", n, output.FormatBytes(before.Containers.Reclaimable))
	}
	if n := before.Volumes.Unused(); n > 0 {
		output.Info("%d unused volumes (%s)", n, output.FormatBytes(before.Volumes.Reclaimable))
	}
	if before.BuildCache.Reclaimable > 0 {
		output.Info("Build cache (%s)", output.FormatBytes(before.BuildCache.Reclaimable))
	}
	fmt.Println()

	if flagDryRun {
		output.Warning("Dry run - no changes made")
		recordRun("purge", 0, nil)
		return nil
	}

	if !flagForce {
		ok, err := prompt.Confirm("Proceed with cleanup?")
		if err != nil {
			return err
		}
		if !ok {
			output.Warning("Aborted")
			return nil
		}
	}
	fmt.Println()

	steps := []purgeStep{
		{"Removing stopped containers...", "Containers cleaned", client.PruneContainers},
		{"Removing dangling images...", "Images cleaned", func() error { return client.PruneImages(false) }},
		{"Removing unused volumes...", "Volumes cleaned", client.PruneVolumes},
		{"Removing unused networks...", "Networks cleaned", client.PruneNetworks},
		{"Clearing build cache...", "Build cache cleared", func() error { return client.PruneBuildCache(false) }},
	}

	var actions []store.Action
	for _, step := range steps {
		output.Info(step.running)
		a := store.Action{Label: step.done}
		if err := step.fn(); err != nil {
			a.Error = err.Error()
			output.Error("%v", err)
		} else {
			output.Success(step.done)
		}
		actions = append(actions, a)
	}

	after, err := measureUsage(client)
	if err != nil {
		return err
	}

	output.SpaceSaved(before.TotalSize(), after.TotalSize())
	recordRun("purge", docker.SpaceFreed(before, after), actions)
	return nil
}
