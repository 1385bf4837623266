package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/dockprune/internal/docker"
	"github.com/blackwell-systems/dockprune/internal/output"
	"github.com/blackwell-systems/dockprune/internal/prompt"
	"github.com/blackwell-systems/dockprune/internal/store"
)

var nuclearCmd = &cobra.Command{
	Use:   "nuclear",
	Short: "Remove ALL docker resources",
	Long: `Remove every container (stopped first if running), every image, every
volume, every custom network and the entire build cache. Docker ends up
empty, as if freshly installed.`,
	RunE: runNuclear,
}

func init() {
	RootCmd.AddCommand(nuclearCmd)
}

func runNuclear(cmd *cobra.Command, args []string) error {
	client := docker.NewClient()
	if err := requireDocker(client); err != nil {
		return err
	}

	if flagDryRun {
		output.DryRunBanner()
	}

	output.Warning("This removes EVERYTHING docker holds, including running containers and named volumes.")
	fmt.Println()

	before, err := measureUsage(client)
	if err != nil {
		return err
	}
	containers, err := client.ListContainers(true)
	if err != nil {
		return err
	}
	images, err := client.ListImages()
	if err != nil {
		return err
	}
	volumes, err := client.ListVolumes()
	if err != nil {
		return err
	}
	networks, err := client.ListNetworks()
	if err != nil {
		return err
	}

	custom := 0
	running := 0
	for _, n := range networks {
		if !n.IsDefault() {
			custom++
		}
	}
	for _, c := range containers {
		if c.IsRunning() {
			running++
		}
	}

	fmt.Println("This will remove:")
	output.Info("%d containers (%d running)", len(containers), running)
	output.Info("%d images", len(images))
	output.Info("%d volumes", len(volumes))
	output.Info("%d custom networks", custom)
	output.Info("All build cache")
	fmt.Println()
	fmt.Printf("Total space to free: %s\n\n", output.Green(output.FormatBytes(before.TotalSize())))

	if flagDryRun {
		output.Warning("Dry run - no changes made")
		recordRun("nuclear", 0, nil)
		return nil
	}

	if !flagForce {
		ok, err := prompt.Confirm("Are you absolutely sure?")
		if err != nil {
			return err
		}
		if !ok {
			output.Warning("Aborted - no changes made")
			return nil
		}
	}
	fmt.Println()

	var actions []store.Action
	step := func(condition bool, running, done string, fn func() error) {
		if !condition {
			return
		}
		output.Info(running)
		a := store.Action{Label: done}
		if err := fn(); err != nil {
			a.Error = err.Error()
			output.Error("%v", err)
		} else {
			output.Success(done)
		}
		actions = append(actions, a)
	}

	// Running containers must be stopped before removal; this is the
	// only flow that stops anything.
	step(running > 0,
		fmt.Sprintf("Stopping %d running containers...", running),
		"Containers stopped", client.StopRunningContainers)
	step(len(containers) > 0,
		fmt.Sprintf("Removing %d containers...", len(containers)),
		"Containers removed", client.RemoveAllContainers)
	step(len(images) > 0,
		fmt.Sprintf("Removing %d images...", len(images)),
		"Images removed", client.RemoveAllImages)
	step(len(volumes) > 0,
		fmt.Sprintf("Removing %d volumes...", len(volumes)),
		"Volumes removed", client.RemoveAllVolumes)
	step(custom > 0,
		fmt.Sprintf("Removing %d custom networks...", custom),
		"Networks removed", client.RemoveCustomNetworks)
	step(true,
		"Clearing all build cache...",
		"Build cache cleared", func() error { return client.PruneBuildCache(true) })

	after, err := measureUsage(client)
	if err != nil {
		return err
	}

	output.SpaceSaved(before.TotalSize(), after.TotalSize())
	recordRun("nuclear", docker.SpaceFreed(before, after), actions)

	fmt.Println()
	output.Success("Nuclear cleanup complete. Docker is now empty.")
	return nil
}
