package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/dockprune/internal/docker"
	"github.com/blackwell-systems/dockprune/internal/output"
	"github.com/blackwell-systems/dockprune/internal/plan"
	"github.com/blackwell-systems/dockprune/internal/prompt"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Interactively choose which docker resources to purge",
	Long: `Show every purgeable category with its count and size, let you pick a
subset, and remove only what you picked.

Selecting "ALL images" together with "Dangling images" removes images
once, aggressively; the same applies to volumes. With --force every
offered category is selected.`,
	RunE: runSelect,
}

func init() {
	RootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, args []string) error {
	client := docker.NewClient()
	if err := requireDocker(client); err != nil {
		return err
	}

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

	candidates := plan.Candidates(before, containers, images, volumes, networks)
	if len(candidates) == 0 {
		output.Success("Nothing to clean up. Docker is already tidy.")
		return nil
	}

	selected := make(map[plan.Category]bool)
	if flagForce {
		for _, c := range candidates {
			selected[c.Category] = true
		}
	} else {
		labels := make([]string, len(candidates))
		for i, c := range candidates {
			labels[i] = c.Label
		}
		picked, err := prompt.MultiSelect("Select items to purge:", labels)
		if err != nil {
			return err
		}
		for _, i := range picked {
			selected[candidates[i].Category] = true
		}
	}

	if len(selected) == 0 {
		output.Warning("Nothing selected. Aborting.")
		return nil
	}

	actions := plan.Build(candidates, selected)

	fmt.Println(output.Bold("Selected for removal:"))
	for _, a := range actions {
		output.Info(a.Label)
	}
	fmt.Println()

	if flagDryRun {
		output.Warning("Dry run - no changes made")
		recordRun("select", 0, nil)
		return nil
	}

	results := plan.NewExecutor(client).Execute(actions)
	for _, r := range results {
		if r.Err != nil {
			output.Error("%s: %v", r.Item.Label, r.Err)
		} else {
			output.Success(r.Item.Label)
		}
	}

	after, err := measureUsage(client)
	if err != nil {
		return err
	}

	output.SpaceSaved(before.TotalSize(), after.TotalSize())
	recordRun("select", docker.SpaceFreed(before, after), actionsFromResults(results))

	if failed := plan.Failed(results); len(failed) > 0 {
		output.Warning("%d of %d actions failed; space above reflects what succeeded", len(failed), len(results))
	}
	return nil
}
