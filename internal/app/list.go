package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/dockprune/internal/diskfree"
	"github.com/blackwell-systems/dockprune/internal/docker"
	"github.com/blackwell-systems/dockprune/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show docker disk usage and reclaimable space",
	RunE:  runList,
}

func init() {
	RootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	client := docker.NewClient()
	if err := requireDocker(client); err != nil {
		return err
	}

	du, err := measureUsage(client)
	if err != nil {
		return err
	}

	fmt.Println(output.Bold("Docker Disk Usage"))
	fmt.Println()
	fmt.Print(output.RenderUsageTable(du))
	fmt.Println()

	if stats, err := diskfree.ForPath("/"); err == nil {
		fmt.Printf("%s %s free of %s\n",
			output.Bold("Disk:"),
			output.FormatBytes(stats.Free),
			output.FormatBytes(stats.Total))
		fmt.Println()
	}

	fmt.Printf("Run %s to remove unused resources\n", output.Bold("dockprune purge"))
	fmt.Printf("Run %s to pick categories interactively\n", output.Bold("dockprune select"))
	return nil
}
