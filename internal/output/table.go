package output

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/dockprune/internal/docker"
	"github.com/blackwell-systems/dockprune/internal/store"
	"github.com/blackwell-systems/dockprune/internal/syscache"
)

// RenderUsageTable renders the per-category docker disk usage report.
func RenderUsageTable(du docker.DiskUsage) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%-14s %10s %14s %7s %7s\n",
		"Type", "Size", "Reclaimable", "Total", "Active"))
	sb.WriteString(strings.Repeat("─", 56))
	sb.WriteString("\n")

	rows := []struct {
		name  string
		usage docker.Usage
	}{
		{"Images", du.Images},
		{"Containers", du.Containers},
		{"Volumes", du.Volumes},
		{"Build Cache", du.BuildCache},
	}
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-14s %10s %14s %7d %7d\n",
			r.name,
			FormatBytes(r.usage.Size),
			reclaimableCell(r.usage),
			r.usage.Count,
			r.usage.Active))
	}

	sb.WriteString(strings.Repeat("─", 56))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-14s %10s %14s\n",
		"Total",
		FormatBytes(du.TotalSize()),
		FormatBytes(du.TotalReclaimable())))

	return sb.String()
}

// reclaimableCell formats a reclaimable size with its share of the
// category total, e.g. "1.2 GB (50%)".
func reclaimableCell(u docker.Usage) string {
	if u.Size == 0 {
		return FormatBytes(u.Reclaimable)
	}
	pct := u.Reclaimable * 100 / u.Size
	return fmt.Sprintf("%s (%d%%)", FormatBytes(u.Reclaimable), pct)
}

// RenderCacheTable renders the developer cache catalog.
func RenderCacheTable(entries []syscache.Entry) string {
	if len(entries) == 0 {
		return "No purgeable caches found.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-20s %10s  %s\n", "Cache", "Size", "Path"))
	sb.WriteString(strings.Repeat("─", 72))
	sb.WriteString("\n")

	var total uint64
	for _, e := range entries {
		total += e.Size
		sb.WriteString(fmt.Sprintf("%-20s %10s  %s\n",
			truncate(e.Name, 20), FormatBytes(e.Size), e.Path))
	}

	sb.WriteString(strings.Repeat("─", 72))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("%-20s %10s\n", "Total purgeable", FormatBytes(total)))

	return sb.String()
}

// RenderHistoryTable renders past purge runs, newest first.
func RenderHistoryTable(runs []store.Run) string {
	if len(runs) == 0 {
		return "No purge history recorded yet.\n"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%-17s %-14s %10s  %s\n", "When", "Command", "Freed", "Actions"))
	sb.WriteString(strings.Repeat("─", 70))
	sb.WriteString("\n")

	for _, r := range runs {
		cmd := r.Command
		if r.DryRun {
			cmd += " (dry)"
		}
		sb.WriteString(fmt.Sprintf("%-17s %-14s %10s  %s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04"),
			truncate(cmd, 14),
			FormatBytes(uint64(r.BytesFreed)),
			summarizeActions(r.Actions)))
	}
	return sb.String()
}

func summarizeActions(actions []store.Action) string {
	if len(actions) == 0 {
		return "-"
	}
	failed := 0
	for _, a := range actions {
		if a.Error != "" {
			failed++
		}
	}
	if failed == 0 {
		return fmt.Sprintf("%d ok", len(actions))
	}
	return fmt.Sprintf("%d ok, %d failed", len(actions)-failed, failed)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
