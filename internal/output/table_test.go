package output

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/dockprune/internal/docker"
	"github.com/blackwell-systems/dockprune/internal/store"
	"github.com/blackwell-systems/dockprune/internal/syscache"
)

func TestRenderUsageTable(t *testing.T) {
	du := docker.DiskUsage{
		Images:     docker.Usage{Size: 2_400_000_000, Reclaimable: 1_200_000_000, Count: 10, Active: 2},
		Containers: docker.Usage{Size: 500_000_000, Reclaimable: 500_000_000, Count: 3, Active: 1},
	}
	got := RenderUsageTable(du)

	for _, want := range []string{"Images", "Containers", "Volumes", "Build Cache", "Total", "2.4 GB", "(50%)"} {
		if !strings.Contains(got, want) {
			t.Errorf("usage table missing %q:\n%s", want, got)
		}
	}
}

func TestRenderCacheTable(t *testing.T) {
	entries := []syscache.Entry{
		{Name: "Gradle", Path: "/home/u/.gradle/caches", Size: 100_000_000},
		{Name: "npm", Path: "/home/u/.npm/_cacache", Size: 10_000_000},
	}
	got := RenderCacheTable(entries)

	for _, want := range []string{"Gradle", "npm", "100 MB", "10 MB", "Total purgeable", "110 MB"} {
		if !strings.Contains(got, want) {
			t.Errorf("cache table missing %q:\n%s", want, got)
		}
	}
}

func TestRenderCacheTable_Empty(t *testing.T) {
	if got := RenderCacheTable(nil); !strings.Contains(got, "No purgeable caches") {
		t.Errorf("unexpected empty-table output: %q", got)
	}
}

func TestRenderHistoryTable(t *testing.T) {
	runs := []store.Run{
		{
			Command:    "purge",
			StartedAt:  time.Date(2026, 8, 20, 9, 30, 0, 0, time.UTC),
			BytesFreed: 1_500_000_000,
			Actions: []store.Action{
				{Label: "a"},
				{Label: "b", Error: "boom"},
			},
		},
	}
	got := RenderHistoryTable(runs)

	for _, want := range []string{"purge", "1.5 GB", "1 ok, 1 failed"} {
		if !strings.Contains(got, want) {
			t.Errorf("history table missing %q:\n%s", want, got)
		}
	}
}

func TestRenderHistoryTable_MarksDryRuns(t *testing.T) {
	runs := []store.Run{
		{
			Command:   "nuclear",
			StartedAt: time.Date(2026, 8, 21, 10, 0, 0, 0, time.UTC),
			DryRun:    true,
		},
	}
	got := RenderHistoryTable(runs)

	if !strings.Contains(got, "nuclear (dry)") {
		t.Errorf("history table should mark dry runs:\n%s", got)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate("a-very-long-name", 10); got != "a-very-..." {
		t.Errorf("truncate long = %q", got)
	}
}

func TestSpinner_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	s := NewSpinner("Measuring disk usage...")
	s.SetWriter(&buf)
	s.Start()
	s.Stop()

	if got := buf.String(); got != "Measuring disk usage...\n" {
		t.Errorf("non-TTY spinner output = %q", got)
	}
}
