package store

import (
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestRecordAndListRuns(t *testing.T) {
	s := openTestStore(t)

	id, err := s.RecordRun(Run{
		Command:    "purge",
		StartedAt:  time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		BytesFreed: 1_200_000_000,
		Actions: []Action{
			{Label: "Stopped containers (3)"},
			{Label: "Dangling images (2, 1.2 GB)", Error: "image in use"},
		},
	})
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if id == 0 {
		t.Error("expected non-zero run id")
	}

	runs, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}

	r := runs[0]
	if r.Command != "purge" || r.BytesFreed != 1_200_000_000 || r.DryRun {
		t.Errorf("unexpected run: %+v", r)
	}
	if len(r.Actions) != 2 {
		t.Fatalf("got %d actions, want 2", len(r.Actions))
	}
	if r.Actions[0].Error != "" {
		t.Errorf("first action should have no error, got %q", r.Actions[0].Error)
	}
	if r.Actions[1].Error != "image in use" {
		t.Errorf("second action error = %q, want %q", r.Actions[1].Error, "image in use")
	}
}

func TestRecordRun_DryRunPersists(t *testing.T) {
	s := openTestStore(t)

	if _, err := s.RecordRun(Run{
		Command:   "purge",
		StartedAt: time.Date(2026, 8, 2, 9, 0, 0, 0, time.UTC),
		DryRun:    true,
	}); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	runs, err := s.ListRuns(0)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("got %d runs, want 1", len(runs))
	}
	if !runs[0].DryRun {
		t.Error("dry-run flag not persisted")
	}
	if runs[0].BytesFreed != 0 {
		t.Errorf("dry run freed %d bytes, want 0", runs[0].BytesFreed)
	}
}

func TestListRuns_NewestFirstAndLimit(t *testing.T) {
	s := openTestStore(t)

	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	for i, cmd := range []string{"purge", "nuclear", "system purge"} {
		if _, err := s.RecordRun(Run{Command: cmd, StartedAt: base.Add(time.Duration(i) * time.Hour)}); err != nil {
			t.Fatalf("RecordRun: %v", err)
		}
	}

	runs, err := s.ListRuns(2)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].Command != "system purge" || runs[1].Command != "nuclear" {
		t.Errorf("wrong order: %s, %s", runs[0].Command, runs[1].Command)
	}
}

func TestListRuns_Empty(t *testing.T) {
	s := openTestStore(t)
	runs, err := s.ListRuns(10)
	if err != nil {
		t.Fatalf("ListRuns: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("got %d runs, want 0", len(runs))
	}
}
