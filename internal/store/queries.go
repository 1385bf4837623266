package store

import (
	"fmt"
	"time"
)

// RecordRun inserts a run and its actions in one transaction and
// returns the new run ID.
func (s *Store) RecordRun(run Run) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	startedAt := run.StartedAt
	if startedAt.IsZero() {
		startedAt = time.Now()
	}

	res, err := tx.Exec(
		`INSERT INTO runs (command, started_at, dry_run, bytes_freed) VALUES (?, ?, ?, ?)`,
		run.Command, startedAt, run.DryRun, run.BytesFreed,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get run id: %w", err)
	}

	for _, a := range run.Actions {
		if _, err := tx.Exec(
			`INSERT INTO run_actions (run_id, label, error) VALUES (?, ?, ?)`,
			id, a.Label, a.Error,
		); err != nil {
			return 0, fmt.Errorf("failed to insert action: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit run: %w", err)
	}
	return id, nil
}

// ListRuns returns the most recent runs, newest first, with their
// actions attached. limit <= 0 means no limit.
func (s *Store) ListRuns(limit int) ([]Run, error) {
	query := `SELECT id, command, started_at, dry_run, bytes_freed FROM runs ORDER BY started_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.ID, &r.Command, &r.StartedAt, &r.DryRun, &r.BytesFreed); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate runs: %w", err)
	}

	for i := range runs {
		actions, err := s.listActions(runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Actions = actions
	}
	return runs, nil
}

func (s *Store) listActions(runID int64) ([]Action, error) {
	rows, err := s.db.Query(
		`SELECT run_id, label, error FROM run_actions WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query actions: %w", err)
	}
	defer rows.Close()

	var actions []Action
	for rows.Next() {
		var a Action
		if err := rows.Scan(&a.RunID, &a.Label, &a.Error); err != nil {
			return nil, fmt.Errorf("failed to scan action: %w", err)
		}
		actions = append(actions, a)
	}
	return actions, rows.Err()
}
