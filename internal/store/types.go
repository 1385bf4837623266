package store

import "time"

// Run is one recorded purge invocation.
type Run struct {
	ID         int64
	Command    string
	StartedAt  time.Time
	DryRun     bool
	BytesFreed int64
	Actions    []Action
}

// Action is one removal action performed within a run. Error is empty
// when the action succeeded.
type Action struct {
	RunID int64
	Label string
	Error string
}
