package app

import (
	"time"

	"github.com/blackwell-systems/dockprune/internal/docker"
	"github.com/blackwell-systems/dockprune/internal/output"
	"github.com/blackwell-systems/dockprune/internal/plan"
	"github.com/blackwell-systems/dockprune/internal/store"
)

// measureUsage takes a disk usage snapshot with a spinner, since
// `docker system df` can take several seconds on large installations.
func measureUsage(client *docker.Client) (docker.DiskUsage, error) {
	sp := output.NewSpinner("Measuring docker disk usage...")
	sp.Start()
	du, err := client.DiskUsage()
	sp.Stop()
	return du, err
}

// requireDocker returns ErrUnavailable when the daemon cannot be
// reached. Commands that mutate docker state call this first so no
// partial action is taken against a dead daemon.
func requireDocker(client *docker.Client) error {
	if !client.IsAvailable() {
		return docker.ErrUnavailable
	}
	return nil
}

// recordRun appends a run to the history ledger. Failures here are
// warnings, never errors: the reclamation already happened and must
// not be reported as failed because bookkeeping didn't stick.
func recordRun(command string, freed uint64, actions []store.Action) {
	path, err := historyDBPath()
	if err != nil {
		output.Warning("history not recorded: %v", err)
		return
	}

	s, err := store.New(path)
	if err != nil {
		output.Warning("history not recorded: %v", err)
		return
	}
	defer s.Close()

	run := store.Run{
		Command:    command,
		StartedAt:  time.Now(),
		DryRun:     flagDryRun,
		BytesFreed: int64(freed),
		Actions:    actions,
	}
	if _, err := s.RecordRun(run); err != nil {
		output.Warning("history not recorded: %v", err)
	}
}

// actionsFromResults converts executor results into history actions.
func actionsFromResults(results []plan.Result) []store.Action {
	actions := make([]store.Action, 0, len(results))
	for _, r := range results {
		a := store.Action{Label: r.Item.Label}
		if r.Err != nil {
			a.Error = r.Err.Error()
		}
		actions = append(actions, a)
	}
	return actions
}
