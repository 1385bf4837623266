package plan

import "fmt"

// Backend is the narrow surface of the docker client the executor
// needs. Keeping it small lets tests run against a fake.
type Backend interface {
	PruneContainers() error
	PruneImages(all bool) error
	PruneVolumes() error
	RemoveAllVolumes() error
	PruneNetworks() error
	PruneBuildCache(all bool) error
}

// Result is the outcome of one purge action.
type Result struct {
	Item Item
	Err  error
}

// Executor runs purge actions one at a time against the backend.
type Executor struct {
	backend Backend
}

// NewExecutor returns an Executor bound to the given backend.
func NewExecutor(b Backend) *Executor {
	return &Executor{backend: b}
}

// Execute runs every action independently and collects per-action
// outcomes. A failing action is recorded and the remaining actions
// still run: reclaiming most of the space beats reclaiming none.
func (e *Executor) Execute(actions []Item) []Result {
	results := make([]Result, 0, len(actions))
	for _, it := range actions {
		results = append(results, Result{Item: it, Err: e.apply(it)})
	}
	return results
}

func (e *Executor) apply(it Item) error {
	switch it.Category {
	case StoppedContainers:
		return e.backend.PruneContainers()
	case DanglingImages:
		return e.backend.PruneImages(false)
	case AllImages:
		return e.backend.PruneImages(true)
	case UnusedVolumes:
		return e.backend.PruneVolumes()
	case AllVolumes:
		return e.backend.RemoveAllVolumes()
	case CustomNetworks:
		return e.backend.PruneNetworks()
	case BuildCache:
		return e.backend.PruneBuildCache(true)
	}
	return fmt.Errorf("unknown purge category %d", it.Category)
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
