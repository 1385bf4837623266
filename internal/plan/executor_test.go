package plan

import (
	"errors"
	"testing"
)

// fakeBackend records calls and fails on demand.
type fakeBackend struct {
	calls []string
	fail  map[string]error
}

func (f *fakeBackend) record(name string) error {
	f.calls = append(f.calls, name)
	return f.fail[name]
}

func (f *fakeBackend) PruneContainers() error { return f.record("PruneContainers") }
func (f *fakeBackend) PruneImages(all bool) error {
	if all {
		return f.record("PruneImages(all)")
	}
	return f.record("PruneImages")
}
func (f *fakeBackend) PruneVolumes() error     { return f.record("PruneVolumes") }
func (f *fakeBackend) RemoveAllVolumes() error { return f.record("RemoveAllVolumes") }
func (f *fakeBackend) PruneNetworks() error    { return f.record("PruneNetworks") }
func (f *fakeBackend) PruneBuildCache(all bool) error {
	if all {
		return f.record("PruneBuildCache(all)")
	}
	return f.record("PruneBuildCache")
}

func TestExecute_CallMapping(t *testing.T) {
	fake := &fakeBackend{}
	exec := NewExecutor(fake)

	actions := []Item{
		{Category: StoppedContainers},
		{Category: AllImages},
		{Category: UnusedVolumes},
		{Category: CustomNetworks},
		{Category: BuildCache},
	}
	results := exec.Execute(actions)

	want := []string{"PruneContainers", "PruneImages(all)", "PruneVolumes", "PruneNetworks", "PruneBuildCache(all)"}
	if len(fake.calls) != len(want) {
		t.Fatalf("made %d backend calls, want %d: %v", len(fake.calls), len(want), fake.calls)
	}
	for i, name := range want {
		if fake.calls[i] != name {
			t.Errorf("call %d = %s, want %s", i, fake.calls[i], name)
		}
	}
	for _, r := range results {
		if r.Err != nil {
			t.Errorf("unexpected failure for %v: %v", r.Item.Category, r.Err)
		}
	}
}

func TestExecute_DanglingVsAll(t *testing.T) {
	fake := &fakeBackend{}
	NewExecutor(fake).Execute([]Item{{Category: DanglingImages}, {Category: AllVolumes}})

	if len(fake.calls) != 2 || fake.calls[0] != "PruneImages" || fake.calls[1] != "RemoveAllVolumes" {
		t.Errorf("calls = %v, want [PruneImages RemoveAllVolumes]", fake.calls)
	}
}

func TestExecute_PartialFailure(t *testing.T) {
	boom := errors.New("volume in use")
	fake := &fakeBackend{fail: map[string]error{"PruneVolumes": boom}}
	exec := NewExecutor(fake)

	results := exec.Execute([]Item{
		{Category: StoppedContainers},
		{Category: UnusedVolumes},
		{Category: BuildCache},
	})

	// The failing volume prune must not stop the build cache action.
	if len(fake.calls) != 3 {
		t.Fatalf("made %d backend calls, want 3: %v", len(fake.calls), fake.calls)
	}

	failed := Failed(results)
	if len(failed) != 1 {
		t.Fatalf("got %d failures, want 1", len(failed))
	}
	if failed[0].Item.Category != UnusedVolumes || !errors.Is(failed[0].Err, boom) {
		t.Errorf("wrong failure recorded: %+v", failed[0])
	}
}

func TestExecute_Empty(t *testing.T) {
	fake := &fakeBackend{}
	results := NewExecutor(fake).Execute(nil)

	if len(results) != 0 {
		t.Errorf("got %d results, want 0", len(results))
	}
	if len(fake.calls) != 0 {
		t.Errorf("empty plan must make zero backend calls, got %v", fake.calls)
	}
}
