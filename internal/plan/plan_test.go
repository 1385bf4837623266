package plan

import (
	"testing"

	"github.com/blackwell-systems/dockprune/internal/docker"
)

func sampleUsage() docker.DiskUsage {
	return docker.DiskUsage{
		Images:     docker.Usage{Size: 2_000_000_000, Reclaimable: 1_200_000_000, Count: 10, Active: 2},
		Containers: docker.Usage{Size: 500_000_000, Reclaimable: 400_000_000, Count: 3, Active: 1},
		Volumes:    docker.Usage{Size: 1_000_000_000, Reclaimable: 250_000_000, Count: 4, Active: 1},
		BuildCache: docker.Usage{Size: 750_000_000, Reclaimable: 750_000_000, Count: 12},
	}
}

func TestCandidates_AllCategories(t *testing.T) {
	items := Candidates(sampleUsage(),
		[]docker.Container{{ID: "a", State: "exited"}, {ID: "b", State: "running"}},
		[]docker.Image{{ID: "i1"}, {ID: "i2"}},
		[]docker.Volume{{Name: "v1"}},
		[]docker.Network{{ID: "n1", Name: "bridge"}, {ID: "n2", Name: "my-net"}},
	)

	want := []Category{StoppedContainers, DanglingImages, AllImages, UnusedVolumes, AllVolumes, CustomNetworks, BuildCache}
	if len(items) != len(want) {
		t.Fatalf("got %d candidates, want %d", len(items), len(want))
	}
	for i, cat := range want {
		if items[i].Category != cat {
			t.Errorf("candidate %d = %v, want %v", i, items[i].Category, cat)
		}
	}
}

func TestCandidates_EmptySystem(t *testing.T) {
	items := Candidates(docker.DiskUsage{}, nil, nil, nil, nil)
	if len(items) != 0 {
		t.Errorf("empty system should offer no candidates, got %d", len(items))
	}
}

func TestCandidates_DefaultNetworksOnly(t *testing.T) {
	items := Candidates(docker.DiskUsage{}, nil, nil, nil, []docker.Network{
		{ID: "1", Name: "bridge"},
		{ID: "2", Name: "host"},
		{ID: "3", Name: "none"},
	})
	for _, it := range items {
		if it.Category == CustomNetworks {
			t.Error("default networks must not be offered for removal")
		}
	}
}

func TestBuild_ConflictResolution(t *testing.T) {
	candidates := []Item{
		{Category: DanglingImages},
		{Category: AllImages},
		{Category: UnusedVolumes},
		{Category: AllVolumes},
	}

	actions := Build(candidates, map[Category]bool{
		DanglingImages: true,
		AllImages:      true,
	})
	if len(actions) != 1 {
		t.Fatalf("got %d actions, want 1", len(actions))
	}
	if actions[0].Category != AllImages {
		t.Errorf("action = %v, want AllImages", actions[0].Category)
	}

	actions = Build(candidates, map[Category]bool{
		UnusedVolumes: true,
		AllVolumes:    true,
	})
	if len(actions) != 1 || actions[0].Category != AllVolumes {
		t.Errorf("volume conflict resolution failed: %v", actions)
	}
}

func TestBuild_Ordering(t *testing.T) {
	candidates := []Item{
		{Category: BuildCache},
		{Category: AllImages},
		{Category: StoppedContainers},
		{Category: CustomNetworks},
		{Category: UnusedVolumes},
	}

	actions := Build(candidates, map[Category]bool{
		BuildCache:        true,
		StoppedContainers: true,
		AllImages:         true,
	})

	want := []Category{StoppedContainers, AllImages, BuildCache}
	if len(actions) != len(want) {
		t.Fatalf("got %d actions, want %d", len(actions), len(want))
	}
	for i, cat := range want {
		if actions[i].Category != cat {
			t.Errorf("action %d = %v, want %v", i, actions[i].Category, cat)
		}
	}
}

func TestBuild_EmptySelection(t *testing.T) {
	candidates := []Item{{Category: AllImages}}
	if actions := Build(candidates, nil); actions != nil {
		t.Errorf("empty selection should build an empty plan, got %v", actions)
	}
	if actions := Build(candidates, map[Category]bool{}); actions != nil {
		t.Errorf("empty selection should build an empty plan, got %v", actions)
	}
}

func TestBuild_SelectionNotOffered(t *testing.T) {
	// A category that was never offered cannot sneak into the plan.
	actions := Build([]Item{{Category: BuildCache}}, map[Category]bool{
		AllImages:  true,
		BuildCache: true,
	})
	if len(actions) != 1 || actions[0].Category != BuildCache {
		t.Errorf("got %v, want only BuildCache", actions)
	}
}
