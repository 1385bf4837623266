// Package plan turns a purge-category selection into an ordered list of
// removal actions and executes them against the docker backend.
package plan

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/blackwell-systems/dockprune/internal/docker"
)

// Category identifies one kind of removable docker resource.
type Category int

const (
	StoppedContainers Category = iota
	DanglingImages
	AllImages
	UnusedVolumes
	AllVolumes
	CustomNetworks
	BuildCache
)

func (c Category) String() string {
	switch c {
	case StoppedContainers:
		return "stopped containers"
	case DanglingImages:
		return "dangling images"
	case AllImages:
		return "all images"
	case UnusedVolumes:
		return "unused volumes"
	case AllVolumes:
		return "all volumes"
	case CustomNetworks:
		return "custom networks"
	case BuildCache:
		return "build cache"
	}
	return "unknown"
}

// Item is a purge candidate shown to the operator: a category plus the
// count and size it represented at discovery time.
type Item struct {
	Category Category
	Label    string
	Count    int
	Size     uint64
}

// executionOrder is the fixed order actions run in. Containers go
// before the images they reference; the rest keeps output reproducible.
var executionOrder = []Category{
	StoppedContainers,
	AllImages,
	DanglingImages,
	AllVolumes,
	UnusedVolumes,
	CustomNetworks,
	BuildCache,
}

// Candidates derives the purge items to offer from a usage snapshot and
// the resource listings. A category with nothing to remove is omitted
// entirely and can never be selected.
func Candidates(du docker.DiskUsage, containers []docker.Container, images []docker.Image, volumes []docker.Volume, networks []docker.Network) []Item {
	var items []Item

	stopped := 0
	for _, c := range containers {
		if !c.IsRunning() {
			stopped++
		}
	}
	if stopped > 0 {
		items = append(items, Item{
			Category: StoppedContainers,
			Label:    fmt.Sprintf("Stopped containers (%d)", stopped),
			Count:    stopped,
			Size:     du.Containers.Reclaimable,
		})
	}

	if du.Images.Unused() > 0 || du.Images.Reclaimable > 0 {
		items = append(items, Item{
			Category: DanglingImages,
			Label: fmt.Sprintf("Dangling images (%d, %s)",
				du.Images.Unused(), humanize.Bytes(du.Images.Reclaimable)),
			Count: du.Images.Unused(),
			Size:  du.Images.Reclaimable,
		})
	}

	if len(images) > 0 {
		items = append(items, Item{
			Category: AllImages,
			Label: fmt.Sprintf("ALL images (%d, %s)",
				len(images), humanize.Bytes(du.Images.Size)),
			Count: len(images),
			Size:  du.Images.Size,
		})
	}

	if du.Volumes.Unused() > 0 || du.Volumes.Reclaimable > 0 {
		items = append(items, Item{
			Category: UnusedVolumes,
			Label: fmt.Sprintf("Unused volumes (%d, %s)",
				du.Volumes.Unused(), humanize.Bytes(du.Volumes.Reclaimable)),
			Count: du.Volumes.Unused(),
			Size:  du.Volumes.Reclaimable,
		})
	}

	if len(volumes) > 0 {
		items = append(items, Item{
			Category: AllVolumes,
			Label: fmt.Sprintf("ALL volumes (%d, %s)",
				len(volumes), humanize.Bytes(du.Volumes.Size)),
			Count: len(volumes),
			Size:  du.Volumes.Size,
		})
	}

	custom := 0
	for _, n := range networks {
		if !n.IsDefault() {
			custom++
		}
	}
	if custom > 0 {
		items = append(items, Item{
			Category: CustomNetworks,
			Label:    fmt.Sprintf("Custom networks (%d)", custom),
			Count:    custom,
		})
	}

	if du.BuildCache.Size > 0 {
		items = append(items, Item{
			Category: BuildCache,
			Label:    fmt.Sprintf("Build cache (%s)", humanize.Bytes(du.BuildCache.Size)),
			Count:    du.BuildCache.Count,
			Size:     du.BuildCache.Size,
		})
	}

	return items
}

// Build resolves a selection against the offered candidates into the
// ordered action list.
//
// Selecting both an aggressive category and its narrow counterpart
// (AllImages + DanglingImages, AllVolumes + UnusedVolumes) emits only
// the aggressive action; the removal is never performed twice. An empty
// selection yields an empty plan.
func Build(candidates []Item, selected map[Category]bool) []Item {
	if len(selected) == 0 {
		return nil
	}

	byCategory := make(map[Category]Item, len(candidates))
	for _, it := range candidates {
		byCategory[it.Category] = it
	}

	if selected[AllImages] {
		delete(byCategory, DanglingImages)
	}
	if selected[AllVolumes] {
		delete(byCategory, UnusedVolumes)
	}

	var actions []Item
	for _, cat := range executionOrder {
		if !selected[cat] {
			continue
		}
		if it, ok := byCategory[cat]; ok {
			actions = append(actions, it)
		}
	}
	return actions
}
