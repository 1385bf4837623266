package docker

// Resource records decoded from `docker ... --format '{{json .}}'` output.
// Field names match the CLI's template context, not the REST API.

// Image is one row of `docker images`.
type Image struct {
	ID         string `json:"ID"`
	Repository string `json:"Repository"`
	Tag        string `json:"Tag"`
	Size       string `json:"Size"`
	CreatedAt  string `json:"CreatedAt"`
}

// Container is one row of `docker ps`.
type Container struct {
	ID     string `json:"ID"`
	Names  string `json:"Names"`
	Image  string `json:"Image"`
	State  string `json:"State"`
	Status string `json:"Status"`
	Size   string `json:"Size"`
}

// IsRunning reports whether the container state is "running". The CLI
// emits lower-case state names; the comparison is case-sensitive.
func (c Container) IsRunning() bool {
	return c.State == "running"
}

// Volume is one row of `docker volume ls`.
type Volume struct {
	Name       string `json:"Name"`
	Driver     string `json:"Driver"`
	Mountpoint string `json:"Mountpoint"`
}

// Network is one row of `docker network ls`.
type Network struct {
	ID     string `json:"ID"`
	Name   string `json:"Name"`
	Driver string `json:"Driver"`
	Scope  string `json:"Scope"`
}

// IsDefault reports whether this is one of the networks the daemon
// creates itself. Default networks cannot be removed.
func (n Network) IsDefault() bool {
	switch n.Name {
	case "bridge", "host", "none":
		return true
	}
	return false
}

// Usage is one category row of `docker system df`, with sizes already
// parsed into bytes.
type Usage struct {
	Size        uint64
	Reclaimable uint64
	Count       int
	Active      int
}

// Unused returns the number of inactive entries in the category,
// saturating at zero if the daemon reports more active than total.
func (u Usage) Unused() int {
	if u.Active >= u.Count {
		return 0
	}
	return u.Count - u.Active
}

// DiskUsage is a point-in-time snapshot of docker's disk consumption
// across all four categories. The zero value means "nothing reported":
// a category the daemon omitted stays all-zero rather than erroring.
//
// Snapshots are taken before and after every destructive operation and
// never mutated; space freed is the difference of two snapshots.
type DiskUsage struct {
	Images     Usage
	Containers Usage
	Volumes    Usage
	BuildCache Usage
}

// TotalSize is the sum of all category sizes.
func (d DiskUsage) TotalSize() uint64 {
	return d.Images.Size + d.Containers.Size + d.Volumes.Size + d.BuildCache.Size
}

// TotalReclaimable is the sum of all category reclaimable sizes.
func (d DiskUsage) TotalReclaimable() uint64 {
	return d.Images.Reclaimable + d.Containers.Reclaimable + d.Volumes.Reclaimable + d.BuildCache.Reclaimable
}

// SpaceFreed returns how much smaller the after snapshot is than the
// before snapshot, clamped at zero. Usage can legitimately grow during
// a purge if something else is pulling images concurrently.
func SpaceFreed(before, after DiskUsage) uint64 {
	b, a := before.TotalSize(), after.TotalSize()
	if a >= b {
		return 0
	}
	return b - a
}
