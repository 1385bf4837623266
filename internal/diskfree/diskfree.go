// Package diskfree reports the capacity of the filesystem backing a
// path, for the footer line on usage reports.
package diskfree

import (
	"fmt"

	"github.com/shirou/gopsutil/v4/disk"
)

// Stats is the capacity of one mounted filesystem.
type Stats struct {
	Total uint64
	Free  uint64
}

// ForPath returns capacity stats for the filesystem containing path.
func ForPath(path string) (Stats, error) {
	u, err := disk.Usage(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to stat filesystem for %s: %w", path, err)
	}
	return Stats{Total: u.Total, Free: u.Free}, nil
}
