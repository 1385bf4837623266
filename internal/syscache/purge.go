package syscache

import (
	"fmt"
	"os"
	"path/filepath"
)

// Purge deletes the entry's contents and returns the size captured at
// discovery time. The returned figure is an estimate: writes between
// discovery and purge are not re-measured.
//
// An entry that no longer exists is a no-op returning 0, so re-running
// after an interrupt is always safe.
func Purge(e Entry) (uint64, error) {
	info, err := os.Stat(e.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to stat %s: %w", e.Path, err)
	}

	if !info.IsDir() {
		if err := os.Remove(e.Path); err != nil {
			return 0, fmt.Errorf("failed to remove %s: %w", e.Path, err)
		}
		return e.Size, nil
	}

	if e.Name == protectedRoot {
		// The OS refuses to remove this directory itself. Empty it and
		// leave the root in place.
		children, err := os.ReadDir(e.Path)
		if err != nil {
			return 0, fmt.Errorf("failed to read %s: %w", e.Path, err)
		}
		for _, child := range children {
			childPath := filepath.Join(e.Path, child.Name())
			if err := os.RemoveAll(childPath); err != nil {
				return 0, fmt.Errorf("failed to remove %s: %w", childPath, err)
			}
		}
		return e.Size, nil
	}

	if err := os.RemoveAll(e.Path); err != nil {
		return 0, fmt.Errorf("failed to remove %s: %w", e.Path, err)
	}

	// Some tools expect their cache directory to exist. Recreate it
	// best-effort; the ones that don't care tolerate its absence.
	_ = os.MkdirAll(e.Path, 0o755)

	return e.Size, nil
}
