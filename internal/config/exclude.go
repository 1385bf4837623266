// Package config provides configuration file parsing for dockprune.
package config

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// Dir returns the dockprune config directory, respecting
// XDG_CONFIG_HOME. Defaults to ~/.config/dockprune.
func Dir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "dockprune"), nil
}

// Exclusions is the set of cache names the operator has opted out of
// purging. Lookup is by the catalog's display name.
type Exclusions struct {
	names map[string]bool
}

// Excluded reports whether the named cache must be kept.
func (e *Exclusions) Excluded(name string) bool {
	return e.names[name]
}

// Len returns the number of excluded cache names.
func (e *Exclusions) Len() int {
	return len(e.names)
}

// LoadExclusions reads the exclude file at {dir}/exclude, one cache
// name per line. If the file does not exist, an empty set is returned
// without an error. Blank lines and "#" comments are skipped.
func LoadExclusions(dir string) (*Exclusions, error) {
	ex := &Exclusions{names: make(map[string]bool)}

	f, err := os.Open(filepath.Join(dir, "exclude"))
	if err != nil {
		if os.IsNotExist(err) {
			return ex, nil
		}
		return ex, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ex.names[line] = true
	}

	if err := scanner.Err(); err != nil {
		return ex, err
	}
	return ex, nil
}
