// Package syscache inventories and purges well-known developer cache
// directories under the user's home.
package syscache

import (
	"os"
	"path/filepath"
	"sort"
)

// Entry is one cache location with its size captured at discovery time.
type Entry struct {
	Name        string
	Path        string
	Description string
	Size        uint64
	Exists      bool
}

// protectedRoot names the entry whose top-level directory must survive
// a purge. macOS refuses removal of ~/.Trash itself, so only its
// contents are deleted.
const protectedRoot = "Trash"

type location struct {
	name        string
	rel         string
	description string
}

// catalog is the fixed list of locations probed during discovery, with
// paths relative to the home directory.
var catalog = []location{
	{"Homebrew", "Library/Caches/Homebrew", "Homebrew package downloads and cache"},
	{"npm", ".npm/_cacache", "Node.js npm package cache"},
	{"Yarn", "Library/Caches/Yarn", "Yarn package cache"},
	{"pnpm", "Library/pnpm/store", "pnpm package store"},
	{"Cargo Registry", ".cargo/registry", "Rust crates registry cache"},
	{"Cargo Git", ".cargo/git", "Rust git dependencies cache"},
	{"pip", "Library/Caches/pip", "Python pip package cache"},
	{"Xcode DerivedData", "Library/Developer/Xcode/DerivedData", "Xcode build artifacts and indexes"},
	{"Xcode Archives", "Library/Developer/Xcode/Archives", "Xcode archived builds"},
	{"CocoaPods", "Library/Caches/CocoaPods", "CocoaPods spec and pod cache"},
	{"Gradle", ".gradle/caches", "Gradle build cache"},
	{"Maven", ".m2/repository", "Maven local repository"},
	{"Go Modules", "go/pkg/mod/cache", "Go module cache"},
	{"Composer", ".composer/cache", "PHP Composer cache"},
	{protectedRoot, ".Trash", "Files in Trash"},
}

// Discover probes the catalog and returns the entries that exist and
// hold data, sorted by size descending. If the home directory cannot
// be determined the catalog is empty; that is not an error, there is
// simply nothing to report.
func Discover() []Entry {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	return discoverIn(home)
}

func discoverIn(home string) []Entry {
	var entries []Entry
	for _, loc := range catalog {
		path := filepath.Join(home, loc.rel)
		e := Entry{Name: loc.name, Path: path, Description: loc.description}
		if _, err := os.Stat(path); err == nil {
			e.Exists = true
			e.Size = DirSize(path)
		}
		if e.Exists && e.Size > 0 {
			entries = append(entries, e)
		}
	}

	// Ties keep catalog order.
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Size > entries[j].Size
	})
	return entries
}

// DirSize returns the recursive size of path in bytes: a file counts
// its length, a directory the sum of its children. Anything that fails
// to stat or read contributes zero; partial information is preferred
// over aborting the scan.
func DirSize(path string) uint64 {
	info, err := os.Stat(path)
	if err != nil {
		return 0
	}
	if !info.IsDir() {
		return uint64(info.Size())
	}

	children, err := os.ReadDir(path)
	if err != nil {
		return 0
	}

	var size uint64
	for _, child := range children {
		childPath := filepath.Join(path, child.Name())
		if child.IsDir() {
			size += DirSize(childPath)
			continue
		}
		ci, err := child.Info()
		if err != nil {
			continue
		}
		size += uint64(ci.Size())
	}
	return size
}
