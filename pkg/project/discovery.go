// Package project orchestrates the file-level pipeline around the engine:
// discovering design briefs in a workspace, generating every output format
// for each brief through a worker pool, and watching briefs for changes.
package project

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultInclude matches design briefs anywhere under the root.
var DefaultInclude = []string{"**/*.insight.json"}

// DefaultExclude skips the usual dependency and VCS directories.
var DefaultExclude = []string{
	"**/node_modules/**",
	"**/.git/**",
	"**/dist/**",
}

// DiscoverBriefs walks rootDir applying include/exclude globs and returns a
// sorted slice of absolute brief paths, for deterministic build order.
func DiscoverBriefs(rootDir string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = DefaultInclude
	}
	for _, pattern := range append(append([]string{}, include...), exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid glob pattern: %s", pattern)
		}
	}

	absRoot, err := filepath.Abs(rootDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve root path: %w", err)
	}

	var briefs []string
	err = filepath.WalkDir(absRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil // Keep walking past unreadable entries.
		}

		relPath, err := filepath.Rel(absRoot, path)
		if err != nil {
			relPath = path
		}
		relPath = filepath.ToSlash(relPath)

		for _, pattern := range exclude {
			if matched, _ := doublestar.PathMatch(pattern, relPath); matched {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
		}

		if d.IsDir() {
			return nil
		}

		for _, pattern := range include {
			if matched, _ := doublestar.PathMatch(pattern, relPath); matched {
				briefs = append(briefs, path)
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(briefs)
	return briefs, nil
}

// matchesBrief reports whether one path (relative to the watch root)
// matches the include globs and none of the excludes. Used by the watcher
// to filter events.
func matchesBrief(relPath string, include, exclude []string) bool {
	if len(include) == 0 {
		include = DefaultInclude
	}
	relPath = filepath.ToSlash(relPath)
	for _, pattern := range exclude {
		if matched, _ := doublestar.PathMatch(pattern, relPath); matched {
			return false
		}
	}
	for _, pattern := range include {
		if matched, _ := doublestar.PathMatch(pattern, relPath); matched {
			return true
		}
	}
	return false
}
