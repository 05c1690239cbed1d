// Package pathfilter selects army data files with doublestar include and
// exclude patterns.
package pathfilter

import (
	"os"

	"github.com/bmatcuk/doublestar/v4"
)

// Filter holds the include and exclude patterns for file filtering
type Filter struct {
	include []string
	exclude []string
}

// New creates a new Filter with the given include and exclude patterns
func New(include, exclude []string) *Filter {
	return &Filter{
		include: include,
		exclude: exclude,
	}
}

// DefaultInclude and DefaultExclude select army JSON files and skip
// translation dumps and vendored packages.
var (
	DefaultInclude = []string{"**/*.json"}
	DefaultExclude = []string{"**/*-dump.json", "**/node_modules/**"}
)

// DefaultFilter returns a filter with default patterns
func DefaultFilter() *Filter {
	return New(DefaultInclude, DefaultExclude)
}

// Validate reports the first malformed pattern
func (f *Filter) Validate() error {
	for _, pattern := range append(append([]string{}, f.include...), f.exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return doublestar.ErrBadPattern
		}
	}
	return nil
}

// FilterFiles returns the files in dir that match an include pattern and no
// exclude pattern. Paths are relative to dir and use forward slashes.
func (f *Filter) FilterFiles(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range f.include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			excluded, err := f.excluded(match)
			if err != nil {
				return nil, err
			}
			if !excluded {
				result = append(result, match)
			}
		}
	}

	return result, nil
}

// MatchFile checks if a single file path matches the filter criteria
func (f *Filter) MatchFile(path string) (bool, error) {
	included := false
	for _, pattern := range f.include {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			included = true
			break
		}
	}

	if !included {
		return false, nil
	}

	excluded, err := f.excluded(path)
	if err != nil {
		return false, err
	}
	return !excluded, nil
}

func (f *Filter) excluded(path string) (bool, error) {
	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}
