// Package loader reads rules index tables and army data files.
package loader

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/owbrules/internal/pathfilter"
	"github.com/jokarl/owbrules/internal/types"
)

// LoadDir loads labels from every file in dir that passes filter. Files are
// returned sorted by their path relative to dir.
func LoadDir(dir string, filter *pathfilter.Filter, keys []string, logger hclog.Logger) ([]types.LabelFile, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	// Check if directory exists
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("directory does not exist: %s", dir)
		}
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	if filter == nil {
		filter = pathfilter.DefaultFilter()
	}
	paths, err := filter.FilterFiles(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to filter files: %w", err)
	}
	sort.Strings(paths)

	files := make([]types.LabelFile, 0, len(paths))
	for _, rel := range paths {
		labels, err := LoadLabels(filepath.Join(dir, rel), keys, logger)
		if err != nil {
			return nil, err
		}
		files = append(files, types.LabelFile{Path: rel, Labels: labels})
	}

	logger.Info("loaded army data directory", "dir", dir, "files", len(files))
	return files, nil
}
