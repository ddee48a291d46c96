// Package levels provides level loading for the runner: a directory loader,
// the built-in levels and a file watcher for hot reload.
// This package depends on runner but runner does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/mode-runner/internal/games/runner"
	"github.com/vovakirdan/mode-runner/internal/games/runner/levels/formats"
	"github.com/vovakirdan/mode-runner/internal/registry"
)

// Loader handles loading levels from a directory.
type Loader struct {
	Root string
}

// NewLoader creates a new level loader.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively scans and loads all level files.
// Invalid files are skipped. Returns levels sorted by ID.
func (l *Loader) LoadAll() ([]*runner.Level, error) {
	var levels []*runner.Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		level, err := LoadFile(path)
		if err != nil {
			return nil
		}

		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("levels: walking directory %s: %w", l.Root, err)
	}

	sort.Slice(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// RegisterDir loads every valid level under dir and registers the ones whose
// IDs are not taken yet. A missing directory registers nothing.
// Returns the IDs that were added.
func RegisterDir(dir string) ([]string, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	lvls, err := NewLoader(dir).LoadAll()
	if err != nil {
		return nil, err
	}

	var added []string
	for _, lvl := range lvls {
		if registry.Exists(lvl.ID) {
			continue
		}
		registry.Register(lvl.ID, func() (*runner.Level, error) { return lvl, nil })
		added = append(added, lvl.ID)
	}
	return added, nil
}

// LoadFile loads and validates a single level file.
func LoadFile(path string) (*runner.Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: reading file %s: %w", path, err)
	}

	level, err := parseByExtension(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("levels: parsing file %s: %w", path, err)
	}
	return level, nil
}

func isSupportedExtension(ext string) bool {
	return slices.Contains(formats.FormatExtensions(), strings.ToLower(ext))
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (*runner.Level, error) {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
