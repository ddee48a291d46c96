package levels

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/vovakirdan/mode-runner/internal/games/runner"
	"github.com/vovakirdan/mode-runner/internal/games/runner/levels/formats"
	"github.com/vovakirdan/mode-runner/internal/registry"
)

//go:embed builtin/*.yaml
var builtinFS embed.FS

// DefaultLevelID is the level started when none is named.
const DefaultLevelID = "proving-grounds"

func init() {
	lvls, err := Builtin()
	if err != nil {
		panic(err)
	}
	for _, l := range lvls {
		registry.Register(l.ID, func() (*runner.Level, error) { return l, nil })
	}
}

// Builtin parses the levels embedded in the binary, sorted by ID.
func Builtin() ([]*runner.Level, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin")
	if err != nil {
		return nil, fmt.Errorf("levels: reading builtin: %w", err)
	}

	var lvls []*runner.Level
	for _, e := range entries {
		name := path.Join("builtin", e.Name())
		data, err := builtinFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("levels: reading %s: %w", name, err)
		}
		l, err := formats.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("levels: parsing %s: %w", name, err)
		}
		lvls = append(lvls, l)
	}

	sort.Slice(lvls, func(i, j int) bool {
		return lvls[i].ID < lvls[j].ID
	})
	return lvls, nil
}
