// Package registry provides a global registry of playable levels.
// Level packages register themselves in init() functions, allowing the
// platform to list and start levels without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/mode-runner/internal/games/runner"
)

// LevelInfo contains metadata about a registered level.
type LevelInfo struct {
	ID   string
	Name string
}

// Factory produces a validated level.
// Levels are immutable, so a factory may return the same instance every time.
type Factory func() (*runner.Level, error)

var (
	factories = make(map[string]Factory)
	names     = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a level factory to the registry.
// Typically called from an init() function.
// Panics if the ID is already registered or the factory fails.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: level %q already registered", id))
	}

	l, err := f()
	if err != nil {
		panic(fmt.Sprintf("registry: level %q: %v", id, err))
	}

	factories[id] = f
	names[id] = l.Name
}

// List returns information about all registered levels, sorted by ID.
func List() []LevelInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]LevelInfo, 0, len(factories))
	for id := range factories {
		result = append(result, LevelInfo{
			ID:   id,
			Name: names[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create returns the level registered under id.
func Create(id string) (*runner.Level, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown level %q", id)
	}

	l, err := f()
	if err != nil {
		return nil, fmt.Errorf("registry: level %q: %w", id, err)
	}
	return l, nil
}

// Exists checks if a level with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
