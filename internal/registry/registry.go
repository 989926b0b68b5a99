// Package registry provides a global registry of maze generators.
// Generator packages register themselves in init() functions, so the CLI
// can list and instantiate them by name without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/candy-maze/internal/maze"
)

// Factory creates a generator seeded for deterministic output.
type Factory func(seed uint64) maze.Generator

// Info describes a registered generator.
type Info struct {
	ID    string
	Title string
}

type entry struct {
	title   string
	factory Factory
}

var (
	entries = make(map[string]entry)
	mu      sync.RWMutex
)

// Register adds a generator factory to the registry.
// Panics if a generator with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: generator %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns all registered generators, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(entries))
	for id, e := range entries {
		result = append(result, Info{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates the generator registered under id.
func Create(id string, seed uint64) (maze.Generator, error) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown generator %q", id)
	}
	return e.factory(seed), nil
}

// Exists checks if a generator with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
