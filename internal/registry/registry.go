// Package registry provides a global registry of board variants.
// Variants register themselves in init() functions, so the CLI and the
// TUI can list and start them without hardcoded tables.
package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Variant describes the construction parameters of one kind of game.
type Variant struct {
	// ID is a unique identifier (e.g., "classic", "mini").
	// Used for CLI arguments and score storage.
	ID string

	// Title is a human-readable name for display.
	Title string

	// Dimension is the grid size N of an NxN board.
	Dimension int

	// Threshold is the tile value that wins the game.
	Threshold int

	// Spawn4 is the probability that an inserted tile is a 4 rather than a 2.
	Spawn4 float64

	// Order controls the position of the variant in menus.
	Order int
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants sorted by Order, then ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Order != result[j].Order {
			return result[i].Order < result[j].Order
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Get returns the variant with the given ID.
// Returns an error if the ID is not registered.
func Get(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
