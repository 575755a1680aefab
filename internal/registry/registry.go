// Package registry provides a global registry for front-end factories.
// Front ends register themselves in init() functions, allowing the CLI
// to discover and start them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/paint-hit/internal/core"
	"github.com/vovakirdan/paint-hit/internal/game"
)

// Sound receives the events of every tick. The audio player implements it.
type Sound interface {
	Play(events []core.Event)
}

// Options is what a front end needs to run a local game.
type Options struct {
	Context game.Context
	Runtime core.RuntimeConfig
	Sound   Sound // May be nil
}

// Frontend drives a game machine: it owns the device loop, turns device
// input into InputFrames and rasterizes the machine's scenes.
type Frontend interface {
	// ID returns a unique identifier for this front end (e.g., "tui").
	// Used for the --frontend flag.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the player exits. It blocks.
	Run(opts Options) error
}

// Info contains metadata about a registered front end.
type Info struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a front end.
type Factory func() Frontend

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a front-end factory to the registry.
// Panics if a front end with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: front end %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered front ends, sorted by ID.
func List() []Info {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Info, 0, len(factories))
	for id := range factories {
		result = append(result, Info{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create instantiates a front end by its ID.
func Create(id string) (Frontend, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown front end %q", id)
	}
	return f(), nil
}

// Exists checks if a front end with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
