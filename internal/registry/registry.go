// Package registry provides a global registry for demo factories.
// Demos register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-bounce/internal/core"
)

// Demo is the interface every animation demo implements.
// Demos contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, frame pacing and terminal output.
type Demo interface {
	// ID returns a unique identifier for this demo (e.g., "balls").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset builds a fresh simulation for the given runtime config.
	// Returns configuration errors without leaving a partial simulation.
	Reset(cfg core.RuntimeConfig) error

	// Step advances the simulation by one frame unless paused.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current demo state.
	State() core.DemoState
}

// DemoInfo contains metadata about a registered demo.
type DemoInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a demo.
type Factory func() Demo

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a demo factory to the registry.
// Panics if a demo with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: demo %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered demos, sorted by ID.
func List() []DemoInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]DemoInfo, 0, len(factories))
	for id := range factories {
		result = append(result, DemoInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new demo by its ID.
func Create(id string) (Demo, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown demo %q", id)
	}

	return f(), nil
}

// Exists checks if a demo with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
