// Package registry provides a global registry of game mode factories.
// Modes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is the interface every mode implements. Games contain pure logic;
// the platform handles input mapping, timing and presentation.
type Game interface {
	// ID returns a unique identifier for this mode (e.g., "flappy").
	// Used for CLI commands and the high-score key.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset applies the runtime configuration and starts a fresh session.
	Reset(cfg core.RuntimeConfig)

	// Activate handles one discrete input event (key press, click, touch).
	Activate()

	// Tick advances the simulation by dt seconds and reports the resulting state
	// and the events emitted since the previous tick.
	Tick(dt float64) core.StepResult

	// Render draws the current state into the provided screen buffer.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a mode from the loaded world configuration.
type Factory func(cfg config.FlappyConfig) Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a mode factory to the registry.
// Panics if a mode with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	titles[id] = f(config.DefaultFlappyConfig()).Title()
}

// List returns information about all registered modes, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a mode by its ID.
func Create(id string, cfg config.FlappyConfig) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(cfg), nil
}

// Exists checks if a mode with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
