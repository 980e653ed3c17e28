// Package registry provides a global registry of playable board presets.
// Built-in presets register themselves in init(); presets loaded from the
// configuration file are added or replaced at startup, so front ends can
// list and instantiate boards without knowing where they came from.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/ndsweeper/internal/core"
)

// Game is the interface front ends drive.
// Implementations contain no Bubble Tea code; the platform handles input
// mapping, timing and rendering.
type Game interface {
	// ID returns the preset identifier (e.g., "classic-beginner", "cube").
	// Used for CLI commands and result storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset starts a fresh board. Called once at start and again on restart.
	// The RuntimeConfig provides screen dimensions and the placement seed.
	Reset(cfg core.RuntimeConfig)

	// Step applies this tick's actions and advances the clock.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state.
	State() core.GameState
}

// GameInfo contains metadata about a registered preset.
type GameInfo struct {
	ID          string
	Title       string
	Description string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// Describer is implemented by games that can summarise their board,
// e.g. "9x9x3, 24 mines".
type Describer interface {
	Describe() string
}

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a factory to the registry.
// Panics if a preset with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: preset %q already registered", id))
	}
	set(id, f)
}

// Set adds a factory or replaces an existing one with the same ID.
func Set(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	set(id, f)
}

func set(id string, f Factory) {
	factories[id] = f

	// Metadata comes from a throwaway instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if d, ok := g.(Describer); ok {
		info.Description = d.Describe()
	}
	infos[id] = info
}

// List returns information about all registered presets, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown preset %q", id)
	}

	return f(), nil
}

// Exists checks if a preset with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
