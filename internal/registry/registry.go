// Package registry provides a global registry for scene factories.
// Scenes register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/shipward/shipward/internal/core"
)

// Scene is the core interface every playable scene implements. Scenes
// contain pure simulation logic with no external dependencies
// (especially no Bubble Tea). The platform handles input mapping,
// timing, and terminal rendering.
type Scene interface {
	// ID returns a unique identifier for this scene (e.g., "voyage").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the scene state.
	// Called once at start and again when restarting after a loss.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one tick. dt is the measured
	// wall-clock seconds since the previous step; implementations
	// clamp it to absorb scheduler stalls. Input is abstracted to
	// platform-level actions plus pointer position and clicks.
	Step(in core.InputFrame, dt float64) core.StepResult

	// Render draws the current scene state into the provided screen
	// buffer. The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current scene state (score, game over, paused).
	State() core.GameState
}

// SceneInfo contains metadata about a registered scene.
type SceneInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a scene.
type Factory func() Scene

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a scene factory to the registry.
// Typically called from a scene's init() function.
// Panics if a scene with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: scene %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	s := f()
	titles[id] = s.Title()
}

// List returns information about all registered scenes, sorted by ID.
func List() []SceneInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]SceneInfo, 0, len(factories))
	for id := range factories {
		result = append(result, SceneInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new scene by its ID.
// Returns an error if the scene ID is not registered.
func Create(id string) (Scene, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown scene %q", id)
	}

	return f(), nil
}

// Exists checks if a scene with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
