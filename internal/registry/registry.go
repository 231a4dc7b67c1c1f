// Package registry maps mode ids ("duel", "duel_endless") to factories.
// Modes register themselves from init(); the CLI, the menu and the SSH
// server build every game through Create so they all share one list of
// modes and one configuration path.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-duel/internal/config"
	"github.com/vovakirdan/tui-duel/internal/core"
)

// Game is what a registered mode produces. Implementations hold pure
// simulation state; the platform owns timing, input mapping and display.
type Game interface {
	ID() string
	Title() string

	// Reset starts a fresh match sized for the given runtime.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions triggered during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory builds a game from an already loaded duel configuration.
type Factory func(cfg config.DuelConfig) Game

// GameInfo describes a registered mode for menus and `duel list`.
type GameInfo struct {
	ID    string
	Title string
}

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a mode. It panics on an empty id, a nil factory or a
// duplicate id, since all of those are programming errors in init().
func Register(id, title string, f Factory) {
	if id == "" || f == nil {
		panic("registry: Register needs an id and a factory")
	}

	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: mode %q already registered", id))
	}
	entries[id] = entry{title: title, factory: f}
}

// List returns all registered modes sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		result = append(result, GameInfo{ID: id, Title: e.title})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds the mode registered under id with cfg.
func Create(id string, cfg config.DuelConfig) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown mode %q", id)
	}
	return e.factory(cfg), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := entries[id]
	return ok
}
