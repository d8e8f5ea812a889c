// Package registry maps game IDs to factories. Game packages register
// themselves from init, so runtimes only need a blank import.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/starcatch/internal/core"
)

// Game is a fixed-step simulation a runtime can drive. Implementations know
// nothing about terminals or windows; runtimes map keys to actions, keep
// time and display the result.
type Game interface {
	// ID is the stable key used on the command line and in the score store.
	ID() string
	Title() string

	// Reset rebuilds the game from scratch. Runtimes call it before the
	// first Step and again on restart, with a fresh seed if they want one.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions held or pressed during it.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current frame into dst.
	Render(dst *core.Screen)

	State() core.GameState
}

// SpriteSource is implemented by games that can describe their world as
// colored boxes, which lets pixel runtimes draw them without a character grid.
type SpriteSource interface {
	// WorldSize returns the world dimensions the sprites are positioned in.
	WorldSize() (w, h float64)

	// Sprites returns every visible drawable in back-to-front order.
	Sprites() []core.Sprite
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
)

// Register adds a game factory, normally from the game package's init.
// Registering an ID twice panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := entries[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	// The title is read once from a throwaway instance.
	entries[id] = entry{title: f().Title(), factory: f}
}

// List returns information about all registered games, sorted by ID.
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

// Lookup returns the metadata of one game.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	if !ok {
		return GameInfo{}, false
	}
	return GameInfo{ID: id, Title: e.title}, true
}

// Create instantiates a fresh game by ID.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
