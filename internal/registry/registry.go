// Package registry keeps the breakout modes known to the program.
// Modes register from init functions; the menu, the scoreboard and the
// CLI look them up by ID and list them in registration order.
package registry

import (
	"fmt"
	"sync"

	"github.com/pkg/errors"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Game is a playable mode. Implementations hold the simulation only; the
// platform owns input mapping, timing and drawing to the terminal.
type Game interface {
	// ID is the stable key used by the CLI and the scores table.
	ID() string

	// Title is the name shown in menus.
	Title() string

	// Reset starts a fresh game laid out for cfg's screen.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick with the actions held this frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen buffer.
	Render(dst *core.Screen)

	State() core.GameState
}

// GameInfo describes a registered mode.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

type entry struct {
	info    GameInfo
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = make(map[string]entry)
	order   []string
)

// Register adds a mode. It panics on an empty or duplicate ID, which is a
// programming error in an init function.
func Register(id string, f Factory) {
	if id == "" {
		panic("registry: empty game id")
	}
	if f == nil {
		panic(fmt.Sprintf("registry: nil factory for %q", id))
	}

	// Title comes from a throwaway instance, created outside the lock.
	title := f().Title()

	mu.Lock()
	defer mu.Unlock()
	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{info: GameInfo{ID: id, Title: title}, factory: f}
	order = append(order, id)
}

// List returns the registered modes in registration order.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, len(order))
	for i, id := range order {
		out[i] = entries[id].info
	}
	return out
}

// Lookup returns the description of a mode.
func Lookup(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	e, ok := entries[id]
	return e.info, ok
}

// Create returns a new instance of the mode. The error wraps
// ErrUnknownGame when id is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, errors.Wrapf(ErrUnknownGame, "registry: %q", id)
	}
	return e.factory(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	_, ok := Lookup(id)
	return ok
}
