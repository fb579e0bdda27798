package players

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/jask/gomoku/internal/board"
)

var ErrUnknownPlayer = errors.New("unknown player")

// Position is what a player sees when asked for a move.
type Position struct {
	Board     *board.Board // a copy; players may mutate it
	Stone     board.Stone
	Last      *board.Point
	ExactFive bool
}

// Player chooses moves. NextMove must return promptly once ctx is done.
type Player interface {
	Name() string
	NextMove(ctx context.Context, pos Position) (board.Point, error)
}

// Submitter is implemented by players whose moves come from the UI.
type Submitter interface {
	Submit(p board.Point) bool
}

// Factory builds a fresh player for one game.
type Factory func() Player

// Registry maps player names to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default returns a registry holding the built-in players.
func Default() *Registry {
	r := NewRegistry()
	r.Register(HumanName, func() Player { return NewHuman() })
	r.Register(RandomName, func() Player { return NewRandom(nil) })
	r.Register(GreedyName, func() Player { return NewGreedy() })
	return r
}

func (r *Registry) Register(name string, f Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = f
}

func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[name]
	return ok
}

// Available returns registered names in sorted order.
func (r *Registry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) New(name string) (Player, error) {
	r.mu.RLock()
	f, ok := r.factories[name]
	r.mu.RUnlock()
	if !ok {
		if s := r.suggest(name); s != "" {
			return nil, fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownPlayer, name, s)
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownPlayer, name)
	}
	return f(), nil
}

// suggest returns the closest registered name within a small edit distance.
func (r *Registry) suggest(name string) string {
	target := strings.ToLower(strings.TrimSpace(name))
	if target == "" {
		return ""
	}
	best, bestDist := "", 3
	for _, candidate := range r.Available() {
		d := levenshtein.ComputeDistance(target, strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best
}
