package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type Action string

const (
	actionQuit      Action = "quit"
	actionNextFocus Action = "next_focus"
	actionPrevFocus Action = "prev_focus"
	actionUp        Action = "up"
	actionDown      Action = "down"
	actionLeft      Action = "left"
	actionRight     Action = "right"
	actionPlace     Action = "place"
	actionNewGame   Action = "new_game"
	actionPause     Action = "pause"
	actionStop      Action = "stop"
)

const (
	scopeGlobal    = "global"
	scopeBoard     = "board"
	scopeSelectors = "selectors"
)

// Binding maps keys to an action within a scope. HelpKey is the label
// shown in the footer and defaults to Keys[0]; it is never matched.
type Binding struct {
	Action  Action
	Keys    []string
	HelpKey string
	Help    string
}

// KeyRegistry resolves key names per scope, falling back to global.
type KeyRegistry struct {
	bindings map[string][]Binding
	index    map[string]map[string]Action
}

func NewKeyRegistry() *KeyRegistry {
	r := &KeyRegistry{
		bindings: make(map[string][]Binding),
		index:    make(map[string]map[string]Action),
	}

	r.Register(scopeBoard, Binding{Action: actionUp, Keys: []string{"up", "k"}})
	r.Register(scopeBoard, Binding{Action: actionDown, Keys: []string{"down", "j"}})
	r.Register(scopeBoard, Binding{Action: actionLeft, Keys: []string{"left", "h"}})
	r.Register(scopeBoard, Binding{Action: actionRight, Keys: []string{"right", "l"}, HelpKey: "hjkl", Help: "move"})
	r.Register(scopeBoard, Binding{Action: actionPlace, Keys: []string{"enter", "space"}, Help: "place"})

	r.Register(scopeSelectors, Binding{Action: actionUp, Keys: []string{"up", "k"}})
	r.Register(scopeSelectors, Binding{Action: actionDown, Keys: []string{"down", "j"}, HelpKey: "j/k", Help: "field"})
	r.Register(scopeSelectors, Binding{Action: actionLeft, Keys: []string{"left", "h"}})
	r.Register(scopeSelectors, Binding{Action: actionRight, Keys: []string{"right", "l"}, HelpKey: "h/l", Help: "change"})

	r.Register(scopeGlobal, Binding{Action: actionNewGame, Keys: []string{"n"}, Help: "new game"})
	r.Register(scopeGlobal, Binding{Action: actionPause, Keys: []string{"p"}, Help: "pause/resume"})
	r.Register(scopeGlobal, Binding{Action: actionStop, Keys: []string{"x"}, Help: "stop"})
	r.Register(scopeGlobal, Binding{Action: actionNextFocus, Keys: []string{"tab"}, Help: "focus"})
	r.Register(scopeGlobal, Binding{Action: actionPrevFocus, Keys: []string{"shift+tab"}})
	r.Register(scopeGlobal, Binding{Action: actionQuit, Keys: []string{"q", "ctrl+c"}, Help: "quit"})
	return r
}

func (r *KeyRegistry) Register(scope string, b Binding) {
	r.bindings[scope] = append(r.bindings[scope], b)
	idx := r.index[scope]
	if idx == nil {
		idx = make(map[string]Action)
		r.index[scope] = idx
	}
	for _, k := range b.Keys {
		idx[normalizeKeyName(k)] = b.Action
	}
}

// Lookup returns the action bound to keyName in scope or, failing that, in
// the global scope.
func (r *KeyRegistry) Lookup(keyName, scope string) (Action, bool) {
	keyName = normalizeKeyName(keyName)
	if a, ok := r.index[scope][keyName]; ok {
		return a, true
	}
	a, ok := r.index[scopeGlobal][keyName]
	return a, ok
}

// HelpBindings lists the scope's bindings followed by the global ones.
// Bindings without help text are left out.
func (r *KeyRegistry) HelpBindings(scope string) []key.Binding {
	var out []key.Binding
	for _, s := range []string{scope, scopeGlobal} {
		for _, b := range r.bindings[s] {
			if b.Help == "" || len(b.Keys) == 0 {
				continue
			}
			helpKey := b.HelpKey
			if helpKey == "" {
				helpKey = b.Keys[0]
			}
			out = append(out, key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(helpKey, b.Help)))
		}
	}
	return out
}

func normalizeKeyName(k string) string {
	if k == " " {
		return "space"
	}
	s := strings.ToLower(strings.TrimSpace(k))
	s = strings.ReplaceAll(s, "return", "enter")
	return s
}
