package tui

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	scopeBoard = "board"
	scopeDrag  = "drag"
)

type keyAction string

const (
	actionQuit     keyAction = "quit"
	actionLeft     keyAction = "column-prev"
	actionRight    keyAction = "column-next"
	actionUp       keyAction = "row-up"
	actionDown     keyAction = "row-down"
	actionPickDrop keyAction = "pick-drop"
	actionOutside  keyAction = "drop-outside"
	actionCancel   keyAction = "cancel"
	actionAddList  keyAction = "add-list"
	actionHistory  keyAction = "history"
	actionReset    keyAction = "reset-history"
)

// KeyBinding maps keys to an action within a set of scopes. An empty scope
// list or "*" matches every scope.
type KeyBinding struct {
	Keys        []string
	Action      keyAction
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"left", "h"}, Action: actionLeft, Description: "column", Scopes: []string{"*"}},
		{Keys: []string{"right", "l"}, Action: actionRight, Description: "column", Scopes: []string{"*"}},
		{Keys: []string{"up", "k"}, Action: actionUp, Description: "row", Scopes: []string{"*"}},
		{Keys: []string{"down", "j"}, Action: actionDown, Description: "row", Scopes: []string{"*"}},
		{Keys: []string{"space", "enter"}, Action: actionPickDrop, Description: "pick up", Scopes: []string{scopeBoard}},
		{Keys: []string{"space", "enter"}, Action: actionPickDrop, Description: "drop", Scopes: []string{scopeDrag}},
		{Keys: []string{"x"}, Action: actionOutside, Description: "drop outside", Scopes: []string{scopeDrag}},
		{Keys: []string{"esc"}, Action: actionCancel, Description: "cancel", Scopes: []string{scopeDrag}},
		{Keys: []string{"n"}, Action: actionAddList, Description: "new list", Scopes: []string{"*"}},
		{Keys: []string{"H"}, Action: actionHistory, Description: "history", Scopes: []string{scopeBoard}},
		{Keys: []string{"R"}, Action: actionReset, Description: "clear history", Scopes: []string{scopeBoard}},
		{Keys: []string{"q", "ctrl+c"}, Action: actionQuit, Description: "quit", Scopes: []string{"*"}},
	}
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// ActionFor returns the first action bound to msg in scope.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (keyAction, bool) {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return b.Action, true
			}
		}
	}
	return "", false
}

// Help renders the bindings of scope as a one-line hint. Actions sharing a
// description are folded into one entry.
func (r *KeyRegistry) Help(scope string) string {
	var order []string
	keys := map[string][]string{}
	for _, b := range r.BindingsForScope(scope) {
		if len(b.Keys) == 0 {
			continue
		}
		if _, ok := keys[b.Description]; !ok {
			order = append(order, b.Description)
		}
		keys[b.Description] = append(keys[b.Description], b.Keys[0])
	}
	parts := make([]string, len(order))
	for i, desc := range order {
		parts[i] = strings.Join(keys[desc], "/") + " " + desc
	}
	return strings.Join(parts, "  ")
}

// Key names are case sensitive so H and h can carry different actions.
func normalizeKey(k string) string {
	if k == " " {
		return "space"
	}
	return strings.TrimSpace(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
