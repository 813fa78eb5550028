package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"bookshelf/internal/session"
)

// KeyMap defines the key bindings shown in the footer hints. The
// session interprets the actual events; these bindings exist so the
// help line always matches what the machine accepts.
type KeyMap struct {
	Search     key.Binding
	Quit       key.Binding
	ToggleMode key.Binding
	ByAuthor   key.Binding
	ByTitle    key.Binding
	ByISBN     key.Binding
	Confirm    key.Binding
	CheckOut   key.Binding
	Back       key.Binding
	Continue   key.Binding
}

// DefaultKeyMap is the built-in binding set, matching the shortcuts
// the session state machine understands.
var DefaultKeyMap = KeyMap{
	Search: key.NewBinding(
		key.WithKeys("s"),
		key.WithHelp("s", "search"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q"),
		key.WithHelp("q", "quit"),
	),
	ToggleMode: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("tab", "switch input mode"),
	),
	ByAuthor: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "by author"),
	),
	ByTitle: key.NewBinding(
		key.WithKeys("t"),
		key.WithHelp("t", "by title"),
	),
	ByISBN: key.NewBinding(
		key.WithKeys("i"),
		key.WithHelp("i", "by ISBN"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "search"),
	),
	CheckOut: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "check out"),
	),
	Back: key.NewBinding(
		key.WithKeys("b"),
		key.WithHelp("b", "back"),
	),
	Continue: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "continue"),
	),
}

// bindingsFor returns the footer bindings for the current screen and
// routing mode.
func (k KeyMap) bindingsFor(snap session.Snapshot) []key.Binding {
	switch snap.Screen {
	case session.ScreenHome:
		return []key.Binding{k.Search, k.Quit}
	case session.ScreenSearching:
		if snap.QueryFocused {
			return []key.Binding{k.Confirm, k.ToggleMode}
		}
		return []key.Binding{k.ByAuthor, k.ByTitle, k.ByISBN, k.ToggleMode, k.Quit}
	case session.ScreenCheckingOut:
		return []key.Binding{k.CheckOut, k.Back, k.Quit}
	case session.ScreenCheckedOutResult:
		return []key.Binding{k.Continue}
	case session.ScreenLoading, session.ScreenNewOwner, session.ScreenExiting:
		return nil
	default:
		return nil
	}
}
