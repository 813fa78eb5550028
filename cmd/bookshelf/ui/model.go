package ui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"bookshelf/internal/session"
)

// Model is the bubbletea model for the whole program. It owns no
// state beyond layout: every keystroke becomes a session event, and
// every frame is drawn from the session snapshot.
type Model struct {
	sess   *session.Session
	styles Styles
	keys   KeyMap
	help   help.Model
	width  int
	height int
}

// New wraps a session for rendering.
func New(sess *session.Session) Model {
	return Model{
		sess:   sess,
		styles: DefaultStyles(),
		keys:   DefaultKeyMap,
		help:   help.New(),
		width:  80,
		height: 24,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update forwards input to the session state machine and quits when
// the machine signals the end of the session. Bubble Tea only
// delivers key presses, which covers the repeat/release filtering the
// session expects from the input layer.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		for _, ev := range eventsFor(msg) {
			if m.sess.Handle(ev) {
				return m, tea.Quit
			}
		}
	}
	return m, nil
}

// eventsFor translates one key message into session events. A pasted
// string arrives as a single KeyRunes message, so it fans out into
// one rune event per character.
func eventsFor(msg tea.KeyMsg) []session.Event {
	switch msg.Type {
	case tea.KeyEnter:
		return []session.Event{session.Confirm}
	case tea.KeyEsc:
		return []session.Event{session.Cancel}
	case tea.KeyBackspace:
		return []session.Event{session.Backspace}
	case tea.KeyTab:
		return []session.Event{session.Toggle}
	case tea.KeySpace:
		return []session.Event{session.Rune(' ')}
	case tea.KeyRunes:
		events := make([]session.Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, session.Rune(r))
		}
		return events
	default:
		return nil
	}
}
