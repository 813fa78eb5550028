package session

// EventKind discriminates the input events the terminal layer
// delivers. Key repeats and releases are filtered out before events
// reach the session.
type EventKind int

const (
	// EventRune carries one printable character. Depending on the
	// screen and routing mode it is either buffered text or a
	// single-character shortcut.
	EventRune EventKind = iota

	// EventConfirm is the enter key.
	EventConfirm

	// EventCancel is the escape key.
	EventCancel

	// EventBackspace removes the last character of the active buffer.
	EventBackspace

	// EventToggle is the tab key, flipping text routing while
	// searching.
	EventToggle
)

// Event is one discrete keystroke.
type Event struct {
	Kind EventKind
	Rune rune // set only for EventRune
}

// Rune wraps a printable character as an event.
func Rune(r rune) Event {
	return Event{Kind: EventRune, Rune: r}
}

// Named events without a character payload.
var (
	Confirm   = Event{Kind: EventConfirm}
	Cancel    = Event{Kind: EventCancel}
	Backspace = Event{Kind: EventBackspace}
	Toggle    = Event{Kind: EventToggle}
)
