package session

import "bookshelf/internal/library"

// Snapshot is the read-only view the presentation layer renders from.
// It is sufficient to draw every screen without any domain logic in
// the renderer. Books and the selected book are copies; mutating a
// snapshot never touches session state.
type Snapshot struct {
	Screen Screen

	// Loaded is true once a catalog exists, whether read from disk
	// or seeded during first-run setup.
	Loaded bool
	Owner  string
	Books  []library.Book

	// OwnerInput is the in-progress owner name on the first-run
	// screen.
	OwnerInput string

	// Criteria, Query, and QueryFocused describe the search screen:
	// the active field, the in-progress query, and whether keystrokes
	// currently route to the query buffer.
	Criteria     library.SearchCriteria
	Query        string
	QueryFocused bool

	// Selected is the result of the last successful search, cleared
	// when the checkout flow ends. It is always non-nil on the
	// checkout confirmation screen.
	Selected *library.Book

	// Outcome is the last checkout result, nil before any attempt.
	Outcome *CheckoutOutcome

	// ErrorMessage is the last session-level error, empty when none.
	ErrorMessage string
}

// Snapshot returns the current read-only view of the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		Screen:       s.screen,
		OwnerInput:   s.ownerInput,
		Criteria:     s.criteria,
		Query:        s.queryInput,
		QueryFocused: s.queryFocus,
		ErrorMessage: s.errMsg,
	}
	if s.library != nil {
		snap.Loaded = true
		snap.Owner = s.library.Owner
		snap.Books = append([]library.Book(nil), s.library.Books...)
	}
	if s.selected != nil {
		b := *s.selected
		snap.Selected = &b
	}
	if s.outcome != nil {
		o := *s.outcome
		snap.Outcome = &o
	}
	return snap
}
