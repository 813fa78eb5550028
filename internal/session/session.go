// Package session implements the application state machine driving
// one terminal session: the screen enumeration, the per-run mutable
// state, and the transition function applying input events. All
// catalog and persistence side effects happen at the boundary of
// Handle, through the injected Store, so the machine is testable
// without a terminal or a filesystem.
package session

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"bookshelf/internal/library"
	"bookshelf/internal/store"
)

// Store is the persistence gateway the session drives. Load may
// return store.ErrNoCatalog to request first-run setup; any other
// error is fatal to the session. The file store satisfies this; tests
// substitute in-memory implementations.
type Store interface {
	Load() (*library.Library, error)
	Save(*library.Library) error
}

// CheckoutOutcome records the result of the last checkout attempt.
// A nil Err means the book was checked out.
type CheckoutOutcome struct {
	Err error
}

// Session holds all per-run mutable state and drives screen
// transitions. It owns the catalog exclusively for the process
// lifetime; all mutation goes through Handle.
type Session struct {
	screen  Screen
	library *library.Library
	store   Store
	log     *zap.Logger

	ownerInput string
	criteria   library.SearchCriteria
	queryInput string
	queryFocus bool // true: runes append to the query; false: runes are shortcuts

	selected *library.Book
	outcome  *CheckoutOutcome
	errMsg   string

	fatal error
}

// New returns a session on the loading screen backed by the given
// store. A nil logger disables logging.
func New(st Store, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Session{
		screen:   ScreenLoading,
		store:    st,
		log:      logger,
		criteria: library.ByTitle,
	}
}

// Err returns the fatal error that ended the session, if any. It is
// set only by a catalog load failure; domain-level failures are data
// in the session state, never fatal.
func (s *Session) Err() error {
	return s.fatal
}

// Library returns the loaded catalog, or nil before loading or
// first-run setup completes. The caller uses it for the shutdown
// save; nothing else outside this package should mutate it.
func (s *Session) Library() *library.Library {
	return s.library
}

// Handle applies one input event and returns true when the session is
// over and the caller should stop reading input. Unlisted events on a
// screen are no-ops.
func (s *Session) Handle(ev Event) bool {
	switch s.screen {
	case ScreenLoading:
		return s.handleLoading(ev)
	case ScreenNewOwner:
		s.handleNewOwner(ev)
	case ScreenHome:
		s.handleHome(ev)
	case ScreenSearching:
		s.handleSearching(ev)
	case ScreenCheckingOut:
		s.handleCheckingOut(ev)
	case ScreenCheckedOutResult:
		s.handleCheckedOutResult(ev)
	case ScreenExiting:
		return s.handleExiting(ev)
	}
	return false
}

// handleLoading attempts the catalog load on confirm. Cancel ends the
// session immediately and unconditionally.
func (s *Session) handleLoading(ev Event) bool {
	switch ev.Kind {
	case EventCancel:
		return true
	case EventConfirm:
		lib, err := s.store.Load()
		switch {
		case err == nil:
			s.library = lib
			s.screen = ScreenHome
		case errors.Is(err, store.ErrNoCatalog):
			s.log.Info("first run, entering owner setup")
			s.screen = ScreenNewOwner
		default:
			s.log.Error("catalog load failed", zap.Error(err))
			s.fatal = err
			return true
		}
	}
	return false
}

// handleNewOwner edits the owner buffer and, on confirm, seeds the
// demo catalog and persists it immediately. A failed seed save leaves
// the session on this screen with the error visible, so the user can
// retry rather than silently losing the new catalog.
func (s *Session) handleNewOwner(ev Event) {
	switch ev.Kind {
	case EventRune:
		s.ownerInput += string(ev.Rune)
	case EventBackspace:
		s.ownerInput = trimLastRune(s.ownerInput)
	case EventConfirm:
		lib := library.InitializeDemo(s.ownerInput)
		if err := s.store.Save(lib); err != nil {
			s.log.Error("seed save failed", zap.Error(err))
			s.errMsg = fmt.Sprintf("could not save new catalog: %v", err)
			return
		}
		s.log.Info("demo catalog seeded", zap.String("owner", lib.Owner))
		s.library = lib
		s.errMsg = ""
		s.screen = ScreenHome
	}
}

func (s *Session) handleHome(ev Event) {
	if ev.Kind != EventRune {
		return
	}
	switch ev.Rune {
	case 'q':
		s.screen = ScreenExiting
	case 's':
		s.queryInput = ""
		s.queryFocus = true
		s.screen = ScreenSearching
	}
}

// handleSearching routes runes either to the query buffer or to the
// criteria shortcuts, depending on the toggle flag. Confirm runs the
// search; an empty query and a query with no match are both silent,
// recoverable outcomes that leave the session searching.
func (s *Session) handleSearching(ev Event) {
	switch ev.Kind {
	case EventToggle:
		s.queryFocus = !s.queryFocus
	case EventRune:
		if s.queryFocus {
			s.queryInput += string(ev.Rune)
			return
		}
		switch ev.Rune {
		case 't':
			s.criteria = library.ByTitle
		case 'a':
			s.criteria = library.ByAuthor
		case 'i':
			s.criteria = library.ByISBN
		case 'q':
			s.screen = ScreenExiting
		}
	case EventBackspace:
		s.queryInput = trimLastRune(s.queryInput)
	case EventConfirm:
		if s.queryInput == "" {
			return
		}
		if b := s.library.Search(s.criteria, s.queryInput); b != nil {
			s.log.Info("search hit",
				zap.Stringer("criteria", s.criteria),
				zap.String("query", s.queryInput),
				zap.String("isbn", b.ISBN))
			s.selected = b
			s.screen = ScreenCheckingOut
		}
	}
}

// handleCheckingOut runs the checkout on confirm and records the
// outcome for the result screen. The selected book disappearing from
// the catalog between search and confirm is recorded as a session
// error, not a checkout outcome.
func (s *Session) handleCheckingOut(ev Event) {
	switch ev.Kind {
	case EventConfirm:
		s.errMsg = ""
		err := s.library.CheckOut(s.selected.ISBN)
		switch {
		case err == nil:
			s.outcome = &CheckoutOutcome{}
			s.log.Info("checked out", zap.String("isbn", s.selected.ISBN))
			if serr := s.store.Save(s.library); serr != nil {
				s.log.Error("post-checkout save failed", zap.Error(serr))
				s.errMsg = fmt.Sprintf("checkout saved in memory only: %v", serr)
			}
		case errors.Is(err, library.ErrBookNotFound):
			s.outcome = nil
			s.errMsg = "selected book is no longer in the catalog"
		default:
			s.outcome = &CheckoutOutcome{Err: err}
		}
		s.screen = ScreenCheckedOutResult
	case EventRune:
		switch ev.Rune {
		case 'q':
			s.screen = ScreenExiting
		case 'b':
			s.selected = nil
			s.screen = ScreenHome
		}
	}
}

func (s *Session) handleCheckedOutResult(ev Event) {
	if ev.Kind == EventConfirm {
		s.selected = nil
		s.screen = ScreenHome
	}
}

func (s *Session) handleExiting(ev Event) bool {
	if ev.Kind != EventRune {
		return false
	}
	switch ev.Rune {
	case 'y':
		return true
	case 'n':
		s.selected = nil
		s.screen = ScreenHome
	}
	return false
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	return string(r[:len(r)-1])
}
