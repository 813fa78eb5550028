package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookshelf/internal/library"
	"bookshelf/internal/store"
)

// fakeStore is an in-memory Store so the machine is exercised without
// any filesystem.
type fakeStore struct {
	lib     *library.Library
	loadErr error
	saveErr error
	saves   int
}

func (f *fakeStore) Load() (*library.Library, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.lib, nil
}

func (f *fakeStore) Save(l *library.Library) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	return nil
}

func typeString(s *Session, text string) {
	for _, r := range text {
		s.Handle(Rune(r))
	}
}

func loadedSession(t *testing.T) (*Session, *fakeStore) {
	t.Helper()
	fs := &fakeStore{lib: library.InitializeDemo("Morgan")}
	s := New(fs, nil)
	quit := s.Handle(Confirm)
	require.False(t, quit)
	require.Equal(t, ScreenHome, s.Snapshot().Screen)
	return s, fs
}

func TestInitialScreenIsLoading(t *testing.T) {
	s := New(&fakeStore{}, nil)
	assert.Equal(t, ScreenLoading, s.Snapshot().Screen)
}

func TestLoadingCancelEndsSession(t *testing.T) {
	s := New(&fakeStore{}, nil)
	assert.True(t, s.Handle(Cancel))
	assert.NoError(t, s.Err())
}

func TestLoadingConfirmLoadsCatalog(t *testing.T) {
	s, _ := loadedSession(t)
	snap := s.Snapshot()
	assert.True(t, snap.Loaded)
	assert.Equal(t, "Morgan", snap.Owner)
	assert.Len(t, snap.Books, 3)
}

func TestLoadingParseFailureIsFatal(t *testing.T) {
	loadErr := errors.New("parse catalog library.json: unexpected EOF")
	s := New(&fakeStore{loadErr: loadErr}, nil)

	assert.True(t, s.Handle(Confirm))
	assert.ErrorIs(t, s.Err(), loadErr)
}

func TestFirstRunRoutesToNewOwnerAndSeeds(t *testing.T) {
	fs := &fakeStore{loadErr: store.ErrNoCatalog}
	s := New(fs, nil)

	require.False(t, s.Handle(Confirm))
	assert.Equal(t, ScreenNewOwner, s.Snapshot().Screen)

	typeString(s, "Morgann")
	s.Handle(Backspace)
	assert.Equal(t, "Morgan", s.Snapshot().OwnerInput)

	require.False(t, s.Handle(Confirm))
	snap := s.Snapshot()
	assert.Equal(t, ScreenHome, snap.Screen)
	assert.Equal(t, "Morgan", snap.Owner)
	assert.Len(t, snap.Books, 3)
	assert.Equal(t, 1, fs.saves, "seed must be persisted immediately")
}

func TestSeedSaveFailureStaysOnNewOwner(t *testing.T) {
	fs := &fakeStore{loadErr: store.ErrNoCatalog, saveErr: errors.New("disk full")}
	s := New(fs, nil)
	s.Handle(Confirm)
	typeString(s, "Morgan")

	s.Handle(Confirm)
	snap := s.Snapshot()
	assert.Equal(t, ScreenNewOwner, snap.Screen)
	assert.False(t, snap.Loaded)
	assert.Contains(t, snap.ErrorMessage, "disk full")

	// The disk recovers; confirming again completes setup.
	fs.saveErr = nil
	s.Handle(Confirm)
	snap = s.Snapshot()
	assert.Equal(t, ScreenHome, snap.Screen)
	assert.Empty(t, snap.ErrorMessage)
}

func TestHomeQuitKeyOpensExitPrompt(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('q'))
	assert.Equal(t, ScreenExiting, s.Snapshot().Screen)
}

func TestHomeSearchKeyResetsQueryAndFocus(t *testing.T) {
	s, _ := loadedSession(t)

	// Leave stale query state behind, then re-enter searching.
	s.Handle(Rune('s'))
	typeString(s, "old query")
	s.Handle(Toggle)
	s.Handle(Rune('q'))
	s.Handle(Rune('n')) // back to Home via the exit prompt

	s.Handle(Rune('s'))
	snap := s.Snapshot()
	assert.Equal(t, ScreenSearching, snap.Screen)
	assert.Empty(t, snap.Query)
	assert.True(t, snap.QueryFocused)
}

func TestEmptyQueryConfirmNeverChecksOut(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('s'))

	s.Handle(Confirm)
	snap := s.Snapshot()
	assert.Equal(t, ScreenSearching, snap.Screen)
	assert.Nil(t, snap.Selected)
}

func TestFailedSearchIsSilentAndRecoverable(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('s'))
	s.Handle(Toggle)
	s.Handle(Rune('i')) // ISBN criteria
	s.Handle(Toggle)
	typeString(s, "0000000000000")

	s.Handle(Confirm)
	snap := s.Snapshot()
	assert.Equal(t, ScreenSearching, snap.Screen)
	assert.Nil(t, snap.Selected)
	assert.Equal(t, "0000000000000", snap.Query, "attempted query stays visible")
	assert.Empty(t, snap.ErrorMessage)
}

func TestCriteriaShortcutsOnlyWhenQueryUnfocused(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('s'))

	// Focused: these runes are query text, not shortcuts.
	typeString(s, "tai")
	snap := s.Snapshot()
	assert.Equal(t, "tai", snap.Query)
	assert.Equal(t, library.ByTitle, snap.Criteria)

	s.Handle(Toggle)
	s.Handle(Rune('a'))
	assert.Equal(t, library.ByAuthor, s.Snapshot().Criteria)
	s.Handle(Rune('i'))
	assert.Equal(t, library.ByISBN, s.Snapshot().Criteria)
	s.Handle(Rune('t'))
	assert.Equal(t, library.ByTitle, s.Snapshot().Criteria)

	s.Handle(Rune('q'))
	assert.Equal(t, ScreenExiting, s.Snapshot().Screen)
}

func TestSearchBackspaceEditsQuery(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('s'))
	typeString(s, "gatsbyy")
	s.Handle(Backspace)
	assert.Equal(t, "gatsby", s.Snapshot().Query)
}

func TestGatsbyCheckoutScenario(t *testing.T) {
	s, fs := loadedSession(t)
	savesBefore := fs.saves

	// Search by title, lowercase, against "The Great Gatsby".
	s.Handle(Rune('s'))
	typeString(s, "gatsby")
	require.False(t, s.Handle(Confirm))

	snap := s.Snapshot()
	require.Equal(t, ScreenCheckingOut, snap.Screen)
	require.NotNil(t, snap.Selected)
	assert.Equal(t, "9780743273565", snap.Selected.ISBN)

	// Confirm the checkout.
	s.Handle(Confirm)
	snap = s.Snapshot()
	require.Equal(t, ScreenCheckedOutResult, snap.Screen)
	require.NotNil(t, snap.Outcome)
	assert.NoError(t, snap.Outcome.Err)
	assert.Equal(t, savesBefore+1, fs.saves, "successful checkout persists immediately")

	// Back home, the book shows as checked out.
	s.Handle(Confirm)
	snap = s.Snapshot()
	assert.Equal(t, ScreenHome, snap.Screen)
	assert.Nil(t, snap.Selected)
	assert.Equal(t, library.StatusCheckedOut, snap.Books[0].Status)

	// The same sequence again now reports the book unavailable.
	s.Handle(Rune('s'))
	typeString(s, "gatsby")
	require.False(t, s.Handle(Confirm))
	require.Equal(t, ScreenCheckingOut, s.Snapshot().Screen)

	s.Handle(Confirm)
	snap = s.Snapshot()
	require.NotNil(t, snap.Outcome)
	assert.ErrorIs(t, snap.Outcome.Err, library.ErrBookUnavailable)
	assert.Equal(t, savesBefore+1, fs.saves, "failed checkout does not save")
}

func TestCheckingOutBackKeyReturnsHome(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('s'))
	typeString(s, "orwell")
	s.Handle(Toggle)
	s.Handle(Rune('a'))
	s.Handle(Toggle)
	require.False(t, s.Handle(Confirm))
	require.Equal(t, ScreenCheckingOut, s.Snapshot().Screen)

	s.Handle(Rune('b'))
	snap := s.Snapshot()
	assert.Equal(t, ScreenHome, snap.Screen)
	assert.Nil(t, snap.Selected)
	assert.Equal(t, library.StatusAvailable, snap.Books[2].Status, "nothing was checked out")
}

func TestCheckingOutQuitKeyOpensExitPrompt(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('s'))
	typeString(s, "1984")
	require.False(t, s.Handle(Confirm))

	s.Handle(Rune('q'))
	assert.Equal(t, ScreenExiting, s.Snapshot().Screen)
}

func TestCheckoutOfVanishedBookIsDomainError(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('s'))
	typeString(s, "gatsby")
	require.False(t, s.Handle(Confirm))

	// The book disappears between search and confirm. Only a direct
	// catalog edit can cause this, but the machine must record it as
	// a session error, not a checkout outcome.
	s.Library().Books = s.Library().Books[1:]

	s.Handle(Confirm)
	snap := s.Snapshot()
	assert.Equal(t, ScreenCheckedOutResult, snap.Screen)
	assert.Nil(t, snap.Outcome)
	assert.NotEmpty(t, snap.ErrorMessage)
}

func TestCheckoutSaveFailureIsSurfacedNotFatal(t *testing.T) {
	s, fs := loadedSession(t)
	s.Handle(Rune('s'))
	typeString(s, "gatsby")
	require.False(t, s.Handle(Confirm))

	fs.saveErr = errors.New("read-only filesystem")
	s.Handle(Confirm)
	snap := s.Snapshot()
	require.NotNil(t, snap.Outcome)
	assert.NoError(t, snap.Outcome.Err, "the checkout itself succeeded")
	assert.Contains(t, snap.ErrorMessage, "read-only filesystem")
	assert.NoError(t, s.Err(), "a save failure never aborts the session")
}

func TestSuccessfulCheckoutClearsEarlierError(t *testing.T) {
	s, fs := loadedSession(t)
	s.Handle(Rune('s'))
	typeString(s, "gatsby")
	require.False(t, s.Handle(Confirm))

	fs.saveErr = errors.New("disk full")
	s.Handle(Confirm)
	require.Contains(t, s.Snapshot().ErrorMessage, "disk full")

	// The disk recovers. The next checkout must not drag the old
	// save error onto its result screen.
	fs.saveErr = nil
	s.Handle(Confirm)
	s.Handle(Rune('s'))
	typeString(s, "mockingbird")
	require.False(t, s.Handle(Confirm))
	s.Handle(Confirm)

	snap := s.Snapshot()
	require.NotNil(t, snap.Outcome)
	assert.NoError(t, snap.Outcome.Err)
	assert.Empty(t, snap.ErrorMessage)
}

func TestExitingConfirmAndCancel(t *testing.T) {
	s, _ := loadedSession(t)
	s.Handle(Rune('q'))

	assert.False(t, s.Handle(Rune('x')), "unlisted keys are no-ops")
	assert.Equal(t, ScreenExiting, s.Snapshot().Screen)

	assert.False(t, s.Handle(Rune('n')))
	assert.Equal(t, ScreenHome, s.Snapshot().Screen)

	s.Handle(Rune('q'))
	assert.True(t, s.Handle(Rune('y')))
}

func TestSnapshotIsACopy(t *testing.T) {
	s, _ := loadedSession(t)
	snap := s.Snapshot()
	snap.Books[0].Status = library.StatusLost

	assert.Equal(t, library.StatusAvailable, s.Snapshot().Books[0].Status)
}
