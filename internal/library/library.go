package library

import "errors"

var (
	// ErrBookNotFound means no book in the catalog carries the
	// requested ISBN.
	ErrBookNotFound = errors.New("book not found")

	// ErrBookUnavailable means the book exists but is not in the
	// Available state, so it cannot be checked out.
	ErrBookUnavailable = errors.New("book is not available")
)

// Library is the owned collection of books plus owner metadata.
// Books keep insertion order, which is also the order searches are
// resolved in. The owner is set once at creation and never changes.
type Library struct {
	Books []Book `json:"books"`
	Owner string `json:"owner"`
}

// New returns an empty library owned by owner.
func New(owner string) *Library {
	return &Library{Owner: owner}
}

// Add appends a book to the catalog.
func (l *Library) Add(b Book) {
	l.Books = append(l.Books, b)
}

// Search returns the first book in catalog order matching query under
// criteria, or nil when nothing matches. There is no ranking; the
// caller is responsible for rejecting empty queries.
func (l *Library) Search(criteria SearchCriteria, query string) *Book {
	for i := range l.Books {
		if criteria.Matches(&l.Books[i], query) {
			return &l.Books[i]
		}
	}
	return nil
}

// CheckOut marks the book with the given ISBN as checked out. It
// returns ErrBookNotFound or ErrBookUnavailable on failure, and the
// catalog is unchanged in either case. This is the only mutation the
// domain exposes; there is no operation to return a book.
func (l *Library) CheckOut(isbn string) error {
	for i := range l.Books {
		if l.Books[i].ISBN == isbn {
			return l.Books[i].checkOut()
		}
	}
	return ErrBookNotFound
}

// InitializeDemo returns a library seeded with the fixed demo set of
// three books, all Available. Used on first run when no persisted
// catalog exists yet.
func InitializeDemo(owner string) *Library {
	l := New(owner)
	l.Add(NewBook("The Great Gatsby", "F. Scott Fitzgerald", "9780743273565", 1925, GenreFiction))
	l.Add(NewBook("To Kill a Mockingbird", "Harper Lee", "9780061120084", 1960, GenreFiction))
	l.Add(NewBook("1984", "George Orwell", "9780451524935", 1949, GenreScienceFiction))
	return l
}
