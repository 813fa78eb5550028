// Package library implements the book catalog domain: the book
// entity, field-specific search matching, and the checkout state
// transition. Persistence of the catalog lives in internal/store;
// this package never touches the filesystem.
package library

// Genre classifies a book into one of a fixed set of categories.
// Values serialize under their symbolic names.
type Genre string

const (
	GenreFiction        Genre = "Fiction"
	GenreNonFiction     Genre = "NonFiction"
	GenreScienceFiction Genre = "ScienceFiction"
	GenreMystery        Genre = "Mystery"
)

// String returns the human-readable name for the genre.
func (g Genre) String() string {
	switch g {
	case GenreFiction:
		return "Fiction"
	case GenreNonFiction:
		return "Non-Fiction"
	case GenreScienceFiction:
		return "Science Fiction"
	case GenreMystery:
		return "Mystery"
	default:
		return string(g)
	}
}

// Status is a book's availability state. The only transition the
// domain performs is Available -> CheckedOut; Lost is reachable only
// by editing the catalog file by hand.
type Status string

const (
	StatusAvailable  Status = "Available"
	StatusCheckedOut Status = "CheckedOut"
	StatusLost       Status = "Lost"
)

// String returns the human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusAvailable:
		return "Available"
	case StatusCheckedOut:
		return "Checked Out"
	case StatusLost:
		return "Lost"
	default:
		return string(s)
	}
}

// Book is a single catalog entry. ISBN is treated as the identifier
// by every operation, though uniqueness is not enforced on insert.
type Book struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	ISBN            string `json:"isbn"`
	PublicationYear uint16 `json:"publication_year"`
	Genre           Genre  `json:"genre"`
	Status          Status `json:"status"`
}

// NewBook returns a book in the Available state.
func NewBook(title, author, isbn string, year uint16, genre Genre) Book {
	return Book{
		Title:           title,
		Author:          author,
		ISBN:            isbn,
		PublicationYear: year,
		Genre:           genre,
		Status:          StatusAvailable,
	}
}

// Available reports whether the book can currently be checked out.
func (b *Book) Available() bool {
	return b.Status == StatusAvailable
}

// checkOut transitions the book to CheckedOut. Any state other than
// Available is rejected and the book is left unchanged.
func (b *Book) checkOut() error {
	if b.Status != StatusAvailable {
		return ErrBookUnavailable
	}
	b.Status = StatusCheckedOut
	return nil
}
