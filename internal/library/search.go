package library

import "strings"

// SearchCriteria selects which book field a search compares against.
type SearchCriteria int

const (
	ByTitle SearchCriteria = iota
	ByAuthor
	ByISBN
)

// String returns the display name for the criteria.
func (c SearchCriteria) String() string {
	switch c {
	case ByTitle:
		return "Title"
	case ByAuthor:
		return "Author"
	case ByISBN:
		return "ISBN"
	default:
		return "Unknown"
	}
}

// Matches reports whether the book matches the query under this
// criteria. Title and Author use case-insensitive substring matching;
// ISBN requires exact, case-sensitive equality with no normalization.
func (c SearchCriteria) Matches(b *Book, query string) bool {
	switch c {
	case ByTitle:
		return strings.Contains(strings.ToLower(b.Title), strings.ToLower(query))
	case ByAuthor:
		return strings.Contains(strings.ToLower(b.Author), strings.ToLower(query))
	case ByISBN:
		return b.ISBN == query
	default:
		return false
	}
}
