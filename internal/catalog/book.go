package catalog

import (
	"errors"
	"strings"
	"time"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// Book is a catalog entry with its copy-availability counts.
// Invariant: 0 <= AvailableCopies <= TotalCopies, except for the documented
// return edge case where TotalCopies was edited down while copies were out.
type Book struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Author          string    `json:"author"`
	ISBN            string    `json:"isbn"`
	Category        string    `json:"category"`
	Description     string    `json:"description,omitempty"`
	CoverImage      string    `json:"cover_image,omitempty"`
	TotalCopies     int       `json:"total_copies"`
	AvailableCopies int       `json:"available_copies"`
	PublishedYear   int       `json:"published_year"`
	CreatedAt       time.Time `json:"created_at"`
}

// Draft carries the caller-supplied fields for a new catalog entry. The store
// assigns ID and CreatedAt and starts all copies available.
type Draft struct {
	Title         string
	Author        string
	ISBN          string
	Category      string
	Description   string
	CoverImage    string
	TotalCopies   int
	PublishedYear int
}

// Matches reports whether the book matches a non-blank search query.
// Title, author, and category match case-insensitively; the ISBN matches as a
// literal substring, so "978-0" finds hyphenated ISBNs without folding digits.
func (b Book) Matches(query string) bool {
	lower := strings.ToLower(query)
	return strings.Contains(strings.ToLower(b.Title), lower) ||
		strings.Contains(strings.ToLower(b.Author), lower) ||
		strings.Contains(strings.ToLower(b.Category), lower) ||
		strings.Contains(b.ISBN, query)
}
