package borrow

import (
	"errors"
	"time"

	"libraryapi/internal/catalog"
)

// Borrowing status values. StatusOverdue is a display-only derivation from
// DueDate; the store only ever records borrowed and returned.
const (
	StatusBorrowed = "borrowed"
	StatusReturned = "returned"
	StatusOverdue  = "overdue"
)

// LoanPeriod is how long a borrower may keep a book before it is due.
const LoanPeriod = 14 * 24 * time.Hour

var (
	// ErrNoActiveUser is returned when borrowing without an authenticated user.
	ErrNoActiveUser = errors.New("no active user")
	// ErrBookNotFound is returned when the requested book does not exist.
	ErrBookNotFound = errors.New("book not found")
	// ErrNoCopies is returned when every copy of the book is out.
	ErrNoCopies = errors.New("no copies available")
	// ErrAlreadyBorrowed is returned when the user already holds an active
	// loan of the same book.
	ErrAlreadyBorrowed = errors.New("book already borrowed by this user")
	// ErrNotFound is returned when no borrowing matches the ID.
	ErrNotFound = errors.New("borrowing not found")
	// ErrNotBorrowed is returned when returning a loan that is not active.
	ErrNotBorrowed = errors.New("borrowing is not active")
)

// Borrowing is one loan record in the ledger. Book is a join projection
// attached at read time; it is never stored on the record and is nil when the
// book has since been deleted from the catalog.
type Borrowing struct {
	ID         string        `json:"id"`
	UserID     string        `json:"user_id"`
	BookID     string        `json:"book_id"`
	BorrowedAt time.Time     `json:"borrowed_at"`
	DueDate    time.Time     `json:"due_date"`
	ReturnedAt *time.Time    `json:"returned_at"`
	Status     string        `json:"status"`
	Book       *catalog.Book `json:"book,omitempty"`
}

// DisplayStatus derives the status to show for the borrowing at the given
// time: an active loan past its due date reads as overdue. The stored status
// is never rewritten.
func (b Borrowing) DisplayStatus(now time.Time) string {
	if b.Status == StatusBorrowed && now.After(b.DueDate) {
		return StatusOverdue
	}
	return b.Status
}
