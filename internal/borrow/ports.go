package borrow

import (
	"context"
)

type Repository interface {
	// Borrow checks availability and the no-double-borrow rule, decrements
	// the book's available copies, and appends a new active loan. The checks
	// and the mutation happen as one atomic step.
	Borrow(ctx context.Context, userID, bookID string) (Borrowing, error)
	// Return closes an active loan and gives the copy back to the catalog.
	// Returning the same loan twice fails with ErrNotBorrowed and does not
	// increment available copies again.
	Return(ctx context.Context, borrowingID string) (Borrowing, error)
	// ListForUser returns the user's borrowings in insertion order, each
	// with its joined Book attached when the book still exists.
	ListForUser(ctx context.Context, userID string) ([]Borrowing, error)
}
