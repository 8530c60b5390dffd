package store

import (
	"context"

	"libraryapi/internal/borrow"
)

type BorrowRepo struct {
	m *Memory
}

func NewBorrowRepo(m *Memory) *BorrowRepo {
	return &BorrowRepo{m: m}
}

var _ borrow.Repository = (*BorrowRepo)(nil)

// Borrow runs all checks and the mutation under the store lock, so callers
// never observe a decremented copy count without its loan record.
func (r *BorrowRepo) Borrow(_ context.Context, userID, bookID string) (borrow.Borrowing, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if userID == "" {
		return borrow.Borrowing{}, borrow.ErrNoActiveUser
	}

	book := r.m.findBook(bookID)
	if book == nil {
		return borrow.Borrowing{}, borrow.ErrBookNotFound
	}
	if book.AvailableCopies <= 0 {
		return borrow.Borrowing{}, borrow.ErrNoCopies
	}

	// One active loan per (user, book) pair.
	for _, l := range r.m.borrowings {
		if l.UserID == userID && l.BookID == bookID && l.Status == borrow.StatusBorrowed {
			return borrow.Borrowing{}, borrow.ErrAlreadyBorrowed
		}
	}

	now := r.m.now()
	book.AvailableCopies--
	loan := &borrow.Borrowing{
		ID:         r.m.newID(),
		UserID:     userID,
		BookID:     bookID,
		BorrowedAt: now,
		DueDate:    now.Add(borrow.LoanPeriod),
		Status:     borrow.StatusBorrowed,
	}
	r.m.borrowings = append(r.m.borrowings, loan)
	return *loan, nil
}

// Return flips the loan to returned exactly once. The availability increment
// always applies, even when TotalCopies was edited down after the loan was
// taken, which can leave AvailableCopies above TotalCopies.
func (r *BorrowRepo) Return(_ context.Context, borrowingID string) (borrow.Borrowing, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	loan := r.m.findBorrowing(borrowingID)
	if loan == nil {
		return borrow.Borrowing{}, borrow.ErrNotFound
	}
	if loan.Status != borrow.StatusBorrowed {
		return borrow.Borrowing{}, borrow.ErrNotBorrowed
	}

	now := r.m.now()
	loan.Status = borrow.StatusReturned
	loan.ReturnedAt = &now
	if book := r.m.findBook(loan.BookID); book != nil {
		book.AvailableCopies++
	}
	return *loan, nil
}

// ListForUser joins each loan with its book at read time. The joined Book is
// a copy, never the stored record, and is nil when the book was deleted.
func (r *BorrowRepo) ListForUser(_ context.Context, userID string) ([]borrow.Borrowing, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	results := make([]borrow.Borrowing, 0)
	for _, l := range r.m.borrowings {
		if l.UserID != userID {
			continue
		}
		loan := *l
		if book := r.m.findBook(l.BookID); book != nil {
			joined := *book
			loan.Book = &joined
		}
		results = append(results, loan)
	}
	return results, nil
}
