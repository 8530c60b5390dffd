// Package store holds the in-memory library state: accounts, the book
// catalog, and the borrowing ledger. All three collections live behind one
// mutex so every repository operation is atomic with respect to every other,
// which is what the single mutation path requires (borrowing touches the
// catalog and the ledger in the same step, deleting a book cascades into the
// ledger).
package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"libraryapi/internal/account"
	"libraryapi/internal/borrow"
	"libraryapi/internal/catalog"
)

// Memory is the shared state handle the per-domain repositories operate on,
// playing the role a connection pool plays for a database-backed store.
// Collections are slices because store order (insertion order) is part of the
// read contract for search and loan listings.
type Memory struct {
	mu         sync.Mutex
	accounts   []*account.Account
	books      []*catalog.Book
	borrowings []*borrow.Borrowing

	now   func() time.Time
	newID func() string
}

func NewMemory() *Memory {
	return &Memory{
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
}

// WithClock replaces the time source, for tests that pin due dates.
func (m *Memory) WithClock(now func() time.Time) *Memory {
	m.now = now
	return m
}

func (m *Memory) findBook(id string) *catalog.Book {
	for _, b := range m.books {
		if b.ID == id {
			return b
		}
	}
	return nil
}

func (m *Memory) findBorrowing(id string) *borrow.Borrowing {
	for _, b := range m.borrowings {
		if b.ID == id {
			return b
		}
	}
	return nil
}
