package store

import (
	"context"
	"strings"

	"libraryapi/internal/borrow"
	"libraryapi/internal/catalog"
)

type BookRepo struct {
	m *Memory
}

func NewBookRepo(m *Memory) *BookRepo {
	return &BookRepo{m: m}
}

var _ catalog.Repository = (*BookRepo)(nil)

func (r *BookRepo) Insert(_ context.Context, b *catalog.Book) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	b.ID = r.m.newID()
	b.CreatedAt = r.m.now()
	stored := *b
	r.m.books = append(r.m.books, &stored)
	return nil
}

func (r *BookRepo) GetByID(_ context.Context, id string) (catalog.Book, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	if b := r.m.findBook(id); b != nil {
		return *b, nil
	}
	return catalog.Book{}, catalog.ErrNotFound
}

// Delete removes the book and, in the same atomic step, every borrowing that
// references it regardless of status. Active loans are silently discarded,
// not force-returned.
func (r *BookRepo) Delete(_ context.Context, id string) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	found := false
	kept := r.m.books[:0]
	for _, b := range r.m.books {
		if b.ID == id {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return catalog.ErrNotFound
	}
	r.m.books = kept

	keptLoans := make([]*borrow.Borrowing, 0, len(r.m.borrowings))
	for _, l := range r.m.borrowings {
		if l.BookID != id {
			keptLoans = append(keptLoans, l)
		}
	}
	r.m.borrowings = keptLoans
	return nil
}

func (r *BookRepo) Search(_ context.Context, query string) ([]catalog.Book, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	results := make([]catalog.Book, 0, len(r.m.books))
	blank := strings.TrimSpace(query) == ""
	for _, b := range r.m.books {
		if blank || b.Matches(query) {
			results = append(results, *b)
		}
	}
	return results, nil
}
