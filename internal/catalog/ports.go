package catalog

import (
	"context"
)

type Repository interface {
	// Insert assigns the book an ID and CreatedAt and stores it.
	Insert(ctx context.Context, b *Book) error
	GetByID(ctx context.Context, id string) (Book, error)
	// Delete removes the book and every borrowing that references it,
	// whatever the borrowing's status.
	Delete(ctx context.Context, id string) error
	// Search returns all books in insertion order when query is blank,
	// otherwise the books matching it (see Book.Matches), still in
	// insertion order.
	Search(ctx context.Context, query string) ([]Book, error)
}
