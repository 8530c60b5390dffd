package account

import (
	"context"
)

type Repository interface {
	// Create assigns the account an ID and CreatedAt and stores it.
	Create(ctx context.Context, a *Account) error
	// GetByEmail matches the email case-insensitively.
	GetByEmail(ctx context.Context, email string) (Account, error)
	GetByID(ctx context.Context, id string) (Account, error)
}
