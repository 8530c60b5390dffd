package borrow

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Borrow creates a loan of the book for the user.
func (s *Service) Borrow(ctx context.Context, userID, bookID string) (Borrowing, error) {
	if userID == "" {
		return Borrowing{}, ErrNoActiveUser
	}
	return s.repo.Borrow(ctx, userID, bookID)
}

// Return closes the loan and restores the book's availability.
func (s *Service) Return(ctx context.Context, borrowingID string) (Borrowing, error) {
	return s.repo.Return(ctx, borrowingID)
}

// ListForUser returns the user's loan history, joined books attached.
func (s *Service) ListForUser(ctx context.Context, userID string) ([]Borrowing, error) {
	if userID == "" {
		return nil, ErrNoActiveUser
	}
	return s.repo.ListForUser(ctx, userID)
}
