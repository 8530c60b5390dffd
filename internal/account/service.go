package account

import (
	"context"
	"errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a new member account. New signups always get the member
// role; admin and librarian accounts are provisioned out of band.
func (s *Service) Register(ctx context.Context, email, name string) (Account, error) {
	_, err := s.repo.GetByEmail(ctx, email)
	if err == nil {
		return Account{}, ErrDuplicateEmail
	}
	if !errors.Is(err, ErrNotFound) {
		return Account{}, err
	}

	newAccount := &Account{
		Email: email,
		Name:  name,
		Role:  RoleMember,
	}
	if err := s.repo.Create(ctx, newAccount); err != nil {
		return Account{}, err
	}
	return *newAccount, nil
}

func (s *Service) GetByEmail(ctx context.Context, email string) (Account, error) {
	return s.repo.GetByEmail(ctx, email)
}

func (s *Service) GetByID(ctx context.Context, id string) (Account, error) {
	return s.repo.GetByID(ctx, id)
}
