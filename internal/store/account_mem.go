package store

import (
	"context"
	"strings"

	"libraryapi/internal/account"
)

type AccountRepo struct {
	m *Memory
}

func NewAccountRepo(m *Memory) *AccountRepo {
	return &AccountRepo{m: m}
}

var _ account.Repository = (*AccountRepo)(nil)

func (r *AccountRepo) Create(_ context.Context, a *account.Account) error {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, existing := range r.m.accounts {
		if strings.EqualFold(existing.Email, a.Email) {
			return account.ErrDuplicateEmail
		}
	}

	a.ID = r.m.newID()
	a.CreatedAt = r.m.now()
	stored := *a
	r.m.accounts = append(r.m.accounts, &stored)
	return nil
}

func (r *AccountRepo) GetByEmail(_ context.Context, email string) (account.Account, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, a := range r.m.accounts {
		if strings.EqualFold(a.Email, email) {
			return *a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}

func (r *AccountRepo) GetByID(_ context.Context, id string) (account.Account, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	for _, a := range r.m.accounts {
		if a.ID == id {
			return *a, nil
		}
	}
	return account.Account{}, account.ErrNotFound
}
