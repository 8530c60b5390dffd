package stats

import (
	"context"
)

// Summary holds the dashboard counters, all pure aggregations over the
// current store contents.
type Summary struct {
	TotalBooks      int `json:"total_books"`
	AvailableCopies int `json:"available_copies"`
	ActiveLoans     int `json:"active_loans"`
	Categories      int `json:"categories"`
}

type Repository interface {
	Summary(ctx context.Context) (Summary, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.repo.Summary(ctx)
}
