package store

import (
	"context"

	"libraryapi/internal/borrow"
	"libraryapi/internal/stats"
)

type StatsRepo struct {
	m *Memory
}

func NewStatsRepo(m *Memory) *StatsRepo {
	return &StatsRepo{m: m}
}

var _ stats.Repository = (*StatsRepo)(nil)

func (r *StatsRepo) Summary(_ context.Context) (stats.Summary, error) {
	r.m.mu.Lock()
	defer r.m.mu.Unlock()

	var s stats.Summary
	categories := make(map[string]struct{})
	for _, b := range r.m.books {
		s.TotalBooks++
		s.AvailableCopies += b.AvailableCopies
		categories[b.Category] = struct{}{}
	}
	s.Categories = len(categories)

	for _, l := range r.m.borrowings {
		if l.Status == borrow.StatusBorrowed {
			s.ActiveLoans++
		}
	}
	return s, nil
}
