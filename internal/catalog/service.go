package catalog

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Add stores a new catalog entry. All copies start available.
func (s *Service) Add(ctx context.Context, draft Draft) (Book, error) {
	newBook := &Book{
		Title:           draft.Title,
		Author:          draft.Author,
		ISBN:            draft.ISBN,
		Category:        draft.Category,
		Description:     draft.Description,
		CoverImage:      draft.CoverImage,
		TotalCopies:     draft.TotalCopies,
		AvailableCopies: draft.TotalCopies,
		PublishedYear:   draft.PublishedYear,
	}
	if err := s.repo.Insert(ctx, newBook); err != nil {
		return Book{}, err
	}
	return *newBook, nil
}

// Delete removes a book. Borrowings referencing it are dropped with it,
// including active ones; outstanding loans are not force-returned.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	return s.repo.GetByID(ctx, id)
}

// Search treats a blank or whitespace-only query as "list everything".
// A non-blank query is matched as typed, spaces included.
func (s *Service) Search(ctx context.Context, query string) ([]Book, error) {
	return s.repo.Search(ctx, query)
}
