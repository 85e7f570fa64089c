package book

import (
	"context"

	"bookreviews/internal/validate"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create validates the input against the shared field rules and persists the
// book. Duplicate titles and authors are permitted.
func (s *Service) Create(ctx context.Context, in CreateInput) (Book, error) {
	if err := validate.Struct(in); err != nil {
		return Book{}, err
	}
	return s.repo.Create(ctx, in)
}

// List returns one page of books matching the query, with review statistics
// computed per book, plus the total match count.
func (s *Service) List(ctx context.Context, q Query) ([]Book, int, error) {
	return s.repo.List(ctx, q)
}

// GetByID returns a single enriched book. The identifier shape is checked
// before the storage round trip; a malformed id fails with ErrInvalidID, a
// well-formed but unknown one with ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (Book, error) {
	oid, err := ParseID(id)
	if err != nil {
		return Book{}, err
	}
	return s.repo.GetByID(ctx, oid)
}
