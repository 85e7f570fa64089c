package review

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookreviews/internal/validate"
)

// Service provides review-related business logic.
type Service struct {
	repo  Repository
	books BookChecker
}

// NewService creates a new review service.
func NewService(repo Repository, books BookChecker) *Service {
	return &Service{repo: repo, books: books}
}

// Create submits a review for a book. The checks run in a fixed order:
// identifier shape, then book existence, then field validation. A review can
// never reference a nonexistent book.
func (s *Service) Create(ctx context.Context, bookID string, in CreateInput) (Review, error) {
	oid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return Review{}, ErrInvalidBookID
	}

	exists, err := s.books.Exists(ctx, oid)
	if err != nil {
		return Review{}, err
	}
	if !exists {
		return Review{}, ErrBookNotFound
	}

	if err := validate.Struct(in); err != nil {
		return Review{}, err
	}

	return s.repo.Create(ctx, oid, in)
}

// ListByBook returns all of a book's reviews, newest first. Identifier shape
// and book existence are checked with the same precedence as Create.
func (s *Service) ListByBook(ctx context.Context, bookID string) ([]Summary, error) {
	oid, err := primitive.ObjectIDFromHex(bookID)
	if err != nil {
		return nil, ErrInvalidBookID
	}

	exists, err := s.books.Exists(ctx, oid)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrBookNotFound
	}

	return s.repo.ListByBook(ctx, oid)
}
