package review

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the contract for review storage.
type Repository interface {
	Create(ctx context.Context, bookID primitive.ObjectID, in CreateInput) (Review, error)
	ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]Summary, error)
}

// BookChecker answers whether a book exists. Satisfied by the book repository.
type BookChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}
