package book

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the contract for book storage.
type Repository interface {
	Create(ctx context.Context, in CreateInput) (Book, error)
	List(ctx context.Context, q Query) ([]Book, int, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (Book, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}
