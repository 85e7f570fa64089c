package review

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrBookNotFound is returned when the referenced book does not exist. The
// check runs before any review field validation.
var ErrBookNotFound = errors.New("book not found")

// ErrInvalidBookID is returned when the book identifier is not a valid
// ObjectID hex string.
var ErrInvalidBookID = errors.New("invalid book id")

// Review is a rating and comment submitted against exactly one book.
type Review struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	BookID       primitive.ObjectID `json:"book" bson:"book"`
	ReviewerName string             `json:"reviewerName" bson:"reviewerName"`
	Rating       int                `json:"rating" bson:"rating"`
	Comment      string             `json:"comment" bson:"comment"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// Summary is the projection returned when listing a book's reviews. The book
// reference and internal fields are omitted from the response.
type Summary struct {
	ReviewerName string    `json:"reviewerName" bson:"reviewerName"`
	Rating       int       `json:"rating" bson:"rating"`
	Comment      string    `json:"comment" bson:"comment"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// CreateInput carries the fields accepted when submitting a review. The
// validate tags are the single definition of the field constraints.
type CreateInput struct {
	ReviewerName string `json:"reviewerName" validate:"required,max=50"`
	Rating       int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment      string `json:"comment" validate:"required,min=3,max=1000"`
}
