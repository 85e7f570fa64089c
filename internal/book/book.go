package book

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a book is not found.
var ErrNotFound = errors.New("book not found")

// ErrInvalidID is returned when an identifier is not a valid ObjectID hex string.
var ErrInvalidID = errors.New("invalid book id")

// Book represents a catalogued book, enriched with review statistics at read time.
type Book struct {
	ID            primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title         string             `json:"title" bson:"title"`
	Author        string             `json:"author" bson:"author"`
	Description   string             `json:"description" bson:"description"`
	PublishedYear int                `json:"publishedYear" bson:"publishedYear"`
	AvgRating     float64            `json:"avgRating" bson:"avgRating"`
	ReviewCount   int                `json:"reviewCount" bson:"reviewCount"`
	LatestReview  *ReviewSummary     `json:"latestReview" bson:"latestReview"`
	CreatedAt     time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt,omitempty" bson:"updatedAt,omitempty"`
}

// ReviewSummary is the projection of a book's most recent review.
type ReviewSummary struct {
	ReviewerName string    `json:"reviewerName" bson:"reviewerName"`
	Rating       int       `json:"rating" bson:"rating"`
	Comment      string    `json:"comment" bson:"comment"`
	CreatedAt    time.Time `json:"createdAt" bson:"createdAt"`
}

// CreateInput carries the fields accepted when creating a book. The validate
// tags are the single definition of the field constraints, shared by the API
// boundary and the test suite.
type CreateInput struct {
	Title         string `json:"title" validate:"required,max=200"`
	Author        string `json:"author" validate:"required,max=100"`
	Description   string `json:"description" validate:"required,max=2000"`
	PublishedYear int    `json:"publishedYear" validate:"required,gte=1000,currentyear"`
}

// ParseID validates the identifier shape before any storage round trip.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
