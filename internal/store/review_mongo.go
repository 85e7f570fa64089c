package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookreviews/internal/review"
)

// ReviewMongo is the MongoDB-backed review repository.
type ReviewMongo struct {
	reviews *mongo.Collection
}

func NewReviewMongo(db *mongo.Database) *ReviewMongo {
	return &ReviewMongo{reviews: db.Collection(reviewsCollection)}
}

type reviewDoc struct {
	ID           primitive.ObjectID `bson:"_id"`
	Book         primitive.ObjectID `bson:"book"`
	ReviewerName string             `bson:"reviewerName"`
	Rating       int                `bson:"rating"`
	Comment      string             `bson:"comment"`
	CreatedAt    time.Time          `bson:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt"`
}

func (r *ReviewMongo) Create(ctx context.Context, bookID primitive.ObjectID, in review.CreateInput) (review.Review, error) {
	now := time.Now().UTC()
	doc := reviewDoc{
		ID:           primitive.NewObjectID(),
		Book:         bookID,
		ReviewerName: in.ReviewerName,
		Rating:       in.Rating,
		Comment:      in.Comment,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := r.reviews.InsertOne(ctx, doc); err != nil {
		return review.Review{}, fmt.Errorf("insert review: %w", err)
	}

	return review.Review{
		ID:           doc.ID,
		BookID:       doc.Book,
		ReviewerName: doc.ReviewerName,
		Rating:       doc.Rating,
		Comment:      doc.Comment,
		CreatedAt:    doc.CreatedAt,
		UpdatedAt:    doc.UpdatedAt,
	}, nil
}

// ListByBook returns a book's reviews newest first, projected down to the
// fields the response exposes. The (book, createdAt desc) index backs both
// the filter and the ordering.
func (r *ReviewMongo) ListByBook(ctx context.Context, bookID primitive.ObjectID) ([]review.Summary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetProjection(bson.D{
			{Key: "_id", Value: 0},
			{Key: "reviewerName", Value: 1},
			{Key: "rating", Value: 1},
			{Key: "comment", Value: 1},
			{Key: "createdAt", Value: 1},
		})

	cursor, err := r.reviews.Find(ctx, bson.D{{Key: "book", Value: bookID}}, opts)
	if err != nil {
		return nil, fmt.Errorf("find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []review.Summary
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("decode reviews: %w", err)
	}

	return reviews, nil
}
