package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"bookreviews/internal/book"
)

// BookMongo is the MongoDB-backed book repository.
type BookMongo struct {
	books *mongo.Collection
}

func NewBookMongo(db *mongo.Database) *BookMongo {
	return &BookMongo{books: db.Collection(booksCollection)}
}

// bookDoc is the stored shape. Derived fields (avgRating, reviewCount,
// latestReview) are never persisted; they exist only in pipeline output.
type bookDoc struct {
	ID            primitive.ObjectID `bson:"_id"`
	Title         string             `bson:"title"`
	Author        string             `bson:"author"`
	Description   string             `bson:"description"`
	PublishedYear int                `bson:"publishedYear"`
	CreatedAt     time.Time          `bson:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt"`
}

func (r *BookMongo) Create(ctx context.Context, in book.CreateInput) (book.Book, error) {
	now := time.Now().UTC()
	doc := bookDoc{
		ID:            primitive.NewObjectID(),
		Title:         in.Title,
		Author:        in.Author,
		Description:   in.Description,
		PublishedYear: in.PublishedYear,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := r.books.InsertOne(ctx, doc); err != nil {
		return book.Book{}, fmt.Errorf("insert book: %w", err)
	}

	return book.Book{
		ID:            doc.ID,
		Title:         doc.Title,
		Author:        doc.Author,
		Description:   doc.Description,
		PublishedYear: doc.PublishedYear,
		CreatedAt:     doc.CreatedAt,
		UpdatedAt:     doc.UpdatedAt,
	}, nil
}

func (r *BookMongo) List(ctx context.Context, q book.Query) ([]book.Book, int, error) {
	cursor, err := r.books.Aggregate(ctx, BookListPipeline(q))
	if err != nil {
		return nil, 0, fmt.Errorf("aggregate books: %w", err)
	}
	defer cursor.Close(ctx)

	var books []book.Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, 0, fmt.Errorf("decode books: %w", err)
	}

	filter := SearchFilter(q.Search)
	total, err := r.books.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}

	return books, int(total), nil
}

func (r *BookMongo) GetByID(ctx context.Context, id primitive.ObjectID) (book.Book, error) {
	cursor, err := r.books.Aggregate(ctx, BookByIDPipeline(id))
	if err != nil {
		return book.Book{}, fmt.Errorf("aggregate book: %w", err)
	}
	defer cursor.Close(ctx)

	var books []book.Book
	if err := cursor.All(ctx, &books); err != nil {
		return book.Book{}, fmt.Errorf("decode book: %w", err)
	}
	if len(books) == 0 {
		return book.Book{}, book.ErrNotFound
	}

	return books[0], nil
}

func (r *BookMongo) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	opts := options.FindOne().SetProjection(bson.D{{Key: "_id", Value: 1}})
	err := r.books.FindOne(ctx, bson.D{{Key: "_id", Value: id}}, opts).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("find book: %w", err)
	}
	return true, nil
}
