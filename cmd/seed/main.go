// Seeds the database with sample books and reviews. Existing data in both
// collections is cleared first.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson"

	"bookreviews/internal/book"
	"bookreviews/internal/review"
	"bookreviews/internal/store"
)

var sampleBooks = []book.CreateInput{
	{
		Title:         "The Great Gatsby",
		Author:        "F. Scott Fitzgerald",
		Description:   "A classic American novel set in the Jazz Age, exploring themes of wealth, love, and the American Dream.",
		PublishedYear: 1925,
	},
	{
		Title:         "To Kill a Mockingbird",
		Author:        "Harper Lee",
		Description:   "A gripping tale of racial injustice and childhood innocence in the American South.",
		PublishedYear: 1960,
	},
	{
		Title:         "1984",
		Author:        "George Orwell",
		Description:   "A dystopian social science fiction novel about totalitarian control and surveillance.",
		PublishedYear: 1949,
	},
	{
		Title:         "Pride and Prejudice",
		Author:        "Jane Austen",
		Description:   "A romantic novel that critiques the British landed gentry at the end of the 18th century.",
		PublishedYear: 1813,
	},
	{
		Title:         "The Catcher in the Rye",
		Author:        "J.D. Salinger",
		Description:   "A controversial novel about teenage rebellion and alienation in post-war America.",
		PublishedYear: 1951,
	},
}

// sampleReviews maps a book index in sampleBooks to its reviews.
var sampleReviews = map[int][]review.CreateInput{
	0: {
		{ReviewerName: "Alice Johnson", Rating: 5, Comment: "A masterpiece! Fitzgerald's writing is absolutely beautiful and the story is timeless."},
		{ReviewerName: "Bob Smith", Rating: 4, Comment: "Great read, highly recommend. The symbolism is incredible."},
	},
	1: {
		{ReviewerName: "Carol White", Rating: 5, Comment: "Powerful and moving story that everyone should read. Changed my perspective."},
		{ReviewerName: "David Brown", Rating: 5, Comment: "An important book that deals with serious themes in an accessible way."},
	},
	2: {
		{ReviewerName: "Emma Davis", Rating: 4, Comment: "Scary how relevant this book still is today. Orwell was ahead of his time."},
	},
	3: {
		{ReviewerName: "Frank Wilson", Rating: 4, Comment: "Witty and charming. Austen's character development is superb."},
	},
}

func main() {
	_ = godotenv.Load(".env.local")

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()

	mongoURI := os.Getenv("MONGODB_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}
	mongoDB := os.Getenv("MONGODB_DB")
	if mongoDB == "" {
		mongoDB = "bookreviews"
	}

	ctx := context.Background()

	client, err := store.Open(ctx, mongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot open mongodb connection")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	db := client.Database(mongoDB)

	if _, err := db.Collection("books").DeleteMany(ctx, bson.D{}); err != nil {
		logger.Fatal().Err(err).Msg("cannot clear books")
	}
	if _, err := db.Collection("reviews").DeleteMany(ctx, bson.D{}); err != nil {
		logger.Fatal().Err(err).Msg("cannot clear reviews")
	}
	logger.Info().Msg("cleared existing data")

	bookRepo := store.NewBookMongo(db)
	reviewRepo := store.NewReviewMongo(db)

	reviewCount := 0
	for i, in := range sampleBooks {
		created, err := bookRepo.Create(ctx, in)
		if err != nil {
			logger.Fatal().Err(err).Str("title", in.Title).Msg("cannot insert book")
		}
		for _, rv := range sampleReviews[i] {
			if _, err := reviewRepo.Create(ctx, created.ID, rv); err != nil {
				logger.Fatal().Err(err).Str("title", in.Title).Msg("cannot insert review")
			}
			reviewCount++
		}
	}

	logger.Info().
		Int("books", len(sampleBooks)).
		Int("reviews", reviewCount).
		Msg("database seeded")
}
