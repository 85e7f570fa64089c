// Package store implements the MongoDB repositories. The aggregation
// pipelines that enrich books with review statistics are built by pure
// functions in book_pipeline.go so the query plans are testable without a
// database round trip.
package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	booksCollection   = "books"
	reviewsCollection = "reviews"
)

// Open connects a pooled client once at process start and verifies the
// deployment is reachable. Per-request acquisition is handled by the driver's
// internal pool; callers close the client on shutdown.
func Open(ctx context.Context, uri string) (*mongo.Client, error) {
	connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongodb: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}

	return client, nil
}

// EnsureIndexes creates the indexes the query paths rely on: a text index
// over book title and author for search, and a compound (book, createdAt
// desc) index backing the newest-first review listing.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(booksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "title", Value: "text"},
			{Key: "author", Value: "text"},
		},
	})
	if err != nil {
		return fmt.Errorf("create book text index: %w", err)
	}

	_, err = db.Collection(reviewsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "book", Value: 1},
			{Key: "createdAt", Value: -1},
		},
	})
	if err != nil {
		return fmt.Errorf("create review index: %w", err)
	}

	return nil
}
