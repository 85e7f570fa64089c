// Creates the indexes the API relies on. Safe to run repeatedly. The API
// server also ensures indexes at startup; this command covers deployments
// where the server user lacks index privileges.
package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"bookreviews/internal/store"
)

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

	if err := store.EnsureIndexes(ctx, client.Database(mongoDB)); err != nil {
		logger.Fatal().Err(err).Msg("cannot create indexes")
	}

	logger.Info().Msg("indexes created")
}
