package main

import (
	"context"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"bookreviews/internal/book"
	"bookreviews/internal/httpx"
	"bookreviews/internal/review"
	"bookreviews/internal/store"
)

func main() {
	_ = godotenv.Load(".env.local")

	logger := zerolog.New(os.Stderr).With().Timestamp().Str("service", "bookreviews").Logger()

	serverAddress := getEnv("APP_ADDR", ":8080")
	mongoURI := getEnv("MONGODB_URI", "mongodb://localhost:27017")
	mongoDB := getEnv("MONGODB_DB", "bookreviews")
	allowedOrigins := strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"), ",")
	rateLimitRPS := getEnvFloat("RATE_LIMIT_RPS", 50)
	rateLimitBurst := getEnvInt("RATE_LIMIT_BURST", 100)

	ctx := context.Background()

	client, err := store.Open(ctx, mongoURI)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot open mongodb connection")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	logger.Info().Msg("mongodb connection OK")

	db := client.Database(mongoDB)
	if err := store.EnsureIndexes(ctx, db); err != nil {
		logger.Fatal().Err(err).Msg("cannot ensure indexes")
	}

	bookRepository := store.NewBookMongo(db)
	reviewRepository := store.NewReviewMongo(db)

	bookService := book.NewService(bookRepository)
	reviewService := review.NewService(reviewRepository, bookRepository)

	bookHandler := book.NewHTTPHandler(bookService, logger)
	reviewHandler := review.NewHTTPHandler(reviewService, logger)

	router := newRouter(bookHandler, reviewHandler)

	rateLimit := httpx.NewRateLimitMiddleware(rateLimitRPS, rateLimitBurst)

	var handler http.Handler = router
	handler = httpx.RequestSizeLimitMiddleware(1 << 20)(handler)
	handler = rateLimit.Middleware(handler)
	handler = httpx.SecurityHeadersMiddleware(handler)
	handler = httpx.CORSMiddleware(allowedOrigins)(handler)
	handler = httpx.MetricsMiddleware(router)(handler)
	handler = httpx.RecoveryMiddleware(logger)(handler)
	handler = httpx.AccessLogMiddleware(logger)(handler)
	handler = httpx.RequestIDMiddleware(handler)

	httpServer := &http.Server{
		Addr:         serverAddress,
		Handler:      handler,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info().Str("addr", serverAddress).Msg("starting server")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal().Err(err).Msg("server error")
	}
}

func newRouter(bookHandler *book.HTTPHandler, reviewHandler *review.HTTPHandler) *http.ServeMux {
	router := http.NewServeMux()

	router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Server is running",
		})
	})
	router.Handle("GET /metrics", promhttp.Handler())

	router.HandleFunc("POST /api/books", bookHandler.Create)
	router.HandleFunc("GET /api/books", bookHandler.List)
	router.HandleFunc("GET /api/books/{id}", bookHandler.GetByID)

	router.HandleFunc("POST /api/books/{bookId}/reviews", reviewHandler.Create)
	router.HandleFunc("GET /api/books/{bookId}/reviews", reviewHandler.ListByBook)

	// Everything unmatched answers with the JSON 404 shape, not a plain text body.
	router.Handle("/", httpx.NotFoundHandler())

	return router
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}
