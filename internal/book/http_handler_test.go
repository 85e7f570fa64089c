package book

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bookreviews/internal/testutil"
)

func newTestHandler(t *testing.T) (*HTTPHandler, *MockRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	return NewHTTPHandler(service, zerolog.Nop()), mockRepo
}

func testBook() Book {
	return Book{
		ID:            primitive.NewObjectID(),
		Title:         "The Great Gatsby",
		Author:        "F. Scott Fitzgerald",
		Description:   "A classic American novel set in the Jazz Age.",
		PublishedYear: 1925,
		CreatedAt:     time.Now().UTC(),
	}
}

func TestHTTPHandler_List(t *testing.T) {
	t.Run("success with defaults", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			List(gomock.Any(), NewQuery("", "", 1, 10)).
			Return([]Book{testBook()}, 1, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, true, resp.Body["success"])
		assert.Equal(t, float64(1), resp.Body["count"])
		assert.Equal(t, float64(1), resp.Body["totalBooks"])
		assert.Equal(t, float64(1), resp.Body["totalPages"])
		assert.Equal(t, float64(1), resp.Body["currentPage"])
	})

	t.Run("normalizes search, sort, and pagination params", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			List(gomock.Any(), NewQuery("gatsby", "rating", 2, 2)).
			Return([]Book{}, 5, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/books?search=gatsby&sort=rating&page=2&limit=2", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, float64(5), resp.Body["totalBooks"])
		assert.Equal(t, float64(3), resp.Body["totalPages"])
		assert.Equal(t, float64(2), resp.Body["currentPage"])
	})

	t.Run("zero matches returns empty list and zero pages", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, 0, nil)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/books?search=nomatch", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, float64(0), resp.Body["count"])
		assert.Equal(t, float64(0), resp.Body["totalPages"])

		data, ok := resp.Body["data"].([]interface{})
		require.True(t, ok, "data must be an array, not null")
		assert.Empty(t, data)
	})

	t.Run("storage failure is a generic 500", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		mockRepo.EXPECT().
			List(gomock.Any(), gomock.Any()).
			Return(nil, 0, context.DeadlineExceeded)

		w := httptest.NewRecorder()
		handler.List(w, httptest.NewRequest(http.MethodGet, "/api/books", nil))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusInternalServerError, resp.Code)
		assert.Equal(t, false, resp.Body["success"])
		assert.Equal(t, "Internal server error", resp.Body["message"])
	})
}

func TestHTTPHandler_GetByID(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		b := testBook()
		mockRepo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/"+b.ID.Hex(), nil)
		r.SetPathValue("id", b.ID.Hex())

		handler.GetByID(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Equal(t, true, resp.Body["success"])

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, b.Title, data["title"])
		assert.Equal(t, float64(0), data["avgRating"])
		assert.Equal(t, float64(0), data["reviewCount"])
	})

	t.Run("malformed id fails before storage", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/not-hex", nil)
		r.SetPathValue("id", "not-hex")

		handler.GetByID(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Invalid book ID", resp.Body["message"])
	})

	t.Run("well-formed but unknown id is 404", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		id := primitive.NewObjectID()
		mockRepo.EXPECT().GetByID(gomock.Any(), id).Return(Book{}, ErrNotFound)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/"+id.Hex(), nil)
		r.SetPathValue("id", id.Hex())

		handler.GetByID(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, resp.Code)
		assert.Equal(t, "Book not found", resp.Body["message"])
	})
}

func TestHTTPHandler_Create(t *testing.T) {
	validInput := CreateInput{
		Title:         "The Great Gatsby",
		Author:        "F. Scott Fitzgerald",
		Description:   "A classic American novel set in the Jazz Age.",
		PublishedYear: 1925,
	}

	t.Run("success", func(t *testing.T) {
		handler, mockRepo := newTestHandler(t)
		created := testBook()
		mockRepo.EXPECT().Create(gomock.Any(), validInput).Return(created, nil)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/api/books", validInput))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusCreated, resp.Code)
		assert.Equal(t, true, resp.Body["success"])

		data := resp.Body["data"].(map[string]interface{})
		assert.Equal(t, created.ID.Hex(), data["id"])
		assert.Equal(t, "The Great Gatsby", data["title"])
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		handler.Create(w, testutil.NewRequest(http.MethodPost, "/api/books", CreateInput{Title: "Only a title"}))

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, false, resp.Body["success"])
		assert.Equal(t, "Author is required", resp.Body["message"])
	})

	t.Run("malformed body", func(t *testing.T) {
		handler, _ := newTestHandler(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/api/books", nil)
		handler.Create(w, r)

		resp := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, resp.Code)
		assert.Equal(t, "Invalid request body", resp.Body["message"])
	})
}
