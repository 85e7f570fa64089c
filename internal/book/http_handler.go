package book

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"bookreviews/internal/httpx"
	"bookreviews/internal/validate"
)

type HTTPHandler struct {
	service *Service
	logger  zerolog.Logger
}

func NewHTTPHandler(service *Service, logger zerolog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

type listResponse struct {
	Success     bool   `json:"success"`
	Count       int    `json:"count"`
	TotalBooks  int    `json:"totalBooks"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
	Data        []Book `json:"data"`
}

// Create handles POST /api/books.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), in)
	if err != nil {
		var verrs validate.Errors
		if errors.As(err, &verrs) {
			httpx.JSONError(w, http.StatusBadRequest, verrs.Error())
			return
		}
		h.logger.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("create book failed")
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	httpx.JSONSuccessCreated(w, created)
}

// List handles GET /api/books with search, sort, and pagination parameters.
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	q := NewQuery(
		r.URL.Query().Get("search"),
		r.URL.Query().Get("sort"),
		page,
		limit,
	)

	books, total, err := h.service.List(r.Context(), q)
	if err != nil {
		h.logger.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("list books failed")
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if books == nil {
		books = []Book{}
	}

	httpx.WriteJSON(w, http.StatusOK, listResponse{
		Success:     true,
		Count:       len(books),
		TotalBooks:  total,
		TotalPages:  q.TotalPages(total),
		CurrentPage: q.Page,
		Data:        books,
	})
}

// GetByID handles GET /api/books/{id}.
func (h *HTTPHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	b, err := h.service.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidID):
			httpx.JSONError(w, http.StatusBadRequest, "Invalid book ID")
		case errors.Is(err, ErrNotFound):
			httpx.JSONError(w, http.StatusNotFound, "Book not found")
		default:
			h.logger.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg("get book failed")
			httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
		}
		return
	}

	httpx.JSONSuccess(w, b)
}
