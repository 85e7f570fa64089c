package review

import (
	"encoding/json"
	"errors"
	"net/http"

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
	Success bool      `json:"success"`
	Count   int       `json:"count"`
	Data    []Summary `json:"data"`
}

// Create handles POST /api/books/{bookId}/reviews.
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var in CreateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	created, err := h.service.Create(r.Context(), r.PathValue("bookId"), in)
	if err != nil {
		h.writeError(w, r, err, "create review failed")
		return
	}

	httpx.JSONSuccessCreated(w, created)
}

// ListByBook handles GET /api/books/{bookId}/reviews.
func (h *HTTPHandler) ListByBook(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ListByBook(r.Context(), r.PathValue("bookId"))
	if err != nil {
		h.writeError(w, r, err, "list reviews failed")
		return
	}
	if reviews == nil {
		reviews = []Summary{}
	}

	httpx.WriteJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(reviews),
		Data:    reviews,
	})
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error, logMsg string) {
	var verrs validate.Errors
	switch {
	case errors.Is(err, ErrInvalidBookID):
		httpx.JSONError(w, http.StatusBadRequest, "Invalid book ID")
	case errors.Is(err, ErrBookNotFound):
		httpx.JSONError(w, http.StatusNotFound, "Book not found")
	case errors.As(err, &verrs):
		httpx.JSONError(w, http.StatusBadRequest, verrs.Error())
	default:
		h.logger.Error().Err(err).Str("request_id", httpx.RequestIDFrom(r)).Msg(logMsg)
		httpx.JSONError(w, http.StatusInternalServerError, "Internal server error")
	}
}
