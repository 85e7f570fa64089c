package httpx

import (
	"encoding/json"
	"net/http"
)

// SuccessResponse is the envelope for every successful response.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the envelope for every failure response.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// WriteJSON writes v as a JSON body with the given status code. Handlers with
// list metadata build their own envelope and pass it here.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// JSONSuccess writes a 200 success envelope.
func JSONSuccess(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusOK, SuccessResponse{Success: true, Data: data})
}

// JSONSuccessCreated writes a 201 success envelope.
func JSONSuccessCreated(w http.ResponseWriter, data interface{}) {
	WriteJSON(w, http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

// JSONError writes a failure envelope with the given status code.
func JSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Success: false, Message: message})
}

// NotFoundHandler answers every unmatched route.
func NotFoundHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		JSONError(w, http.StatusNotFound, "Route not found")
	})
}
