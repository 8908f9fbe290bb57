package api

import (
	"encoding/json"
	"net/http"

	"github.com/adfharrison1/stock-tracker/pkg/domain"
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Message string   `json:"message"`
	Errors  []string `json:"errors,omitempty"`
}

// WriteJSONError writes a JSON error response with the given status code and
// message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Message: message})
}

// WriteError translates an application error into the envelope, using the
// status the error carries (500 for untyped errors).
func WriteError(w http.ResponseWriter, err error) {
	WriteJSONError(w, domain.StatusOf(err), err.Error())
}

// WriteJSON writes a successful JSON response.
func WriteJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(v)
}
