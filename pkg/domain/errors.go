package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is an application error that knows which HTTP status it should be
// served with. Repository and store code return these; the controller boundary
// translates them into the JSON error envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NotFoundf builds a 404 error.
func NotFoundf(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

// BadRequestf builds a 400 error.
func BadRequestf(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// UpstreamFailuref builds a 502 error for failures of the store or an
// external service.
func UpstreamFailuref(format string, args ...interface{}) *APIError {
	return &APIError{Status: http.StatusBadGateway, Message: fmt.Sprintf(format, args...)}
}

// StatusOf returns the HTTP status an error should be served with. Errors that
// are not APIErrors (possibly wrapped) map to 500.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Status
	}
	return http.StatusInternalServerError
}

// IsNotFound reports whether err is (or wraps) a 404 APIError.
func IsNotFound(err error) bool {
	return StatusOf(err) == http.StatusNotFound
}
