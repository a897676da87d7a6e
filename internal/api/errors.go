package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a normalized non-success backend response. Message carries the
// backend's raw error text so callers can surface it verbatim.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded %d %s", e.Status, http.StatusText(e.Status))
	}
	return fmt.Sprintf("backend responded %d: %s", e.Status, e.Message)
}

// ErrorMessage extracts the backend's error text from err, or returns
// fallback for transport-level failures with no server text.
func ErrorMessage(err error, fallback string) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
