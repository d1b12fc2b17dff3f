package api

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnavailable marks transport-level failures: the backend could not
	// be reached at all (dial error, timeout).
	ErrUnavailable = errors.New("server unavailable")

	// ErrNoClaim is returned when a bearer token carries no usable value
	// for the requested claim.
	ErrNoClaim = errors.New("claim not present in token")
)

// APIError is the single failure kind for non-2xx responses. Message is
// always human-readable; Status carries the HTTP code for callers that care.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// decodeError normalizes a non-2xx response body into an *APIError.
// The backend's error shape is {"detail": "..."}; anything else (an HTML
// error page from a proxy, a truncated body) degrades to a generic message
// rather than failing the caller a second time.
func decodeError(status int, body []byte) error {
	var e struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return &APIError{Status: status, Message: "unknown error"}
	}
	if e.Detail == "" {
		return &APIError{Status: status, Message: fmt.Sprintf("request failed with status %d", status)}
	}
	return &APIError{Status: status, Message: e.Detail}
}
