package pocketcast

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrInvalidCredentials is returned when the credentials are malformed
// or rejected by the login endpoint.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUnauthorized is returned when the API refuses the bearer token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when the requested entity does not exist.
var ErrNotFound = errors.New("not found")

// ErrMissingPodcastUUID is returned when an episode action cannot
// resolve the podcast the episode belongs to.
var ErrMissingPodcastUUID = errors.New("episode has no podcast UUID")

// APIError describes a non-2xx response from the Pocket Casts API.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Endpoint is the path the request was sent to.
	Endpoint string

	// Message is the server-provided error message, if any.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("pocketcasts: %s returned %d: %s", e.Endpoint, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("pocketcasts: %s returned %d", e.Endpoint, e.StatusCode)
}

// Unwrap maps well-known statuses to sentinel errors so callers can use
// errors.Is without inspecting status codes.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	}
	return nil
}

// apiErrorBody is the JSON error envelope used by the API.
type apiErrorBody struct {
	Message string `json:"errorMessage"`
}

func newAPIError(endpoint string, statusCode int, body *apiErrorBody) *APIError {
	apiErr := &APIError{
		StatusCode: statusCode,
		Endpoint:   endpoint,
	}
	if body != nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
