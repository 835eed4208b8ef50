package taskclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrSessionExpired is returned by Session methods after the session has
// been cleared, either by Logout or by the server rejecting the token.
var ErrSessionExpired = errors.New("session expired")

// APIError represents an error response from the server.
type APIError struct {
	// StatusCode is the HTTP status code of the response
	StatusCode int

	// Message is the server-supplied error message
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// apiErrorFromResponse decodes the standard error body from a failed
// response. A body that is not valid JSON still yields a usable APIError.
func apiErrorFromResponse(resp *http.Response) *APIError {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || body.Error == "" {
		body.Error = http.StatusText(resp.StatusCode)
	}
	return &APIError{StatusCode: resp.StatusCode, Message: body.Error}
}
