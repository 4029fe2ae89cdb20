package services

import (
	"encoding/json"
	"fmt"
)

// APIError is a non-2xx response from the remote ticketing API. Message
// carries the server-provided text so handlers can surface it verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// decodeAPIError turns an error response body into an APIError. The remote
// API reports failures as {"message": "..."}; anything else falls back to
// the raw body.
func decodeAPIError(statusCode int, body []byte) *APIError {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return &APIError{StatusCode: statusCode, Message: payload.Message}
	}
	return &APIError{StatusCode: statusCode, Message: string(body)}
}
