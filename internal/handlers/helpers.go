package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"stadium-ticketing-platform/internal/models"
	"stadium-ticketing-platform/internal/services"
)

// errorResponse is the JSON shape of every error reply
type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

func decodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return models.ErrInvalidInput
	}
	return nil
}

// bearerToken extracts the bearer token from the Authorization header, if any
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if strings.HasPrefix(auth, "Bearer ") {
		return strings.TrimPrefix(auth, "Bearer ")
	}
	return ""
}

// errorStatus maps domain and upstream errors onto HTTP status codes.
// Anything unrecognized is treated as a local validation failure, which is
// what the checkout operations produce.
func errorStatus(err error) int {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	switch {
	case errors.Is(err, models.ErrListingNotFound),
		errors.Is(err, models.ErrLineNotFound),
		errors.Is(err, models.ErrBookingNotFound),
		errors.Is(err, models.ErrApplicationNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrInvalidTransition),
		errors.Is(err, models.ErrPurchaseInProgress),
		errors.Is(err, models.ErrInsufficientStock),
		errors.Is(err, models.ErrCartEmpty):
		return http.StatusConflict
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest
	}
	return http.StatusUnprocessableEntity
}

// errorMessage strips wrapping noise by using the API-provided message when
// one exists
func errorMessage(err error) string {
	var apiErr *services.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return err.Error()
}
