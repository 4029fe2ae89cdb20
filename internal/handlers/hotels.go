package handlers

import (
	"net/http"

	"stadium-ticketing-platform/internal/models"
	"stadium-ticketing-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// HotelsHandler proxies hotel booking operations to the remote hotels API
type HotelsHandler struct {
	hotels services.HotelServiceInterface
	logger *logrus.Logger
}

// NewHotelsHandler creates a new hotels handler
func NewHotelsHandler(hotels services.HotelServiceInterface, logger *logrus.Logger) *HotelsHandler {
	return &HotelsHandler{hotels: hotels, logger: logger}
}

// CreateBooking creates a hotel booking
func (h *HotelsHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req models.HotelBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	booking, err := h.hotels.CreateBooking(r.Context(), bearerToken(r), &req)
	if err != nil {
		h.logger.WithError(err).Error("failed to create hotel booking")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusCreated, booking)
}

// ListBookings returns a user's hotel bookings
func (h *HotelsHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.hotels.GetUserBookings(r.Context(), bearerToken(r), chi.URLParam(r, "userID"))
	if err != nil {
		h.logger.WithError(err).Error("failed to list hotel bookings")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, bookings)
}
