package handlers

import (
	"net/http"

	"stadium-ticketing-platform/internal/models"
	"stadium-ticketing-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// AdminHandler proxies the back-office listing operations to the remote
// catalog API. Authorization is enforced by the remote API; the bearer token
// is passed through untouched.
type AdminHandler struct {
	catalog services.CatalogServiceInterface
	logger  *logrus.Logger
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(catalog services.CatalogServiceInterface, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{catalog: catalog, logger: logger}
}

// CreateListing creates a stadium listing
func (h *AdminHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.ListingCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	listing, err := h.catalog.CreateStadiumTicket(r.Context(), token, &req)
	if err != nil {
		h.logger.WithError(err).Error("failed to create listing")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusCreated, listing)
}

// UpdateListing updates a stadium listing
func (h *AdminHandler) UpdateListing(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.ListingUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	listing, err := h.catalog.UpdateStadiumTicket(r.Context(), token, chi.URLParam(r, "listingID"), &req)
	if err != nil {
		h.logger.WithError(err).Error("failed to update listing")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, listing)
}

// DeleteListing deletes a stadium listing
func (h *AdminHandler) DeleteListing(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.catalog.DeleteStadiumTicket(r.Context(), token, chi.URLParam(r, "listingID")); err != nil {
		h.logger.WithError(err).Error("failed to delete listing")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
