package handlers

import (
	"net/http"
	"strconv"

	"stadium-ticketing-platform/internal/models"
	"stadium-ticketing-platform/internal/services"

	"github.com/sirupsen/logrus"
)

// StadiumHandler serves the browse surface: seating tiers and ticket listings
type StadiumHandler struct {
	catalog services.CatalogServiceInterface
	logger  *logrus.Logger
}

// NewStadiumHandler creates a new stadium handler
func NewStadiumHandler(catalog services.CatalogServiceInterface, logger *logrus.Logger) *StadiumHandler {
	return &StadiumHandler{catalog: catalog, logger: logger}
}

// ListCategories returns the fixed seating tiers
func (h *StadiumHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.Categories())
}

// ListTickets returns stadium listings, optionally filtered by seating tier
func (h *StadiumHandler) ListTickets(w http.ResponseWriter, r *http.Request) {
	listings, err := h.catalog.ListStadiumTickets(r.Context())
	if err != nil {
		h.logger.WithError(err).Error("failed to load stadium listings")
		respondError(w, http.StatusBadGateway, "failed to load listings")
		return
	}

	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || !models.CategoryID(id).Valid() {
			respondError(w, http.StatusBadRequest, "invalid category")
			return
		}
		filtered := listings[:0]
		for _, l := range listings {
			if l.Category == models.CategoryID(id) {
				filtered = append(filtered, l)
			}
		}
		listings = filtered
	}

	respondJSON(w, http.StatusOK, listings)
}
