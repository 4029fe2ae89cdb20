package handlers

import (
	"net/http"

	"stadium-ticketing-platform/internal/models"
	"stadium-ticketing-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

// VisasHandler proxies visa application operations to the remote
// visa-applications API. Applying is open to any caller; the review
// operations require a bearer token, which the remote API authorizes.
type VisasHandler struct {
	visas  services.VisaServiceInterface
	logger *logrus.Logger
}

// NewVisasHandler creates a new visas handler
func NewVisasHandler(visas services.VisaServiceInterface, logger *logrus.Logger) *VisasHandler {
	return &VisasHandler{visas: visas, logger: logger}
}

// Apply submits a new visa application
func (h *VisasHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req models.VisaApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	application, err := h.visas.Apply(r.Context(), bearerToken(r), &req)
	if err != nil {
		h.logger.WithError(err).Error("failed to submit visa application")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusCreated, application)
}

// ListApplications returns all visa applications
func (h *VisasHandler) ListApplications(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	applications, err := h.visas.ListApplications(r.Context(), token)
	if err != nil {
		h.logger.WithError(err).Error("failed to list visa applications")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, applications)
}

// GetApplication returns a single visa application
func (h *VisasHandler) GetApplication(w http.ResponseWriter, r *http.Request) {
	application, err := h.visas.GetApplication(r.Context(), bearerToken(r), chi.URLParam(r, "applicationID"))
	if err != nil {
		h.logger.WithError(err).Error("failed to load visa application")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, application)
}

// UpdateStatus moves an application through its review states
func (h *VisasHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req models.VisaStatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	application, err := h.visas.UpdateApplicationStatus(r.Context(), token, chi.URLParam(r, "applicationID"), &req)
	if err != nil {
		h.logger.WithError(err).Error("failed to update visa application")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusOK, application)
}

// DeleteApplication removes a visa application
func (h *VisasHandler) DeleteApplication(w http.ResponseWriter, r *http.Request) {
	token := bearerToken(r)
	if token == "" {
		respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.visas.DeleteApplication(r.Context(), token, chi.URLParam(r, "applicationID")); err != nil {
		h.logger.WithError(err).Error("failed to delete visa application")
		respondError(w, errorStatus(err), errorMessage(err))
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}
