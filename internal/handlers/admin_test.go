package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stadium-ticketing-platform/internal/models"
	"stadium-ticketing-platform/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adminRouter(catalog services.CatalogServiceInterface) chi.Router {
	h := NewAdminHandler(catalog, testLogger())
	r := chi.NewRouter()
	r.Post("/", h.CreateListing)
	r.Put("/{listingID}", h.UpdateListing)
	r.Delete("/{listingID}", h.DeleteListing)
	return r
}

func TestCreateListingRequiresToken(t *testing.T) {
	r := adminRouter(services.NewMockCatalogService())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{}`))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateListing(t *testing.T) {
	r := adminRouter(services.NewMockCatalogService())

	body, err := json.Marshal(models.ListingCreateRequest{
		Section:          "Section Z1",
		Row:              "Row 1",
		Category:         models.CategoryMidTier,
		Price:            250,
		TicketsAvailable: 5,
		Rating:           8.0,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var listing models.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listing))
	assert.NotEmpty(t, listing.ID)
	assert.Equal(t, "Section Z1", listing.Section)
}

func TestCreateListingInvalidPayload(t *testing.T) {
	r := adminRouter(services.NewMockCatalogService())

	body, err := json.Marshal(models.ListingCreateRequest{
		Section:  "Section Z1",
		Category: models.CategoryMidTier,
		Price:    0,
	})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestDeleteListing(t *testing.T) {
	catalog := services.NewMockCatalogService()
	r := adminRouter(catalog)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/l8", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodDelete, "/l8", nil)
	req.Header.Set("Authorization", "Bearer admin-token")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
