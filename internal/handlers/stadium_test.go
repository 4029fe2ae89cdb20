package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"stadium-ticketing-platform/internal/models"
	"stadium-ticketing-platform/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListCategories(t *testing.T) {
	h := NewStadiumHandler(services.NewMockCatalogService(), testLogger())

	w := httptest.NewRecorder()
	h.ListCategories(w, httptest.NewRequest(http.MethodGet, "/api/stadium/categories", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var categories []models.Category
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &categories))
	require.Len(t, categories, 4)
	assert.Equal(t, "Pitch Side", categories[0].Label)
	assert.Equal(t, 1480, categories[0].MinPrice)
}

func TestListTickets(t *testing.T) {
	h := NewStadiumHandler(services.NewMockCatalogService(), testLogger())

	w := httptest.NewRecorder()
	h.ListTickets(w, httptest.NewRequest(http.MethodGet, "/api/stadium/tickets", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var listings []*models.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listings))
	assert.Len(t, listings, 8)
}

func TestListTicketsFilteredByCategory(t *testing.T) {
	h := NewStadiumHandler(services.NewMockCatalogService(), testLogger())

	w := httptest.NewRecorder()
	h.ListTickets(w, httptest.NewRequest(http.MethodGet, "/api/stadium/tickets?category=2", nil))

	require.Equal(t, http.StatusOK, w.Code)

	var listings []*models.Listing
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &listings))
	require.NotEmpty(t, listings)
	for _, l := range listings {
		assert.Equal(t, models.CategoryLowerBowl, l.Category)
	}
}

func TestListTicketsInvalidCategory(t *testing.T) {
	h := NewStadiumHandler(services.NewMockCatalogService(), testLogger())

	for _, raw := range []string{"abc", "0", "9"} {
		w := httptest.NewRecorder()
		h.ListTickets(w, httptest.NewRequest(http.MethodGet, "/api/stadium/tickets?category="+raw, nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}
