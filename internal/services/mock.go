package services

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"stadium-ticketing-platform/internal/checkout"
	"stadium-ticketing-platform/internal/models"

	"github.com/google/uuid"
)

// MockCatalogService provides an in-memory catalog for testing/demo, seeded
// with a realistic set of stadium listings
type MockCatalogService struct {
	mu       sync.Mutex
	listings []*models.Listing
	nextID   int
}

// NewMockCatalogService creates a catalog seeded with demo listings
func NewMockCatalogService() *MockCatalogService {
	return &MockCatalogService{
		listings: []*models.Listing{
			{ID: "l1", Section: "Section A1", Row: "Row 3", Category: models.CategoryPitchSide, Price: 1480, TicketsAvailable: 2, Rating: 9.8, Tag: models.TagBestPrice, View: "Pitch-level view"},
			{ID: "l2", Section: "Section B4", Row: "Row 7", Category: models.CategoryLowerBowl, Price: 620, TicketsAvailable: 4, Rating: 9.5, Tag: models.TagBestDeal, View: "Clear view"},
			{ID: "l3", Section: "Section C10", Row: "Row 12", Category: models.CategoryMidTier, Price: 303, TicketsAvailable: 2, Rating: 8.6, Tag: models.TagBestPrice, View: "Clear view"},
			{ID: "l4", Section: "Upper Perch", Row: "Row 1", Category: models.CategoryUpperDeck, Price: 575, TicketsAvailable: 2, Rating: 9.9, Tag: models.TagBestView, View: "Panoramic"},
			{ID: "l5", Section: "Section D2", Row: "Row 5", Category: models.CategoryLowerBowl, Price: 810, TicketsAvailable: 6, Rating: 8.9, Tag: models.TagNone, View: "Clear view"},
			{ID: "l6", Section: "Section E7", Row: "Row 9", Category: models.CategoryMidTier, Price: 390, TicketsAvailable: 3, Rating: 8.3, Tag: models.TagNone, View: "Side view"},
			{ID: "l7", Section: "Section A3", Row: "Row 2", Category: models.CategoryPitchSide, Price: 1650, TicketsAvailable: 2, Rating: 9.4, Tag: models.TagNone, View: "Pitch-level view"},
			{ID: "l8", Section: "Section F1", Row: "Row 4", Category: models.CategoryUpperDeck, Price: 340, TicketsAvailable: 4, Rating: 8.1, Tag: models.TagNone, View: "Side view"},
		},
		nextID: 9,
	}
}

// ListStadiumTickets returns copies of all listings
func (m *MockCatalogService) ListStadiumTickets(ctx context.Context) ([]*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*models.Listing, 0, len(m.listings))
	for _, l := range m.listings {
		cp := *l
		out = append(out, &cp)
	}
	return out, nil
}

// FindStadiumTicket returns a copy of the listing with the given ID
func (m *MockCatalogService) FindStadiumTicket(ctx context.Context, id string) (*models.Listing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.listings {
		if l.ID == id {
			cp := *l
			return &cp, nil
		}
	}
	return nil, models.ErrListingNotFound
}

// CreateStadiumTicket adds a listing
func (m *MockCatalogService) CreateStadiumTicket(ctx context.Context, token string, req *models.ListingCreateRequest) (*models.Listing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	listing := &models.Listing{
		ID:               fmt.Sprintf("l%d", m.nextID),
		Section:          req.Section,
		Row:              req.Row,
		Category:         req.Category,
		Price:            req.Price,
		TicketsAvailable: req.TicketsAvailable,
		Rating:           req.Rating,
		Tag:              req.Tag,
		View:             req.View,
	}
	m.nextID++
	m.listings = append(m.listings, listing)
	cp := *listing
	return &cp, nil
}

// UpdateStadiumTicket replaces a listing's mutable fields
func (m *MockCatalogService) UpdateStadiumTicket(ctx context.Context, token string, id string, req *models.ListingUpdateRequest) (*models.Listing, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, l := range m.listings {
		if l.ID == id {
			l.Section = req.Section
			l.Row = req.Row
			l.Category = req.Category
			l.Price = req.Price
			l.TicketsAvailable = req.TicketsAvailable
			l.Rating = req.Rating
			l.Tag = req.Tag
			l.View = req.View
			cp := *l
			return &cp, nil
		}
	}
	return nil, models.ErrListingNotFound
}

// DeleteStadiumTicket removes a listing
func (m *MockCatalogService) DeleteStadiumTicket(ctx context.Context, token string, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, l := range m.listings {
		if l.ID == id {
			m.listings = append(m.listings[:i], m.listings[i+1:]...)
			return nil
		}
	}
	return models.ErrListingNotFound
}

// take decrements availability for a purchase, failing if any line exceeds
// what is left. All lines are checked before any is decremented so a
// rejected purchase changes nothing.
func (m *MockCatalogService) take(lines []checkout.PurchaseLine) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	byID := make(map[string]*models.Listing, len(m.listings))
	for _, l := range m.listings {
		byID[l.ID] = l
	}
	for _, line := range lines {
		l, ok := byID[line.ListingID]
		if !ok {
			return &APIError{StatusCode: http.StatusNotFound, Message: fmt.Sprintf("listing %s not found", line.ListingID)}
		}
		if line.Quantity > l.TicketsAvailable {
			return &APIError{StatusCode: http.StatusConflict, Message: fmt.Sprintf("not enough tickets available for %s", l.Section)}
		}
	}
	for _, line := range lines {
		byID[line.ListingID].TicketsAvailable -= line.Quantity
	}
	return nil
}

// MockPurchaseService simulates the purchase endpoint against the mock
// catalog. A buyer email seen for the first time gets an account created,
// mirroring the real endpoint's isNewUser behavior.
type MockPurchaseService struct {
	mu          sync.Mutex
	catalog     *MockCatalogService
	knownEmails map[string]bool
}

// NewMockPurchaseService creates a purchase simulator backed by the given catalog
func NewMockPurchaseService(catalog *MockCatalogService) *MockPurchaseService {
	return &MockPurchaseService{
		catalog:     catalog,
		knownEmails: make(map[string]bool),
	}
}

// PurchaseStadiumTickets validates availability, decrements the catalog and
// returns a booking reference
func (m *MockPurchaseService) PurchaseStadiumTickets(ctx context.Context, req *checkout.PurchaseRequest) (*checkout.PurchaseResult, error) {
	if len(req.Cart) == 0 {
		return nil, &APIError{StatusCode: http.StatusBadRequest, Message: "cart is empty"}
	}
	if err := req.Buyer.Validate(); err != nil {
		return nil, &APIError{StatusCode: http.StatusUnprocessableEntity, Message: err.Error()}
	}
	if err := req.Payment.Validate(); err != nil {
		return nil, &APIError{StatusCode: http.StatusUnprocessableEntity, Message: err.Error()}
	}
	if err := m.catalog.take(req.Cart); err != nil {
		return nil, err
	}

	m.mu.Lock()
	isNew := !m.knownEmails[req.Buyer.Email]
	m.knownEmails[req.Buyer.Email] = true
	m.mu.Unlock()

	return &checkout.PurchaseResult{
		IsNewUser: isNew,
		Reference: checkout.NewBookingReference(),
	}, nil
}

// MockIdentityService returns a canned profile for any non-empty token
type MockIdentityService struct{}

// NewMockIdentityService creates a mock identity service
func NewMockIdentityService() *MockIdentityService {
	return &MockIdentityService{}
}

// GetProfile returns a demo identity for the requested user
func (m *MockIdentityService) GetProfile(ctx context.Context, token, userID string) (*models.Identity, error) {
	if token == "" {
		return nil, models.ErrUnauthorized
	}
	return &models.Identity{
		ID:      userID,
		Name:    "Alex Morgan",
		Email:   "alex.morgan@example.com",
		IsAdmin: userID == "admin",
	}, nil
}

// MockHotelService keeps hotel bookings in memory
type MockHotelService struct {
	mu       sync.Mutex
	bookings map[string][]*models.HotelBooking
}

// NewMockHotelService creates an empty mock hotels service
func NewMockHotelService() *MockHotelService {
	return &MockHotelService{bookings: make(map[string][]*models.HotelBooking)}
}

// CreateBooking stores a booking for the requesting user
func (m *MockHotelService) CreateBooking(ctx context.Context, token string, req *models.HotelBookingRequest) (*models.HotelBooking, error) {
	if err := req.Validate(); err != nil {
		return nil, &APIError{StatusCode: http.StatusUnprocessableEntity, Message: err.Error()}
	}

	booking := &models.HotelBooking{
		ID:           uuid.New().String(),
		UserID:       req.UserID,
		HotelName:    req.HotelName,
		Location:     req.Location,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Guests:       req.Guests,
		Rooms:        req.Rooms,
		TotalPrice:   req.TotalPrice,
		Status:       models.BookingConfirmed,
		CreatedAt:    time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.bookings[req.UserID] = append(m.bookings[req.UserID], booking)
	cp := *booking
	return &cp, nil
}

// GetUserBookings returns the stored bookings for a user
func (m *MockHotelService) GetUserBookings(ctx context.Context, token, userID string) ([]*models.HotelBooking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*models.HotelBooking, 0, len(m.bookings[userID]))
	for _, b := range m.bookings[userID] {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}

// MockVisaService keeps visa applications in memory
type MockVisaService struct {
	mu           sync.Mutex
	applications []*models.VisaApplication
}

// NewMockVisaService creates an empty mock visa-applications service
func NewMockVisaService() *MockVisaService {
	return &MockVisaService{}
}

// Apply stores a new application in the Under Review state
func (m *MockVisaService) Apply(ctx context.Context, token string, req *models.VisaApplicationRequest) (*models.VisaApplication, error) {
	if err := req.Validate(); err != nil {
		return nil, &APIError{StatusCode: http.StatusUnprocessableEntity, Message: err.Error()}
	}

	application := &models.VisaApplication{
		ID:             uuid.New().String(),
		UserID:         req.UserID,
		ApplicantName:  req.ApplicantName,
		Destination:    req.Destination,
		PassportNumber: req.PassportNumber,
		Status:         models.VisaUnderReview,
		SubmittedAt:    time.Now(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.applications = append(m.applications, application)
	cp := *application
	return &cp, nil
}

// ListApplications returns copies of all stored applications
func (m *MockVisaService) ListApplications(ctx context.Context, token string) ([]*models.VisaApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]*models.VisaApplication, 0, len(m.applications))
	for _, a := range m.applications {
		cp := *a
		out = append(out, &cp)
	}
	return out, nil
}

// GetApplication returns a copy of the application with the given ID
func (m *MockVisaService) GetApplication(ctx context.Context, token, id string) (*models.VisaApplication, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.applications {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, models.ErrApplicationNotFound
}

// UpdateApplicationStatus moves an application to a new review state
func (m *MockVisaService) UpdateApplicationStatus(ctx context.Context, token, id string, req *models.VisaStatusUpdateRequest) (*models.VisaApplication, error) {
	if err := req.Validate(); err != nil {
		return nil, &APIError{StatusCode: http.StatusUnprocessableEntity, Message: err.Error()}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.applications {
		if a.ID == id {
			a.Status = req.Status
			cp := *a
			return &cp, nil
		}
	}
	return nil, models.ErrApplicationNotFound
}

// DeleteApplication removes an application
func (m *MockVisaService) DeleteApplication(ctx context.Context, token, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, a := range m.applications {
		if a.ID == id {
			m.applications = append(m.applications[:i], m.applications[i+1:]...)
			return nil
		}
	}
	return models.ErrApplicationNotFound
}
