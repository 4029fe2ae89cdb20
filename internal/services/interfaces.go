package services

import (
	"context"

	"stadium-ticketing-platform/internal/checkout"
	"stadium-ticketing-platform/internal/models"
)

// CatalogServiceInterface defines the interface for the stadium ticket catalog
type CatalogServiceInterface interface {
	ListStadiumTickets(ctx context.Context) ([]*models.Listing, error)
	FindStadiumTicket(ctx context.Context, id string) (*models.Listing, error)
	CreateStadiumTicket(ctx context.Context, token string, req *models.ListingCreateRequest) (*models.Listing, error)
	UpdateStadiumTicket(ctx context.Context, token string, id string, req *models.ListingUpdateRequest) (*models.Listing, error)
	DeleteStadiumTicket(ctx context.Context, token string, id string) error
}

// PurchaseServiceInterface defines the interface for the purchase endpoint
type PurchaseServiceInterface interface {
	checkout.PurchaseService
}

// IdentityServiceInterface defines the interface for the remote users API
type IdentityServiceInterface interface {
	GetProfile(ctx context.Context, token, userID string) (*models.Identity, error)
}

// HotelServiceInterface defines the interface for the hotels API
type HotelServiceInterface interface {
	CreateBooking(ctx context.Context, token string, req *models.HotelBookingRequest) (*models.HotelBooking, error)
	GetUserBookings(ctx context.Context, token, userID string) ([]*models.HotelBooking, error)
}

// VisaServiceInterface defines the interface for the visa-applications API
type VisaServiceInterface interface {
	Apply(ctx context.Context, token string, req *models.VisaApplicationRequest) (*models.VisaApplication, error)
	ListApplications(ctx context.Context, token string) ([]*models.VisaApplication, error)
	GetApplication(ctx context.Context, token, id string) (*models.VisaApplication, error)
	UpdateApplicationStatus(ctx context.Context, token, id string, req *models.VisaStatusUpdateRequest) (*models.VisaApplication, error)
	DeleteApplication(ctx context.Context, token, id string) error
}
