package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"stadium-ticketing-platform/internal/models"

	"github.com/pkg/errors"
)

// HotelConfig holds hotels client configuration
type HotelConfig struct {
	BaseURL string
	Timeout time.Duration
}

// HotelService talks to the remote hotels API for bookings
type HotelService struct {
	client  *http.Client
	baseURL string
}

// NewHotelService creates a new hotels client
func NewHotelService(config HotelConfig) *HotelService {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &HotelService{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
	}
}

type hotelBookingRecord struct {
	ID           string    `json:"_id"`
	UserID       string    `json:"userId"`
	HotelName    string    `json:"hotelName"`
	Location     string    `json:"location"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	Guests       int       `json:"guests"`
	Rooms        int       `json:"rooms"`
	TotalPrice   int       `json:"totalPrice"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

func (r *hotelBookingRecord) toBooking() *models.HotelBooking {
	return &models.HotelBooking{
		ID:           r.ID,
		UserID:       r.UserID,
		HotelName:    r.HotelName,
		Location:     r.Location,
		CheckInDate:  r.CheckInDate,
		CheckOutDate: r.CheckOutDate,
		Guests:       r.Guests,
		Rooms:        r.Rooms,
		TotalPrice:   r.TotalPrice,
		Status:       models.HotelBookingStatus(r.Status),
		CreatedAt:    r.CreatedAt,
	}
}

// CreateBooking creates a hotel booking
func (s *HotelService) CreateBooking(ctx context.Context, token string, req *models.HotelBookingRequest) (*models.HotelBooking, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal booking request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/hotels/book", bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create booking request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "booking request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read booking response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var rec hotelBookingRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, errors.Wrap(err, "failed to decode booking response")
	}
	return rec.toBooking(), nil
}

// GetUserBookings lists a user's hotel bookings
func (s *HotelService) GetUserBookings(ctx context.Context, token, userID string) ([]*models.HotelBooking, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/hotels/bookings/user/"+userID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create bookings request")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "bookings request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read bookings response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var records []hotelBookingRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode bookings response")
	}
	bookings := make([]*models.HotelBooking, 0, len(records))
	for i := range records {
		bookings = append(bookings, records[i].toBooking())
	}
	return bookings, nil
}
