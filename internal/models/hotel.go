package models

import (
	"errors"
	"time"
)

// HotelBookingStatus represents the status of a hotel booking
type HotelBookingStatus string

const (
	BookingPending   HotelBookingStatus = "pending"
	BookingConfirmed HotelBookingStatus = "confirmed"
	BookingCancelled HotelBookingStatus = "cancelled"
)

// HotelBooking represents a hotel booking as returned by the hotels API
type HotelBooking struct {
	ID           string             `json:"id"`
	UserID       string             `json:"userId"`
	HotelName    string             `json:"hotelName"`
	Location     string             `json:"location"`
	CheckInDate  time.Time          `json:"checkInDate"`
	CheckOutDate time.Time          `json:"checkOutDate"`
	Guests       int                `json:"guests"`
	Rooms        int                `json:"rooms"`
	TotalPrice   int                `json:"totalPrice"`
	Status       HotelBookingStatus `json:"status"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// HotelBookingContact holds the contact details attached to a booking
type HotelBookingContact struct {
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	SpecialRequests string `json:"specialRequests,omitempty"`
}

// HotelBookingRequest is the payload sent to the hotels API to create a booking
type HotelBookingRequest struct {
	UserID       string              `json:"userId,omitempty"`
	HotelName    string              `json:"hotelName"`
	Location     string              `json:"location"`
	CheckInDate  time.Time           `json:"checkInDate"`
	CheckOutDate time.Time           `json:"checkOutDate"`
	Guests       int                 `json:"guests"`
	Rooms        int                 `json:"rooms"`
	TotalPrice   int                 `json:"totalPrice"`
	Contact      HotelBookingContact `json:"contactDetails"`
}

// Validate validates the booking request
func (req *HotelBookingRequest) Validate() error {
	if req.HotelName == "" {
		return errors.New("hotel name is required")
	}
	if req.Contact.FirstName == "" || req.Contact.LastName == "" {
		return errors.New("contact name is required")
	}
	if !containsAt(req.Contact.Email) {
		return errors.New("contact email is invalid")
	}
	if req.CheckInDate.IsZero() || req.CheckOutDate.IsZero() {
		return errors.New("check-in and check-out dates are required")
	}
	if !req.CheckOutDate.After(req.CheckInDate) {
		return errors.New("check-out date must be after check-in date")
	}
	if req.Guests < 1 {
		return errors.New("at least one guest is required")
	}
	if req.Rooms < 1 {
		return errors.New("at least one room is required")
	}
	return nil
}
