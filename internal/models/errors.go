package models

import "errors"

// Common errors used throughout the application
var (
	ErrListingNotFound     = errors.New("listing not found")
	ErrLineNotFound        = errors.New("cart line not found")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrInvalidTransition   = errors.New("invalid checkout step transition")
	ErrPurchaseInProgress  = errors.New("a purchase is already in progress")
	ErrInsufficientStock   = errors.New("no tickets available for this listing")
	ErrInvalidInput        = errors.New("invalid input")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrApplicationNotFound = errors.New("visa application not found")
	ErrUserNotFound        = errors.New("user not found")
	ErrUnauthorized        = errors.New("unauthorized access")
)
