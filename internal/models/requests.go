package models

import (
	"errors"
	"fmt"
)

// ListingCreateRequest is the admin payload for creating a stadium listing
type ListingCreateRequest struct {
	Section          string     `json:"section"`
	Row              string     `json:"row"`
	Category         CategoryID `json:"category"`
	Price            int        `json:"price"`
	TicketsAvailable int        `json:"ticketsAvailable"`
	Rating           float64    `json:"rating"`
	Tag              ListingTag `json:"tag"`
	View             string     `json:"view"`
}

// Validate validates listing creation data
func (req *ListingCreateRequest) Validate() error {
	if req.Section == "" {
		return errors.New("listing section is required")
	}
	if !req.Category.Valid() {
		return fmt.Errorf("unknown category %d", req.Category)
	}
	if req.Price <= 0 {
		return errors.New("listing price must be greater than 0")
	}
	if req.TicketsAvailable < 0 {
		return errors.New("available ticket count cannot be negative")
	}
	if req.Rating < 0 || req.Rating > 10 {
		return errors.New("rating must be between 0 and 10")
	}
	if !req.Tag.Valid() {
		return fmt.Errorf("unknown listing tag %q", req.Tag)
	}
	return nil
}

// ListingUpdateRequest is the admin payload for updating a stadium listing
type ListingUpdateRequest struct {
	Section          string     `json:"section"`
	Row              string     `json:"row"`
	Category         CategoryID `json:"category"`
	Price            int        `json:"price"`
	TicketsAvailable int        `json:"ticketsAvailable"`
	Rating           float64    `json:"rating"`
	Tag              ListingTag `json:"tag"`
	View             string     `json:"view"`
}

// Validate validates listing update data
func (req *ListingUpdateRequest) Validate() error {
	create := ListingCreateRequest(*req)
	return create.Validate()
}
