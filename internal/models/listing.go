package models

import (
	"errors"
	"fmt"
)

// ListingTag is a closed set of promotional tags a listing may carry
type ListingTag string

const (
	TagNone      ListingTag = ""
	TagBestPrice ListingTag = "Best Price"
	TagBestDeal  ListingTag = "Best Deal"
	TagBestView  ListingTag = "Best View"
)

// ParseListingTag maps a raw tag string onto the closed tag set.
// Unknown values are rejected so free-form tags never enter the data model.
func ParseListingTag(s string) (ListingTag, error) {
	switch ListingTag(s) {
	case TagNone, TagBestPrice, TagBestDeal, TagBestView:
		return ListingTag(s), nil
	}
	return TagNone, fmt.Errorf("unknown listing tag %q", s)
}

// Valid reports whether the tag is one of the known values
func (t ListingTag) Valid() bool {
	switch t {
	case TagNone, TagBestPrice, TagBestDeal, TagBestView:
		return true
	}
	return false
}

// Listing represents a purchasable seat block supplied by the catalog API.
// TicketsAvailable is authoritative only on the server; the value held here
// is a snapshot from the last catalog fetch.
type Listing struct {
	ID               string     `json:"id"`
	Section          string     `json:"section"`
	Row              string     `json:"row"`
	Category         CategoryID `json:"category"`
	Price            int        `json:"price"` // whole currency units
	TicketsAvailable int        `json:"ticketsAvailable"`
	Rating           float64    `json:"rating"`
	Tag              ListingTag `json:"tag"`
	View             string     `json:"view"`
}

// Validate validates the listing data
func (l *Listing) Validate() error {
	if l.ID == "" {
		return errors.New("listing id is required")
	}
	if l.Section == "" {
		return errors.New("listing section is required")
	}
	if !l.Category.Valid() {
		return fmt.Errorf("unknown category %d", l.Category)
	}
	if l.Price <= 0 {
		return errors.New("listing price must be greater than 0")
	}
	if l.TicketsAvailable < 0 {
		return errors.New("available ticket count cannot be negative")
	}
	if !l.Tag.Valid() {
		return fmt.Errorf("unknown listing tag %q", l.Tag)
	}
	return nil
}

// CartLine pairs a listing with a requested quantity
type CartLine struct {
	Listing  Listing `json:"listing"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the line price in whole currency units
func (cl *CartLine) Subtotal() int {
	return cl.Listing.Price * cl.Quantity
}
