package models

import "errors"

// BuyerDetails holds the contact information collected on the details step.
// Fields are free text until Validate is called.
type BuyerDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// Validate validates the buyer details.
//
// The checks are deliberately weak format checks, matching what the purchase
// flow accepts. Strengthening them would change observable behavior.
func (b *BuyerDetails) Validate() error {
	if b.FirstName == "" {
		return errors.New("first name is required")
	}
	if b.LastName == "" {
		return errors.New("last name is required")
	}
	if !containsAt(b.Email) {
		return errors.New("email address is invalid")
	}
	if len(b.Phone) < 7 {
		return errors.New("phone number must be at least 7 characters")
	}
	return nil
}

// PaymentDetails holds card data for the payment step. It is kept only
// transiently in the in-memory checkout session: never persisted, never
// logged, and never included in session snapshots.
type PaymentDetails struct {
	CardNumber string `json:"cardNumber"` // formatted for display, spaces every 4 digits
	Expiry     string `json:"expiry"`     // MM/YY
	CVV        string `json:"cvv"`
	NameOnCard string `json:"nameOnCard"`
}

// Validate validates the payment details
func (p *PaymentDetails) Validate() error {
	if countDigits(p.CardNumber) != 16 {
		return errors.New("card number must have 16 digits")
	}
	if len(p.Expiry) != 5 {
		return errors.New("expiry must be in MM/YY format")
	}
	if n := len(p.CVV); n < 3 || n > 4 || countDigits(p.CVV) != n {
		return errors.New("cvv must have 3 or 4 digits")
	}
	if len(p.NameOnCard) <= 2 {
		return errors.New("name on card is too short")
	}
	return nil
}

func containsAt(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '@' {
			return true
		}
	}
	return false
}

func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
