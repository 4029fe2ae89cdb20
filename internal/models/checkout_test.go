package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuyerDetailsValidate(t *testing.T) {
	valid := BuyerDetails{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@example.com",
		Phone:     "1234567",
	}

	tests := []struct {
		name    string
		mutate  func(*BuyerDetails)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid details",
			mutate: func(b *BuyerDetails) {},
		},
		{
			name:    "missing first name",
			mutate:  func(b *BuyerDetails) { b.FirstName = "" },
			wantErr: true,
			errMsg:  "first name is required",
		},
		{
			name:    "missing last name",
			mutate:  func(b *BuyerDetails) { b.LastName = "" },
			wantErr: true,
			errMsg:  "last name is required",
		},
		{
			name:    "email without at sign",
			mutate:  func(b *BuyerDetails) { b.Email = "john.example.com" },
			wantErr: true,
			errMsg:  "email address is invalid",
		},
		{
			// a bare @ passes; the format check is intentionally loose
			name:   "minimal email",
			mutate: func(b *BuyerDetails) { b.Email = "@" },
		},
		{
			name:    "phone too short",
			mutate:  func(b *BuyerDetails) { b.Phone = "123456" },
			wantErr: true,
			errMsg:  "phone number must be at least 7 characters",
		},
		{
			name:   "phone at minimum length",
			mutate: func(b *BuyerDetails) { b.Phone = "1234567" },
		},
		{
			// whitespace is not trimmed before checking
			name:   "whitespace first name",
			mutate: func(b *BuyerDetails) { b.FirstName = " " },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := valid
			tt.mutate(&b)
			err := b.Validate()
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPaymentDetailsValidate(t *testing.T) {
	valid := PaymentDetails{
		CardNumber: "4111 1111 1111 1111",
		Expiry:     "12/28",
		CVV:        "123",
		NameOnCard: "JOHN DOE",
	}

	tests := []struct {
		name    string
		mutate  func(*PaymentDetails)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid details",
			mutate: func(p *PaymentDetails) {},
		},
		{
			name:   "unformatted card number",
			mutate: func(p *PaymentDetails) { p.CardNumber = "4111111111111111" },
		},
		{
			name:    "fifteen digit card",
			mutate:  func(p *PaymentDetails) { p.CardNumber = "411111111111111" },
			wantErr: true,
			errMsg:  "card number must have 16 digits",
		},
		{
			name:    "seventeen digit card",
			mutate:  func(p *PaymentDetails) { p.CardNumber = "41111111111111112" },
			wantErr: true,
			errMsg:  "card number must have 16 digits",
		},
		{
			name:    "expiry missing slash",
			mutate:  func(p *PaymentDetails) { p.Expiry = "1228" },
			wantErr: true,
			errMsg:  "expiry must be in MM/YY format",
		},
		{
			name:   "four digit cvv",
			mutate: func(p *PaymentDetails) { p.CVV = "1234" },
		},
		{
			name:    "two digit cvv",
			mutate:  func(p *PaymentDetails) { p.CVV = "12" },
			wantErr: true,
			errMsg:  "cvv must have 3 or 4 digits",
		},
		{
			name:    "cvv with letters",
			mutate:  func(p *PaymentDetails) { p.CVV = "12a" },
			wantErr: true,
			errMsg:  "cvv must have 3 or 4 digits",
		},
		{
			name:    "name too short",
			mutate:  func(p *PaymentDetails) { p.NameOnCard = "JD" },
			wantErr: true,
			errMsg:  "name on card is too short",
		},
		{
			name:   "three character name",
			mutate: func(p *PaymentDetails) { p.NameOnCard = "JDO" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			if tt.wantErr {
				assert.EqualError(t, err, tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
