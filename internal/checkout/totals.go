package checkout

import "stadium-ticketing-platform/internal/models"

// ServiceFeePercent is the marketplace surcharge applied to every order
const ServiceFeePercent = 12

// Totals is the price breakdown for a cart, in whole currency units
type Totals struct {
	Subtotal   int `json:"subtotal"`
	ServiceFee int `json:"serviceFee"`
	Total      int `json:"total"`
}

// ComputeTotals prices a cart. The service fee is 12% of the subtotal,
// rounded half-up to the nearest whole currency unit using integer
// arithmetic so results are identical across platforms.
func ComputeTotals(lines []models.CartLine) Totals {
	subtotal := 0
	for i := range lines {
		subtotal += lines[i].Subtotal()
	}
	fee := (subtotal*ServiceFeePercent + 50) / 100
	return Totals{
		Subtotal:   subtotal,
		ServiceFee: fee,
		Total:      subtotal + fee,
	}
}
