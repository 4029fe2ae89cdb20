package checkout

import (
	"testing"

	"stadium-ticketing-platform/internal/models"

	"github.com/stretchr/testify/assert"
)

func line(id string, price, qty, available int) models.CartLine {
	return models.CartLine{
		Listing: models.Listing{
			ID:               id,
			Section:          "Section " + id,
			Category:         models.CategoryLowerBowl,
			Price:            price,
			TicketsAvailable: available,
		},
		Quantity: qty,
	}
}

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		lines        []models.CartLine
		wantSubtotal int
		wantFee      int
		wantTotal    int
	}{
		{
			name:         "empty cart",
			lines:        nil,
			wantSubtotal: 0,
			wantFee:      0,
			wantTotal:    0,
		},
		{
			name: "two lines",
			lines: []models.CartLine{
				line("l2", 620, 2, 4),
				line("l3", 303, 1, 2),
			},
			wantSubtotal: 1543,
			wantFee:      185, // 1543 * 0.12 = 185.16, rounds down
			wantTotal:    1728,
		},
		{
			name: "single ticket",
			lines: []models.CartLine{
				line("l1", 1480, 1, 2),
			},
			wantSubtotal: 1480,
			wantFee:      178, // 177.6 rounds up
			wantTotal:    1658,
		},
		{
			name: "fee divides evenly",
			lines: []models.CartLine{
				line("l9", 1225, 1, 2),
			},
			wantSubtotal: 1225,
			wantFee:      147,
			wantTotal:    1372,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeTotals(tt.lines)
			assert.Equal(t, tt.wantSubtotal, got.Subtotal)
			assert.Equal(t, tt.wantFee, got.ServiceFee)
			assert.Equal(t, tt.wantTotal, got.Total)
			assert.Equal(t, got.Subtotal+got.ServiceFee, got.Total)
		})
	}
}

func TestComputeTotalsRounding(t *testing.T) {
	// 287 * 0.12 = 34.44 rounds down, 13 * 0.12 = 1.56 rounds up
	assert.Equal(t, 34, ComputeTotals([]models.CartLine{line("a", 287, 1, 5)}).ServiceFee)
	assert.Equal(t, 2, ComputeTotals([]models.CartLine{line("b", 13, 1, 5)}).ServiceFee)
}
