package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListingTag(t *testing.T) {
	for _, raw := range []string{"", "Best Price", "Best Deal", "Best View"} {
		tag, err := ParseListingTag(raw)
		require.NoError(t, err)
		assert.Equal(t, ListingTag(raw), tag)
	}

	_, err := ParseListingTag("Hot Deal")
	assert.EqualError(t, err, `unknown listing tag "Hot Deal"`)
}

func TestListingValidate(t *testing.T) {
	valid := Listing{
		ID:               "l1",
		Section:          "Section A1",
		Row:              "Row 5",
		Category:         CategoryPitchSide,
		Price:            1480,
		TicketsAvailable: 2,
		Rating:           9.8,
		Tag:              TagBestView,
		View:             "Pitch-side view",
	}

	tests := []struct {
		name    string
		mutate  func(*Listing)
		wantErr string
	}{
		{
			name:   "valid listing",
			mutate: func(l *Listing) {},
		},
		{
			name:    "missing id",
			mutate:  func(l *Listing) { l.ID = "" },
			wantErr: "listing id is required",
		},
		{
			name:    "missing section",
			mutate:  func(l *Listing) { l.Section = "" },
			wantErr: "listing section is required",
		},
		{
			name:    "unknown category",
			mutate:  func(l *Listing) { l.Category = 9 },
			wantErr: "unknown category 9",
		},
		{
			name:    "zero price",
			mutate:  func(l *Listing) { l.Price = 0 },
			wantErr: "listing price must be greater than 0",
		},
		{
			name:    "negative availability",
			mutate:  func(l *Listing) { l.TicketsAvailable = -1 },
			wantErr: "available ticket count cannot be negative",
		},
		{
			name:   "sold out is valid",
			mutate: func(l *Listing) { l.TicketsAvailable = 0 },
		},
		{
			name:    "free-form tag",
			mutate:  func(l *Listing) { l.Tag = "Hot Deal" },
			wantErr: `unknown listing tag "Hot Deal"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := valid
			tt.mutate(&l)
			err := l.Validate()
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCartLineSubtotal(t *testing.T) {
	cl := CartLine{Listing: Listing{Price: 620}, Quantity: 3}
	assert.Equal(t, 1860, cl.Subtotal())
}

func TestCategoryByID(t *testing.T) {
	cat, ok := CategoryByID(CategoryLowerBowl)
	require.True(t, ok)
	assert.Equal(t, "Lower Bowl", cat.Label)
	assert.Equal(t, 620, cat.MinPrice)

	_, ok = CategoryByID(0)
	assert.False(t, ok)
}
