package models

// CategoryID identifies one of the four fixed seating tiers
type CategoryID int

const (
	CategoryPitchSide CategoryID = 1
	CategoryLowerBowl CategoryID = 2
	CategoryMidTier   CategoryID = 3
	CategoryUpperDeck CategoryID = 4
)

// Category represents a seating tier with its display color and entry price
type Category struct {
	ID       CategoryID `json:"id"`
	Label    string     `json:"label"`
	Color    string     `json:"color"`
	MinPrice int        `json:"minPrice"` // whole currency units
}

// categories is the fixed tier table; it is never mutated at runtime.
var categories = []Category{
	{ID: CategoryPitchSide, Label: "Pitch Side", Color: "#FFD700", MinPrice: 1480},
	{ID: CategoryLowerBowl, Label: "Lower Bowl", Color: "#FF6B35", MinPrice: 620},
	{ID: CategoryMidTier, Label: "Mid Tier", Color: "#4FC3F7", MinPrice: 303},
	{ID: CategoryUpperDeck, Label: "Upper Deck", Color: "#9E9E9E", MinPrice: 363},
}

// Categories returns all seating tiers in display order
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// CategoryByID looks up a seating tier by its identifier
func CategoryByID(id CategoryID) (Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return Category{}, false
}

// Valid reports whether the identifier names a known tier
func (id CategoryID) Valid() bool {
	_, ok := CategoryByID(id)
	return ok
}
