package models

import "strings"

// Identity represents the authenticated user supplied by the remote users
// API. It is optional throughout the checkout flow and only used to pre-fill
// buyer details.
type Identity struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// SplitName splits the display name into first and last name parts
func (i *Identity) SplitName() (first, last string) {
	parts := strings.Fields(i.Name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
