package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"stadium-ticketing-platform/internal/models"

	"github.com/pkg/errors"
)

// IdentityConfig holds identity client configuration
type IdentityConfig struct {
	BaseURL string
	Timeout time.Duration
}

// IdentityService fetches the authenticated user's profile from the remote
// users API. The profile is only used to pre-fill buyer details; checkout
// works without it.
type IdentityService struct {
	client  *http.Client
	baseURL string
}

// NewIdentityService creates a new identity client
func NewIdentityService(config IdentityConfig) *IdentityService {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &IdentityService{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
	}
}

type userRecord struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

// GetProfile fetches a user profile by ID using the caller's bearer token
func (s *IdentityService) GetProfile(ctx context.Context, token, userID string) (*models.Identity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/users/"+userID, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create profile request")
	}
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "profile request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read profile response")
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, models.ErrUserNotFound
	case http.StatusUnauthorized:
		return nil, models.ErrUnauthorized
	default:
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var rec userRecord
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile response")
	}
	return &models.Identity{
		ID:      rec.ID,
		Name:    rec.Name,
		Email:   rec.Email,
		IsAdmin: rec.IsAdmin,
	}, nil
}
