package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"stadium-ticketing-platform/internal/models"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// CatalogConfig holds catalog client configuration
type CatalogConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CatalogService talks to the remote stadium ticket catalog. The server is
// the source of truth for ticket availability; listings returned here are
// snapshots.
type CatalogService struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Logger
}

// NewCatalogService creates a new catalog client
func NewCatalogService(config CatalogConfig, logger *logrus.Logger) *CatalogService {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &CatalogService{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		logger:  logger,
	}
}

// stadiumTicketRecord is the wire shape of a listing as the remote API
// returns it
type stadiumTicketRecord struct {
	ID               string  `json:"_id"`
	Section          string  `json:"section"`
	Row              string  `json:"row"`
	Category         int     `json:"category"`
	Price            int     `json:"price"`
	TicketsAvailable int     `json:"ticketsAvailable"`
	Rating           float64 `json:"rating"`
	Tag              string  `json:"tag"`
	View             string  `json:"view"`
}

func (s *CatalogService) toListing(rec *stadiumTicketRecord) *models.Listing {
	tag, err := models.ParseListingTag(rec.Tag)
	if err != nil {
		// An unknown tag from the server must not enter the model; drop it.
		s.logger.WithFields(logrus.Fields{
			"listing_id": rec.ID,
			"tag":        rec.Tag,
		}).Warn("dropping unknown listing tag")
		tag = models.TagNone
	}
	return &models.Listing{
		ID:               rec.ID,
		Section:          rec.Section,
		Row:              rec.Row,
		Category:         models.CategoryID(rec.Category),
		Price:            rec.Price,
		TicketsAvailable: rec.TicketsAvailable,
		Rating:           rec.Rating,
		Tag:              tag,
		View:             rec.View,
	}
}

// ListStadiumTickets fetches all stadium listings
func (s *CatalogService) ListStadiumTickets(ctx context.Context) ([]*models.Listing, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/tickets/stadium/all", nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch stadium listings")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read catalog response")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, decodeAPIError(resp.StatusCode, body)
	}

	var records []stadiumTicketRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode catalog response")
	}

	listings := make([]*models.Listing, 0, len(records))
	for i := range records {
		listings = append(listings, s.toListing(&records[i]))
	}
	return listings, nil
}

// FindStadiumTicket returns a single listing by ID. The remote API exposes
// no get-one endpoint, so this fetches the catalog and scans it.
func (s *CatalogService) FindStadiumTicket(ctx context.Context, id string) (*models.Listing, error) {
	listings, err := s.ListStadiumTickets(ctx)
	if err != nil {
		return nil, err
	}
	for _, l := range listings {
		if l.ID == id {
			return l, nil
		}
	}
	return nil, models.ErrListingNotFound
}

// CreateStadiumTicket creates a listing through the admin API
func (s *CatalogService) CreateStadiumTicket(ctx context.Context, token string, req *models.ListingCreateRequest) (*models.Listing, error) {
	var rec stadiumTicketRecord
	if err := s.doJSON(ctx, http.MethodPost, s.baseURL+"/tickets/stadium/create", token, req, &rec); err != nil {
		return nil, err
	}
	return s.toListing(&rec), nil
}

// UpdateStadiumTicket updates a listing through the admin API
func (s *CatalogService) UpdateStadiumTicket(ctx context.Context, token string, id string, req *models.ListingUpdateRequest) (*models.Listing, error) {
	var rec stadiumTicketRecord
	if err := s.doJSON(ctx, http.MethodPut, s.baseURL+"/tickets/stadium/"+id, token, req, &rec); err != nil {
		return nil, err
	}
	return s.toListing(&rec), nil
}

// DeleteStadiumTicket deletes a listing through the admin API
func (s *CatalogService) DeleteStadiumTicket(ctx context.Context, token string, id string) error {
	return s.doJSON(ctx, http.MethodDelete, s.baseURL+"/tickets/stadium/"+id, token, nil, nil)
}

// doJSON performs an authenticated JSON round trip against the catalog API
func (s *CatalogService) doJSON(ctx context.Context, method, url, token string, payload, out interface{}) error {
	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to marshal request")
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return decodeAPIError(resp.StatusCode, body)
	}
	if out != nil {
		if err := json.Unmarshal(body, out); err != nil {
			return errors.Wrap(err, "failed to decode response")
		}
	}
	return nil
}
