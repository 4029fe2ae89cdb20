package services

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"stadium-ticketing-platform/internal/checkout"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// PurchaseConfig holds purchase client configuration
type PurchaseConfig struct {
	BaseURL string
	Timeout time.Duration
}

// PurchaseAPIService finalizes carts against the remote purchase endpoint.
// The cart is submitted atomically in one call; there is no partial
// submission and no automatic retry.
type PurchaseAPIService struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Logger
}

// NewPurchaseAPIService creates a new purchase client
func NewPurchaseAPIService(config PurchaseConfig, logger *logrus.Logger) *PurchaseAPIService {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &PurchaseAPIService{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
		logger:  logger,
	}
}

// PurchaseStadiumTickets submits the finalized cart, buyer and payment
// details. Card data is passed through to the endpoint and never logged.
func (s *PurchaseAPIService) PurchaseStadiumTickets(ctx context.Context, req *checkout.PurchaseRequest) (*checkout.PurchaseResult, error) {
	data, err := json.Marshal(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal purchase request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+"/tickets/stadium/purchase", bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create purchase request")
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	s.logger.WithField("lines", len(req.Cart)).Info("submitting stadium ticket purchase")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return nil, errors.Wrap(err, "purchase request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read purchase response")
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := decodeAPIError(resp.StatusCode, body)
		s.logger.WithFields(logrus.Fields{
			"status":  resp.StatusCode,
			"message": apiErr.Message,
		}).Warn("purchase rejected")
		return nil, apiErr
	}

	var result checkout.PurchaseResult
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, errors.Wrap(err, "failed to decode purchase response")
	}

	s.logger.WithField("is_new_user", result.IsNewUser).Info("purchase confirmed")
	return &result, nil
}
