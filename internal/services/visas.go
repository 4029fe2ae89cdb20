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
)

// VisaConfig holds visa-applications client configuration
type VisaConfig struct {
	BaseURL string
	Timeout time.Duration
}

// VisaService talks to the remote visa-applications API. Applications are
// created by travelers and moved through their review states by the
// back office.
type VisaService struct {
	client  *http.Client
	baseURL string
}

// NewVisaService creates a new visa-applications client
func NewVisaService(config VisaConfig) *VisaService {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}
	return &VisaService{
		client:  &http.Client{Timeout: timeout},
		baseURL: strings.TrimSuffix(config.BaseURL, "/"),
	}
}

type visaApplicationRecord struct {
	ID             string    `json:"_id"`
	UserID         string    `json:"userId"`
	ApplicantName  string    `json:"applicantName"`
	Destination    string    `json:"destination"`
	PassportNumber string    `json:"passportNumber"`
	Status         string    `json:"status"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

func (r *visaApplicationRecord) toApplication() *models.VisaApplication {
	return &models.VisaApplication{
		ID:             r.ID,
		UserID:         r.UserID,
		ApplicantName:  r.ApplicantName,
		Destination:    r.Destination,
		PassportNumber: r.PassportNumber,
		Status:         models.VisaApplicationStatus(r.Status),
		SubmittedAt:    r.SubmittedAt,
	}
}

// Apply submits a new visa application
func (s *VisaService) Apply(ctx context.Context, token string, req *models.VisaApplicationRequest) (*models.VisaApplication, error) {
	var rec visaApplicationRecord
	if err := s.doJSON(ctx, http.MethodPost, s.baseURL+"/visa-applications/apply-visa", token, req, &rec); err != nil {
		return nil, err
	}
	return rec.toApplication(), nil
}

// ListApplications fetches all visa applications
func (s *VisaService) ListApplications(ctx context.Context, token string) ([]*models.VisaApplication, error) {
	var records []visaApplicationRecord
	if err := s.doJSON(ctx, http.MethodGet, s.baseURL+"/visa-applications/get-visa-applications", token, nil, &records); err != nil {
		return nil, err
	}
	applications := make([]*models.VisaApplication, 0, len(records))
	for i := range records {
		applications = append(applications, records[i].toApplication())
	}
	return applications, nil
}

// GetApplication fetches a single visa application by ID
func (s *VisaService) GetApplication(ctx context.Context, token, id string) (*models.VisaApplication, error) {
	var rec visaApplicationRecord
	if err := s.doJSON(ctx, http.MethodGet, s.baseURL+"/visa-applications/get-visa-application/"+id, token, nil, &rec); err != nil {
		return nil, err
	}
	return rec.toApplication(), nil
}

// UpdateApplicationStatus moves an application to a new review state
func (s *VisaService) UpdateApplicationStatus(ctx context.Context, token, id string, req *models.VisaStatusUpdateRequest) (*models.VisaApplication, error) {
	var rec visaApplicationRecord
	if err := s.doJSON(ctx, http.MethodPut, s.baseURL+"/visa-applications/"+id, token, req, &rec); err != nil {
		return nil, err
	}
	return rec.toApplication(), nil
}

// DeleteApplication removes a visa application
func (s *VisaService) DeleteApplication(ctx context.Context, token, id string) error {
	return s.doJSON(ctx, http.MethodDelete, s.baseURL+"/visa-applications/"+id, token, nil, nil)
}

func (s *VisaService) doJSON(ctx context.Context, method, url, token string, payload, out interface{}) error {
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
