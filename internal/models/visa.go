package models

import (
	"errors"
	"fmt"
	"time"
)

// VisaApplicationStatus is the review state of a visa application
type VisaApplicationStatus string

const (
	VisaUnderReview      VisaApplicationStatus = "Under Review"
	VisaApproved         VisaApplicationStatus = "Approved"
	VisaPendingDocuments VisaApplicationStatus = "Pending Documents"
	VisaRejected         VisaApplicationStatus = "Rejected"
)

// Valid reports whether the status is one of the known review states
func (s VisaApplicationStatus) Valid() bool {
	switch s {
	case VisaUnderReview, VisaApproved, VisaPendingDocuments, VisaRejected:
		return true
	}
	return false
}

// VisaApplication represents a visa application as returned by the
// visa-applications API
type VisaApplication struct {
	ID             string                `json:"id"`
	UserID         string                `json:"userId"`
	ApplicantName  string                `json:"applicantName"`
	Destination    string                `json:"destination"`
	PassportNumber string                `json:"passportNumber"`
	Status         VisaApplicationStatus `json:"status"`
	SubmittedAt    time.Time             `json:"submittedAt"`
}

// VisaApplicationRequest is the payload sent to apply for a visa
type VisaApplicationRequest struct {
	UserID         string `json:"userId,omitempty"`
	ApplicantName  string `json:"applicantName"`
	Destination    string `json:"destination"`
	PassportNumber string `json:"passportNumber"`
	Email          string `json:"email"`
}

// Validate validates the application request
func (req *VisaApplicationRequest) Validate() error {
	if req.ApplicantName == "" {
		return errors.New("applicant name is required")
	}
	if req.Destination == "" {
		return errors.New("destination is required")
	}
	if req.PassportNumber == "" {
		return errors.New("passport number is required")
	}
	if !containsAt(req.Email) {
		return errors.New("applicant email is invalid")
	}
	return nil
}

// VisaStatusUpdateRequest is the back-office payload for moving an
// application through the review states
type VisaStatusUpdateRequest struct {
	Status VisaApplicationStatus `json:"status"`
}

// Validate validates the status update
func (req *VisaStatusUpdateRequest) Validate() error {
	if !req.Status.Valid() {
		return fmt.Errorf("unknown visa application status %q", req.Status)
	}
	return nil
}
