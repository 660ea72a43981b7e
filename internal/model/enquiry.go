package model

import (
	"strings"
	"time"
)

// EnquiryStatus tracks how far an enquiry has been followed up.
type EnquiryStatus string

const (
	EnquiryNew       EnquiryStatus = "New"
	EnquiryRead      EnquiryStatus = "Read"
	EnquiryContacted EnquiryStatus = "Contacted"
)

// EnquiryStatuses lists the values offered by the admin status selector.
var EnquiryStatuses = []EnquiryStatus{EnquiryNew, EnquiryRead, EnquiryContacted}

// Valid reports whether s is one of the selector values.
func (s EnquiryStatus) Valid() bool {
	for _, known := range EnquiryStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// EmailNotProvided is stored when the submitter leaves the email blank.
const EmailNotProvided = "N/A"

// Enquiry is a contact or callback form submission.
type Enquiry struct {
	ID        string        `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Message   string        `json:"message"`
	Status    EnquiryStatus `json:"status"`
	CreatedAt time.Time     `json:"createdAt"`
}

// EnquiryInput is the payload of the public contact and callback forms.
type EnquiryInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Validate applies the public form rules.
func (in *EnquiryInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return NewDomainError(ErrCodeMissingField, "name is required")
	}
	if strings.TrimSpace(in.Message) == "" {
		return NewDomainError(ErrCodeMissingField, "message is required")
	}
	return nil
}

// EnquiryStatusUpdate is the payload of the admin status selector.
type EnquiryStatusUpdate struct {
	Status EnquiryStatus `json:"status"`
}

// DashboardStats summarises the catalogue and the enquiry inbox.
type DashboardStats struct {
	TotalProducts  int `json:"totalProducts"`
	ActiveProducts int `json:"activeProducts"`
	TotalEnquiries int `json:"totalEnquiries"`
	NewEnquiries   int `json:"newEnquiries"`
}
