// Package domain holds the lead pipeline model.
package domain

import "errors"

// ErrNotFound is returned when a lead id does not exist.
var ErrNotFound = errors.New("lead not found")

// Status is a lead's pipeline stage.
type Status string

const (
	StatusToContact Status = "To Contact"
	StatusContacted Status = "Contacted"
	StatusFollowUp  Status = "Follow Up"
	StatusClosed    Status = "Closed"
)

// Statuses lists the stages in pipeline order.
var Statuses = []Status{StatusToContact, StatusContacted, StatusFollowUp, StatusClosed}

// Valid reports whether s is a known stage.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Lead is a potential brand deal in the outreach pipeline.
type Lead struct {
	ID            string  `json:"id"`
	BrandName     string  `json:"brandName"`
	ContactName   string  `json:"contactName"`
	Email         string  `json:"email"`
	Website       string  `json:"website,omitempty"`
	DealAmount    float64 `json:"dealAmount"`
	Status        Status  `json:"status"`
	CreatedAt     string  `json:"createdAt"`
	LastContacted string  `json:"lastContacted,omitempty"`
	Source        string  `json:"source,omitempty"`
	FollowUpDate  string  `json:"followUpDate,omitempty"`
}

// Patch carries a partial lead update; nil fields are left untouched.
type Patch struct {
	BrandName     *string  `json:"brandName"`
	ContactName   *string  `json:"contactName"`
	Email         *string  `json:"email"`
	Website       *string  `json:"website"`
	DealAmount    *float64 `json:"dealAmount"`
	Status        *Status  `json:"status"`
	LastContacted *string  `json:"lastContacted"`
	Source        *string  `json:"source"`
	FollowUpDate  *string  `json:"followUpDate"`
}
