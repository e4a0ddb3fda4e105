// Package domain defines the project entities shared across the repository,
// service and HTTP layers. Field names and JSON tags mirror the persisted
// collection layout and must stay compatible with existing stored data.
package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a project id does not resolve.
var ErrNotFound = errors.New("project not found")

// Status is a pipeline column on the project board. Any status is reachable
// from any other; the board is an organization tool, not a workflow guard.
type Status string

const (
	StatusPlanFilm   Status = "Plan & Film"
	StatusToEdit     Status = "To Edit"
	StatusInApproval Status = "In Approval"
	StatusCompleted  Status = "Completed"
)

// Statuses lists the board columns in display order.
var Statuses = []Status{StatusPlanFilm, StatusToEdit, StatusInApproval, StatusCompleted}

// Valid reports whether s is a known board column.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// PaymentStatus tracks whether the project's compensation has been paid out.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "Pending"
	PaymentReceived PaymentStatus = "Received"
)

// Valid reports whether p is a known payment status.
func (p PaymentStatus) Valid() bool {
	return p == PaymentPending || p == PaymentReceived
}

// AttachmentFile is an uploaded document carried inline as a data URL.
type AttachmentFile struct {
	Name string `json:"name"`
	Data string `json:"data"`
	Type string `json:"type"`
}

// Attachment is a brief or script: free text, an external link, an uploaded
// file, or any combination.
type Attachment struct {
	Text string          `json:"text,omitempty"`
	Link string          `json:"link,omitempty"`
	File *AttachmentFile `json:"file,omitempty"`
}

// Project is a single deal on the board. Dates are stored as ISO day
// strings ("2006-01-02") exactly as the dashboard persists them.
type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Compensation  float64       `json:"compensation"`
	DueDate       string        `json:"dueDate"`
	LeadSource    string        `json:"leadSource"`
	SignedDate    string        `json:"signedDate"`
	Status        Status        `json:"status"`
	PaymentStatus PaymentStatus `json:"paymentStatus,omitempty"`
	ClientEmail   string        `json:"clientEmail,omitempty"`
	Brief         *Attachment   `json:"brief,omitempty"`
	Script        *Attachment   `json:"script,omitempty"`
}

// Patch carries a partial update; nil fields are left untouched.
type Patch struct {
	Name          *string        `json:"name"`
	Compensation  *float64       `json:"compensation"`
	DueDate       *string        `json:"dueDate"`
	LeadSource    *string        `json:"leadSource"`
	SignedDate    *string        `json:"signedDate"`
	Status        *Status        `json:"status"`
	PaymentStatus *PaymentStatus `json:"paymentStatus"`
	ClientEmail   *string        `json:"clientEmail"`
	Brief         *Attachment    `json:"brief"`
	Script        *Attachment    `json:"script"`
}

// DateLayout is the day format used throughout the persisted collections.
const DateLayout = "2006-01-02"

// ParseDate parses a stored day string, returning the zero time when the
// value is empty or malformed.
func ParseDate(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}
	}
	return t
}

// SignedTime parses the project's signed date, zero when missing or
// malformed.
func (p Project) SignedTime() time.Time {
	return ParseDate(p.SignedDate)
}

// DaysUntil counts whole days from "now" to the due date, negative when the
// date has passed. Both ends are truncated to midnight first, matching the
// board's overdue badge.
func DaysUntil(dueDate string, now time.Time) int {
	due := ParseDate(dueDate)
	if due.IsZero() {
		return 0
	}
	startOfDue := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, now.Location())
	startOfToday := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(startOfDue.Sub(startOfToday).Hours() / 24)
}
