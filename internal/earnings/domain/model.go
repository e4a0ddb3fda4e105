// Package domain defines the earnings ledger entities. The ledger is one
// flat collection holding records of two provenances, told apart by an id
// prefix: entries derived from a project, and entries the user recorded by
// hand.
package domain

import (
	"errors"
	"strings"
)

// ErrNotFound is returned when an earning id does not resolve.
var ErrNotFound = errors.New("earning not found")

// DerivedIDPrefix marks an earning synthesized from a project. A derived
// earning's id is the prefix plus its source project's id, which makes the
// projection one-to-one and idempotent.
const DerivedIDPrefix = "proj_"

// Status of a ledger entry.
type Status string

const (
	StatusPending  Status = "pending"
	StatusReceived Status = "received"
)

// Valid reports whether s is a known earning status.
func (s Status) Valid() bool {
	return s == StatusPending || s == StatusReceived
}

// Source records where a ledger entry came from.
type Source string

// Sources stamped by the forward pass and the manual-entry form.
const (
	SourceProject       Source = "Project"
	SourceDirectPayment Source = "Direct Payment"
	SourceManualEntry   Source = "Manual Entry"
)

// Earning is one ledger entry. ProjectID is set on derived entries and on
// nothing else; Date uses the ISO day format shared by all collections.
type Earning struct {
	ID          string  `json:"id"`
	ProjectID   string  `json:"projectId,omitempty"`
	ProjectName string  `json:"projectName"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Status      Status  `json:"status"`
	Source      Source  `json:"source"`
}

// Derived reports whether e was synthesized from a project.
func (e Earning) Derived() bool {
	return strings.HasPrefix(e.ID, DerivedIDPrefix)
}
