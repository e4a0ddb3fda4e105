// Package domain holds the savings goal model and the monthly income
// target defaults.
package domain

import "errors"

// ErrNotFound is returned when a goal id does not exist.
var ErrNotFound = errors.New("goal not found")

// DefaultMonthlyTarget is the income target used for months that have
// never been configured.
const DefaultMonthlyTarget = 1500.0

// Status is a goal's lifecycle stage.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusPaused    Status = "paused"
)

// Valid reports whether s is a known stage.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusPaused:
		return true
	}
	return false
}

// Goal is a long-running savings target, independent of the per-month
// income target.
type Goal struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline,omitempty"`
	Status        Status  `json:"status"`
}

// Patch carries a partial goal update; nil fields are left untouched.
type Patch struct {
	Name          *string  `json:"name"`
	TargetAmount  *float64 `json:"targetAmount"`
	CurrentAmount *float64 `json:"currentAmount"`
	Deadline      *string  `json:"deadline"`
	Status        *Status  `json:"status"`
}

// ProgressPercent reports how far along the goal is, clamped to [0, 100].
func (g Goal) ProgressPercent() int {
	if g.TargetAmount <= 0 {
		return 0
	}
	pct := int(g.CurrentAmount / g.TargetAmount * 100)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
