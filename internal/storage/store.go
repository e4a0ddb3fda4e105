// Package storage defines the key-value store every collection persists
// through, plus the fixed key layout.
package storage

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound is returned when a key has never been written.
var ErrNotFound = errors.New("storage: key not found")

// Store is a byte-blob key-value store. Collections are stored whole;
// every write is a full replacement of the value under its key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

// Logical keys of the persisted state layout.
const (
	KeyProjects     = "projects"
	KeyLeads        = "leads"
	KeyEarnings     = "earnings"
	KeyGoals        = "goals"
	KeyCurrency     = "currency"
	KeyUserProfile  = "user"
	KeySFXFavorites = "sfx_favorites"
)

// MonthlyTargetKey returns the key holding one month's income target.
func MonthlyTargetKey(year int, month int) string {
	return fmt.Sprintf("goal_%04d_%02d", year, month)
}
