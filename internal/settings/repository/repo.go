// Package repository persists the account settings: the display currency
// as a bare JSON string and the user profile as a JSON object.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/settings/domain"
	"github.com/creatorclub/cc-backend/internal/storage"
)

// Repository provides persistence operations for account settings.
type Repository struct {
	store storage.Store
	log   *zap.Logger
}

// New creates a settings repository over the given store.
func New(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// Currency returns the stored display currency, falling back to the
// default when nothing is stored or the value is unreadable or unknown.
func (r *Repository) Currency(ctx context.Context) domain.Currency {
	data, err := r.store.Get(ctx, storage.KeyCurrency)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("currency read failed, using default", zap.Error(err))
		}
		return domain.DefaultCurrency
	}
	var c domain.Currency
	if err := json.Unmarshal(data, &c); err != nil || !c.Valid() {
		return domain.DefaultCurrency
	}
	return c
}

// SetCurrency stores the display currency.
func (r *Repository) SetCurrency(ctx context.Context, c domain.Currency) {
	data, err := json.Marshal(c)
	if err != nil {
		r.log.Warn("currency marshal failed, write dropped", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, storage.KeyCurrency, data); err != nil {
		r.log.Warn("currency write failed, write dropped", zap.Error(err))
	}
}

// Profile returns the stored user profile, defaulting when nothing is
// stored or the payload is unreadable.
func (r *Repository) Profile(ctx context.Context) domain.UserProfile {
	data, err := r.store.Get(ctx, storage.KeyUserProfile)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("profile read failed, using default", zap.Error(err))
		}
		return domain.DefaultProfile
	}
	var p domain.UserProfile
	if err := json.Unmarshal(data, &p); err != nil {
		r.log.Warn("profile payload malformed, using default", zap.Error(err))
		return domain.DefaultProfile
	}
	if p.Name == "" {
		p.Name = domain.DefaultProfile.Name
	}
	if p.Tier == "" {
		p.Tier = domain.DefaultProfile.Tier
	}
	return p
}

// SetProfile stores the user profile.
func (r *Repository) SetProfile(ctx context.Context, p domain.UserProfile) {
	data, err := json.Marshal(p)
	if err != nil {
		r.log.Warn("profile marshal failed, write dropped", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, storage.KeyUserProfile, data); err != nil {
		r.log.Warn("profile write failed, write dropped", zap.Error(err))
	}
}
