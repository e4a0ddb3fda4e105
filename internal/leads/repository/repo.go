// Package repository persists the lead pipeline as a single JSON array in
// the key-value store, same read-modify-write scheme as the projects
// collection.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/leads/domain"
	"github.com/creatorclub/cc-backend/internal/storage"
)

// Repository provides persistence operations for leads.
type Repository struct {
	store storage.Store
	log   *zap.Logger
}

// New creates a lead repository over the given store.
func New(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// List returns the stored pipeline, degrading to empty on any store or
// decode failure.
func (r *Repository) List(ctx context.Context) []domain.Lead {
	data, err := r.store.Get(ctx, storage.KeyLeads)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("leads read failed, using empty collection", zap.Error(err))
		}
		return []domain.Lead{}
	}

	var items []domain.Lead
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.Warn("leads payload malformed, using empty collection", zap.Error(err))
		return []domain.Lead{}
	}
	return items
}

// Get returns one lead by id.
func (r *Repository) Get(ctx context.Context, id string) (domain.Lead, error) {
	for _, l := range r.List(ctx) {
		if l.ID == id {
			return l, nil
		}
	}
	return domain.Lead{}, domain.ErrNotFound
}

// Create assigns a fresh id and appends the lead, preserving intake order.
func (r *Repository) Create(ctx context.Context, l domain.Lead) domain.Lead {
	l.ID = uuid.NewString()
	r.Replace(ctx, append(r.List(ctx), l))
	return l
}

// Update applies the non-nil fields of patch to the lead with the given id.
func (r *Repository) Update(ctx context.Context, id string, patch domain.Patch) (domain.Lead, error) {
	items := r.List(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		apply(&items[i], patch)
		r.Replace(ctx, items)
		return items[i], nil
	}
	return domain.Lead{}, domain.ErrNotFound
}

// Delete removes the lead with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	items := r.List(ctx)
	kept := items[:0]
	found := false
	for _, l := range items {
		if l.ID == id {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return domain.ErrNotFound
	}
	r.Replace(ctx, kept)
	return nil
}

// Replace persists the full pipeline, overwriting whatever was stored.
func (r *Repository) Replace(ctx context.Context, items []domain.Lead) {
	data, err := json.Marshal(items)
	if err != nil {
		r.log.Warn("leads marshal failed, write dropped", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, storage.KeyLeads, data); err != nil {
		r.log.Warn("leads write failed, write dropped", zap.Error(err))
	}
}

func apply(l *domain.Lead, patch domain.Patch) {
	if patch.BrandName != nil {
		l.BrandName = *patch.BrandName
	}
	if patch.ContactName != nil {
		l.ContactName = *patch.ContactName
	}
	if patch.Email != nil {
		l.Email = *patch.Email
	}
	if patch.Website != nil {
		l.Website = *patch.Website
	}
	if patch.DealAmount != nil {
		l.DealAmount = *patch.DealAmount
	}
	if patch.Status != nil {
		l.Status = *patch.Status
	}
	if patch.LastContacted != nil {
		l.LastContacted = *patch.LastContacted
	}
	if patch.Source != nil {
		l.Source = *patch.Source
	}
	if patch.FollowUpDate != nil {
		l.FollowUpDate = *patch.FollowUpDate
	}
}
