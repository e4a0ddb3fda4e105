// Package repository persists the earnings ledger as a single JSON array,
// whole-collection read-modify-write like every other collection.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/earnings/domain"
	"github.com/creatorclub/cc-backend/internal/storage"
)

// Repository provides persistence operations for the earnings ledger.
type Repository struct {
	store storage.Store
	log   *zap.Logger
}

// New creates an earnings repository over the given store.
func New(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// List returns the stored ledger, degrading to empty on any read failure.
func (r *Repository) List(ctx context.Context) []domain.Earning {
	data, err := r.store.Get(ctx, storage.KeyEarnings)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("earnings read failed, using empty collection", zap.Error(err))
		}
		return []domain.Earning{}
	}

	var items []domain.Earning
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.Warn("earnings payload malformed, using empty collection", zap.Error(err))
		return []domain.Earning{}
	}
	return items
}

// Get returns one earning by id.
func (r *Repository) Get(ctx context.Context, id string) (domain.Earning, error) {
	for _, e := range r.List(ctx) {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.Earning{}, domain.ErrNotFound
}

// Create appends a manual entry with a fresh id. Derived entries never come
// through here; the synchronizer writes them via Replace.
func (r *Repository) Create(ctx context.Context, e domain.Earning) domain.Earning {
	e.ID = uuid.NewString()
	r.Replace(ctx, append(r.List(ctx), e))
	return e
}

// SetStatus updates the status of one ledger entry in place.
func (r *Repository) SetStatus(ctx context.Context, id string, status domain.Status) (domain.Earning, error) {
	items := r.List(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Status = status
		r.Replace(ctx, items)
		return items[i], nil
	}
	return domain.Earning{}, domain.ErrNotFound
}

// Delete removes one ledger entry.
func (r *Repository) Delete(ctx context.Context, id string) error {
	items := r.List(ctx)
	kept := items[:0]
	found := false
	for _, e := range items {
		if e.ID == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return domain.ErrNotFound
	}
	r.Replace(ctx, kept)
	return nil
}

// Replace persists the full ledger, overwriting whatever was stored.
func (r *Repository) Replace(ctx context.Context, items []domain.Earning) {
	data, err := json.Marshal(items)
	if err != nil {
		r.log.Warn("earnings marshal failed, write dropped", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, storage.KeyEarnings, data); err != nil {
		r.log.Warn("earnings write failed, write dropped", zap.Error(err))
	}
}
