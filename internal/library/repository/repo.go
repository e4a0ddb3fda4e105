// Package repository persists the SFX favorite ids as a JSON string
// array. The catalogs themselves are fixed in code.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/storage"
)

// Repository provides persistence for the favorites list.
type Repository struct {
	store storage.Store
	log   *zap.Logger
}

// New creates a library repository over the given store.
func New(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// Favorites returns the stored favorite ids, degrading to empty on any
// store or decode failure.
func (r *Repository) Favorites(ctx context.Context) []string {
	data, err := r.store.Get(ctx, storage.KeySFXFavorites)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("favorites read failed, using empty list", zap.Error(err))
		}
		return []string{}
	}
	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		r.log.Warn("favorites payload malformed, using empty list", zap.Error(err))
		return []string{}
	}
	return ids
}

// SetFavorites persists the favorite ids, overwriting the stored list.
func (r *Repository) SetFavorites(ctx context.Context, ids []string) {
	data, err := json.Marshal(ids)
	if err != nil {
		r.log.Warn("favorites marshal failed, write dropped", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, storage.KeySFXFavorites, data); err != nil {
		r.log.Warn("favorites write failed, write dropped", zap.Error(err))
	}
}
