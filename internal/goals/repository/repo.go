// Package repository persists savings goals as a single JSON array and
// the monthly income targets as one numeric value per month.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/goals/domain"
	"github.com/creatorclub/cc-backend/internal/storage"
)

// Repository provides persistence operations for goals and monthly
// targets.
type Repository struct {
	store storage.Store
	log   *zap.Logger
}

// New creates a goal repository over the given store.
func New(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// List returns the stored goals, degrading to empty on any store or
// decode failure.
func (r *Repository) List(ctx context.Context) []domain.Goal {
	data, err := r.store.Get(ctx, storage.KeyGoals)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("goals read failed, using empty collection", zap.Error(err))
		}
		return []domain.Goal{}
	}

	var items []domain.Goal
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.Warn("goals payload malformed, using empty collection", zap.Error(err))
		return []domain.Goal{}
	}
	return items
}

// Get returns one goal by id.
func (r *Repository) Get(ctx context.Context, id string) (domain.Goal, error) {
	for _, g := range r.List(ctx) {
		if g.ID == id {
			return g, nil
		}
	}
	return domain.Goal{}, domain.ErrNotFound
}

// Create assigns a fresh id and appends the goal.
func (r *Repository) Create(ctx context.Context, g domain.Goal) domain.Goal {
	g.ID = uuid.NewString()
	r.Replace(ctx, append(r.List(ctx), g))
	return g
}

// Update applies the non-nil fields of patch to the goal with the given id.
func (r *Repository) Update(ctx context.Context, id string, patch domain.Patch) (domain.Goal, error) {
	items := r.List(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		apply(&items[i], patch)
		r.Replace(ctx, items)
		return items[i], nil
	}
	return domain.Goal{}, domain.ErrNotFound
}

// Delete removes the goal with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	items := r.List(ctx)
	kept := items[:0]
	found := false
	for _, g := range items {
		if g.ID == id {
			found = true
			continue
		}
		kept = append(kept, g)
	}
	if !found {
		return domain.ErrNotFound
	}
	r.Replace(ctx, kept)
	return nil
}

// Replace persists the full collection, overwriting whatever was stored.
func (r *Repository) Replace(ctx context.Context, items []domain.Goal) {
	data, err := json.Marshal(items)
	if err != nil {
		r.log.Warn("goals marshal failed, write dropped", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, storage.KeyGoals, data); err != nil {
		r.log.Warn("goals write failed, write dropped", zap.Error(err))
	}
}

// MonthlyTarget returns the income target for a month, falling back to the
// default when the month was never configured or the value is unreadable.
func (r *Repository) MonthlyTarget(ctx context.Context, year int, month int) float64 {
	key := storage.MonthlyTargetKey(year, month)
	data, err := r.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("monthly target read failed, using default",
				zap.String("key", key), zap.Error(err))
		}
		return domain.DefaultMonthlyTarget
	}
	var target float64
	if err := json.Unmarshal(data, &target); err != nil || target <= 0 {
		return domain.DefaultMonthlyTarget
	}
	return target
}

// SetMonthlyTarget stores the income target for a month.
func (r *Repository) SetMonthlyTarget(ctx context.Context, year int, month int, target float64) {
	data, err := json.Marshal(target)
	if err != nil {
		r.log.Warn("monthly target marshal failed, write dropped", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, storage.MonthlyTargetKey(year, month), data); err != nil {
		r.log.Warn("monthly target write failed, write dropped", zap.Error(err))
	}
}

func apply(g *domain.Goal, patch domain.Patch) {
	if patch.Name != nil {
		g.Name = *patch.Name
	}
	if patch.TargetAmount != nil {
		g.TargetAmount = *patch.TargetAmount
	}
	if patch.CurrentAmount != nil {
		g.CurrentAmount = *patch.CurrentAmount
	}
	if patch.Deadline != nil {
		g.Deadline = *patch.Deadline
	}
	if patch.Status != nil {
		g.Status = *patch.Status
	}
}
