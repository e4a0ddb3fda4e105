// Package repository persists the projects collection as a single JSON
// array in the key-value store. Every mutation is a whole-collection
// read-modify-write; there is no patching and no versioning, and a write
// always replaces the stored array.
package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/projects/domain"
	"github.com/creatorclub/cc-backend/internal/storage"
)

// Repository provides persistence operations for projects.
type Repository struct {
	store storage.Store
	log   *zap.Logger
}

// New creates a project repository over the given store.
func New(store storage.Store, log *zap.Logger) *Repository {
	return &Repository{store: store, log: log}
}

// List returns the stored collection. A missing key, an unreachable store
// or malformed JSON all degrade to an empty collection; persistence is
// best-effort and failures never reach the caller.
func (r *Repository) List(ctx context.Context) []domain.Project {
	data, err := r.store.Get(ctx, storage.KeyProjects)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			r.log.Warn("projects read failed, using empty collection", zap.Error(err))
		}
		return []domain.Project{}
	}

	var items []domain.Project
	if err := json.Unmarshal(data, &items); err != nil {
		r.log.Warn("projects payload malformed, using empty collection", zap.Error(err))
		return []domain.Project{}
	}

	for i := range items {
		migrate(&items[i])
	}
	return items
}

// Get returns one project by id.
func (r *Repository) Get(ctx context.Context, id string) (domain.Project, error) {
	for _, p := range r.List(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Project{}, domain.ErrNotFound
}

// Create assigns a fresh id and prepends the project, so the newest card
// lands at the top of its board column.
func (r *Repository) Create(ctx context.Context, p domain.Project) domain.Project {
	p.ID = uuid.NewString()
	items := append([]domain.Project{p}, r.List(ctx)...)
	r.Replace(ctx, items)
	return p
}

// Update applies the non-nil fields of patch to the project with the
// given id.
func (r *Repository) Update(ctx context.Context, id string, patch domain.Patch) (domain.Project, error) {
	items := r.List(ctx)
	for i := range items {
		if items[i].ID != id {
			continue
		}
		apply(&items[i], patch)
		r.Replace(ctx, items)
		return items[i], nil
	}
	return domain.Project{}, domain.ErrNotFound
}

// Delete removes the project with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	items := r.List(ctx)
	kept := items[:0]
	found := false
	for _, p := range items {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return domain.ErrNotFound
	}
	r.Replace(ctx, kept)
	return nil
}

// Replace persists the full collection, overwriting whatever was stored.
func (r *Repository) Replace(ctx context.Context, items []domain.Project) {
	data, err := json.Marshal(items)
	if err != nil {
		r.log.Warn("projects marshal failed, write dropped", zap.Error(err))
		return
	}
	if err := r.store.Set(ctx, storage.KeyProjects, data); err != nil {
		r.log.Warn("projects write failed, write dropped", zap.Error(err))
	}
}

// migrate upgrades entries written by earlier dashboard versions: free-form
// payment labels collapse onto the Pending/Received pair, and a missing
// signed date falls back to the due date.
func migrate(p *domain.Project) {
	switch string(p.PaymentStatus) {
	case "Payment received":
		p.PaymentStatus = domain.PaymentReceived
	case "Payment pending", "Awaiting payment", "Invoice sent", "":
		p.PaymentStatus = domain.PaymentPending
	}
	if p.SignedDate == "" {
		if p.DueDate != "" {
			p.SignedDate = p.DueDate
		} else {
			p.SignedDate = time.Now().Format(domain.DateLayout)
		}
	}
}

func apply(p *domain.Project, patch domain.Patch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Compensation != nil {
		p.Compensation = *patch.Compensation
	}
	if patch.DueDate != nil {
		p.DueDate = *patch.DueDate
	}
	if patch.LeadSource != nil {
		p.LeadSource = *patch.LeadSource
	}
	if patch.SignedDate != nil {
		p.SignedDate = *patch.SignedDate
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.PaymentStatus != nil {
		p.PaymentStatus = *patch.PaymentStatus
	}
	if patch.ClientEmail != nil {
		p.ClientEmail = *patch.ClientEmail
	}
	if patch.Brief != nil {
		p.Brief = patch.Brief
	}
	if patch.Script != nil {
		p.Script = patch.Script
	}
}
