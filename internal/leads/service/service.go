package service

import (
	"context"
	"fmt"
	"time"

	"github.com/creatorclub/cc-backend/internal/leads/domain"
	"github.com/creatorclub/cc-backend/internal/leads/repository"
	projdomain "github.com/creatorclub/cc-backend/internal/projects/domain"
)

// Service exposes the brand-deal outreach pipeline.
type Service struct {
	repo *repository.Repository
	now  func() time.Time
}

// New creates a Service. now is injectable for tests.
func New(repo *repository.Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, now: now}
}

// CreateInput carries the fields of a new lead.
type CreateInput struct {
	BrandName    string
	ContactName  string
	Email        string
	Website      string
	DealAmount   float64
	Status       domain.Status
	Source       string
	FollowUpDate string
}

// Create validates and appends a new lead. The stage defaults to the first
// pipeline column and createdAt is stamped server-side.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Lead, error) {
	if in.BrandName == "" {
		return domain.Lead{}, fmt.Errorf("brand name is required")
	}
	if in.DealAmount < 0 {
		return domain.Lead{}, fmt.Errorf("deal amount must not be negative")
	}
	if in.Status == "" {
		in.Status = domain.StatusToContact
	}
	if !in.Status.Valid() {
		return domain.Lead{}, fmt.Errorf("invalid status %q", in.Status)
	}
	return s.repo.Create(ctx, domain.Lead{
		BrandName:    in.BrandName,
		ContactName:  in.ContactName,
		Email:        in.Email,
		Website:      in.Website,
		DealAmount:   in.DealAmount,
		Status:       in.Status,
		CreatedAt:    s.now().Format(projdomain.DateLayout),
		Source:       in.Source,
		FollowUpDate: in.FollowUpDate,
	}), nil
}

// List returns the pipeline in stored order.
func (s *Service) List(ctx context.Context) []domain.Lead {
	return s.repo.List(ctx)
}

// Get returns one lead.
func (s *Service) Get(ctx context.Context, id string) (domain.Lead, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a validated partial update.
func (s *Service) Update(ctx context.Context, id string, patch domain.Patch) (domain.Lead, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Lead{}, fmt.Errorf("invalid status %q", *patch.Status)
	}
	if patch.DealAmount != nil && *patch.DealAmount < 0 {
		return domain.Lead{}, fmt.Errorf("deal amount must not be negative")
	}
	return s.repo.Update(ctx, id, patch)
}

// Move shifts a lead to another pipeline stage. Any stage can move to any
// other stage; lastContacted stays as entered and only changes through an
// explicit update.
func (s *Service) Move(ctx context.Context, id string, status domain.Status) (domain.Lead, error) {
	if !status.Valid() {
		return domain.Lead{}, fmt.Errorf("invalid status %q", status)
	}
	return s.repo.Update(ctx, id, domain.Patch{Status: &status})
}

// Delete removes a lead from the pipeline.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Column is one pipeline stage with its leads in stored order.
type Column struct {
	Status domain.Status `json:"status"`
	Leads  []domain.Lead `json:"leads"`
}

// Board groups the pipeline by stage in display order. Empty stages yield
// empty slices, never nil.
func (s *Service) Board(ctx context.Context) []Column {
	byStatus := make(map[domain.Status][]domain.Lead, len(domain.Statuses))
	for _, st := range domain.Statuses {
		byStatus[st] = []domain.Lead{}
	}
	for _, l := range s.repo.List(ctx) {
		byStatus[l.Status] = append(byStatus[l.Status], l)
	}
	cols := make([]Column, 0, len(domain.Statuses))
	for _, st := range domain.Statuses {
		cols = append(cols, Column{Status: st, Leads: byStatus[st]})
	}
	return cols
}

// Summary aggregates the pipeline for the header widgets.
type Summary struct {
	Total       int     `json:"total"`
	Active      int     `json:"active"`
	Closed      int     `json:"closed"`
	TotalValue  float64 `json:"totalValue"`
	ClosedValue float64 `json:"closedValue"`
}

// Summarize counts and sums the pipeline. Active is everything not yet
// closed.
func (s *Service) Summarize(ctx context.Context) Summary {
	var out Summary
	for _, l := range s.repo.List(ctx) {
		out.Total++
		out.TotalValue += l.DealAmount
		if l.Status == domain.StatusClosed {
			out.Closed++
			out.ClosedValue += l.DealAmount
		} else {
			out.Active++
		}
	}
	return out
}
