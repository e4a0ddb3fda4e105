// Package service holds the project board business logic: CRUD on top of
// the repository, pipeline moves, and the pure aggregations the board,
// list and calendar views render from.
package service

import (
	"context"
	"fmt"

	"github.com/creatorclub/cc-backend/internal/events"
	"github.com/creatorclub/cc-backend/internal/projects/domain"
	"github.com/creatorclub/cc-backend/internal/projects/repository"
)

// Service handles project-related business logic. Every mutation publishes
// a projects-changed notification so dependent collections re-derive before
// the call returns.
type Service struct {
	repo *repository.Repository
	hub  *events.Hub
}

// New creates a project service.
func New(repo *repository.Repository, hub *events.Hub) *Service {
	return &Service{repo: repo, hub: hub}
}

// CreateInput carries the fields of a new project.
type CreateInput struct {
	Name          string
	Compensation  float64
	DueDate       string
	LeadSource    string
	SignedDate    string
	Status        domain.Status
	PaymentStatus domain.PaymentStatus
	ClientEmail   string
}

// Create adds a project to the top of the board.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Project, error) {
	if in.Name == "" {
		return domain.Project{}, fmt.Errorf("name required")
	}
	if in.Status == "" {
		in.Status = domain.StatusPlanFilm
	}
	if !in.Status.Valid() {
		return domain.Project{}, fmt.Errorf("unknown status %q", in.Status)
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = domain.PaymentPending
	}
	if !in.PaymentStatus.Valid() {
		return domain.Project{}, fmt.Errorf("unknown payment status %q", in.PaymentStatus)
	}
	if in.Compensation < 0 {
		return domain.Project{}, fmt.Errorf("compensation must not be negative")
	}

	p := s.repo.Create(ctx, domain.Project{
		Name:          in.Name,
		Compensation:  in.Compensation,
		DueDate:       in.DueDate,
		LeadSource:    in.LeadSource,
		SignedDate:    in.SignedDate,
		Status:        in.Status,
		PaymentStatus: in.PaymentStatus,
		ClientEmail:   in.ClientEmail,
	})
	s.hub.Publish(ctx, events.TopicProjectsChanged)
	return p, nil
}

// List returns all projects.
func (s *Service) List(ctx context.Context) []domain.Project {
	return s.repo.List(ctx)
}

// Get returns one project.
func (s *Service) Get(ctx context.Context, id string) (domain.Project, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a partial edit.
func (s *Service) Update(ctx context.Context, id string, patch domain.Patch) (domain.Project, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Project{}, fmt.Errorf("unknown status %q", *patch.Status)
	}
	if patch.PaymentStatus != nil && !patch.PaymentStatus.Valid() {
		return domain.Project{}, fmt.Errorf("unknown payment status %q", *patch.PaymentStatus)
	}
	if patch.Compensation != nil && *patch.Compensation < 0 {
		return domain.Project{}, fmt.Errorf("compensation must not be negative")
	}

	p, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return domain.Project{}, err
	}
	s.hub.Publish(ctx, events.TopicProjectsChanged)
	return p, nil
}

// Move reassigns a project to another board column. This is the drag-drop
// path: any column accepts any card, including moves out of Completed.
func (s *Service) Move(ctx context.Context, id string, status domain.Status) (domain.Project, error) {
	if !status.Valid() {
		return domain.Project{}, fmt.Errorf("unknown status %q", status)
	}
	return s.Update(ctx, id, domain.Patch{Status: &status})
}

// SetPaymentStatus flips the project's payment state, as the detail view's
// dropdown does.
func (s *Service) SetPaymentStatus(ctx context.Context, id string, status domain.PaymentStatus) (domain.Project, error) {
	if !status.Valid() {
		return domain.Project{}, fmt.Errorf("unknown payment status %q", status)
	}
	return s.Update(ctx, id, domain.Patch{PaymentStatus: &status})
}

// Delete removes a project entirely. Any earning derived from it is
// dropped by the synchronizer when the change notification fires.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.hub.Publish(ctx, events.TopicProjectsChanged)
	return nil
}
