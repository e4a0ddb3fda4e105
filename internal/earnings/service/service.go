package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/earnings/domain"
	"github.com/creatorclub/cc-backend/internal/earnings/repository"
	"github.com/creatorclub/cc-backend/internal/events"
	projdomain "github.com/creatorclub/cc-backend/internal/projects/domain"
	projrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
	"github.com/creatorclub/cc-backend/internal/timeframe"
)

// Service exposes the earnings ledger. Manual entries are owned by the
// ledger itself; derived entries belong to their source project, so edits
// to them are written through to the project and the ledger is rebuilt.
type Service struct {
	repo     *repository.Repository
	projects *projrepo.Repository
	hub      *events.Hub
	log      *zap.Logger
	now      func() time.Time
}

// New creates a Service. now is injectable for window tests.
func New(repo *repository.Repository, projects *projrepo.Repository, hub *events.Hub, log *zap.Logger, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, projects: projects, hub: hub, log: log, now: now}
}

// CreateInput carries the fields of a manual ledger entry.
type CreateInput struct {
	ProjectName string
	Amount      float64
	Date        string
	Status      domain.Status
	Source      domain.Source
}

// CreateManual appends a manual entry to the ledger.
func (s *Service) CreateManual(ctx context.Context, in CreateInput) (domain.Earning, error) {
	if in.ProjectName == "" {
		return domain.Earning{}, fmt.Errorf("project name is required")
	}
	if in.Amount <= 0 {
		return domain.Earning{}, fmt.Errorf("amount must be positive")
	}
	if in.Date == "" {
		in.Date = s.now().Format(projdomain.DateLayout)
	} else if projdomain.ParseDate(in.Date).IsZero() {
		return domain.Earning{}, fmt.Errorf("invalid date %q", in.Date)
	}
	if in.Status == "" {
		in.Status = domain.StatusPending
	}
	if !in.Status.Valid() {
		return domain.Earning{}, fmt.Errorf("invalid status %q", in.Status)
	}
	if in.Source == "" {
		in.Source = domain.SourceManualEntry
	}
	return s.repo.Create(ctx, domain.Earning{
		ProjectName: in.ProjectName,
		Amount:      in.Amount,
		Date:        in.Date,
		Status:      in.Status,
		Source:      in.Source,
	}), nil
}

// List returns ledger entries whose date falls inside the frame's window.
// Entries with an unparseable date are kept only for the all-time frame.
func (s *Service) List(ctx context.Context, frame timeframe.Frame) []domain.Earning {
	window := timeframe.Range(frame, s.now())
	all := s.repo.List(ctx)
	out := make([]domain.Earning, 0, len(all))
	for _, e := range all {
		t := projdomain.ParseDate(e.Date)
		if t.IsZero() {
			if frame == timeframe.AllTime {
				out = append(out, e)
			}
			continue
		}
		if window.Contains(t) {
			out = append(out, e)
		}
	}
	return out
}

// Get returns one ledger entry.
func (s *Service) Get(ctx context.Context, id string) (domain.Earning, error) {
	return s.repo.Get(ctx, id)
}

// SetStatus changes an entry's payment status. On a derived entry the new
// status is written through to the source project's payment status and the
// ledger is rebuilt from project state, which is authoritative.
func (s *Service) SetStatus(ctx context.Context, id string, status domain.Status) (domain.Earning, error) {
	if !status.Valid() {
		return domain.Earning{}, fmt.Errorf("invalid status %q", status)
	}
	e, err := s.repo.SetStatus(ctx, id, status)
	if err != nil {
		return domain.Earning{}, err
	}
	if e.Derived() {
		ps := projdomain.PaymentPending
		if status == domain.StatusReceived {
			ps = projdomain.PaymentReceived
		}
		if _, err := s.projects.Update(ctx, e.ProjectID, projdomain.Patch{PaymentStatus: &ps}); err != nil {
			s.log.Warn("source project missing for derived earning",
				zap.String("earning_id", id), zap.Error(err))
		}
		s.hub.Publish(ctx, events.TopicProjectsChanged)
		return s.repo.Get(ctx, id)
	}
	return e, nil
}

// Delete removes a manual entry. Deleting a derived entry resets the
// source project's payment status to pending instead; the project itself
// is never deleted and its entry reappears as pending after the rebuild.
func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if e.Derived() {
		ps := projdomain.PaymentPending
		if _, err := s.projects.Update(ctx, e.ProjectID, projdomain.Patch{PaymentStatus: &ps}); err != nil {
			s.log.Warn("source project missing for derived earning",
				zap.String("earning_id", id), zap.Error(err))
		}
		s.hub.Publish(ctx, events.TopicProjectsChanged)
		return nil
	}
	return s.repo.Delete(ctx, id)
}

// Summary aggregates a window of the ledger.
type Summary struct {
	Received float64 `json:"received"`
	Pending  float64 `json:"pending"`
	Total    float64 `json:"total"`
	Count    int     `json:"count"`
}

// Summarize sums the entries visible in the frame's window.
func (s *Service) Summarize(ctx context.Context, frame timeframe.Frame) Summary {
	var out Summary
	for _, e := range s.List(ctx, frame) {
		out.Count++
		out.Total += e.Amount
		if e.Status == domain.StatusReceived {
			out.Received += e.Amount
		} else {
			out.Pending += e.Amount
		}
	}
	return out
}
