package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/creatorclub/cc-backend/internal/goals/domain"
	"github.com/creatorclub/cc-backend/internal/goals/repository"
	projrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
)

// Service exposes savings goals and the monthly income target. The income
// target measures signed project value in the current month; savings goals
// track their own manually updated amounts.
type Service struct {
	repo     *repository.Repository
	projects *projrepo.Repository
	now      func() time.Time
}

// New creates a Service. now is injectable for tests.
func New(repo *repository.Repository, projects *projrepo.Repository, now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{repo: repo, projects: projects, now: now}
}

// CreateInput carries the fields of a new savings goal.
type CreateInput struct {
	Name          string
	TargetAmount  float64
	CurrentAmount float64
	Deadline      string
}

// Create validates and appends a new goal, starting it active.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Goal, error) {
	if in.Name == "" {
		return domain.Goal{}, fmt.Errorf("goal name is required")
	}
	if in.TargetAmount <= 0 {
		return domain.Goal{}, fmt.Errorf("target amount must be positive")
	}
	if in.CurrentAmount < 0 {
		return domain.Goal{}, fmt.Errorf("current amount must not be negative")
	}
	return s.repo.Create(ctx, domain.Goal{
		Name:          in.Name,
		TargetAmount:  in.TargetAmount,
		CurrentAmount: in.CurrentAmount,
		Deadline:      in.Deadline,
		Status:        domain.StatusActive,
	}), nil
}

// List returns all goals in stored order.
func (s *Service) List(ctx context.Context) []domain.Goal {
	return s.repo.List(ctx)
}

// Get returns one goal.
func (s *Service) Get(ctx context.Context, id string) (domain.Goal, error) {
	return s.repo.Get(ctx, id)
}

// Update applies a validated partial update. Status is user-managed; a
// goal that reaches its target stays active until the user marks it
// completed.
func (s *Service) Update(ctx context.Context, id string, patch domain.Patch) (domain.Goal, error) {
	if patch.Status != nil && !patch.Status.Valid() {
		return domain.Goal{}, fmt.Errorf("invalid status %q", *patch.Status)
	}
	if patch.TargetAmount != nil && *patch.TargetAmount <= 0 {
		return domain.Goal{}, fmt.Errorf("target amount must be positive")
	}
	if patch.CurrentAmount != nil && *patch.CurrentAmount < 0 {
		return domain.Goal{}, fmt.Errorf("current amount must not be negative")
	}
	return s.repo.Update(ctx, id, patch)
}

// Delete removes a goal.
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// Summary aggregates the active goals for the earnings page header.
type Summary struct {
	ActiveCount   int     `json:"activeCount"`
	TotalTarget   float64 `json:"totalTarget"`
	TotalProgress float64 `json:"totalProgress"`
	Percent       int     `json:"percent"`
}

// Summarize sums target and saved amounts across active goals, with the
// overall percentage clamped to [0, 100].
func (s *Service) Summarize(ctx context.Context) Summary {
	var out Summary
	for _, g := range s.repo.List(ctx) {
		if g.Status != domain.StatusActive {
			continue
		}
		out.ActiveCount++
		out.TotalTarget += g.TargetAmount
		out.TotalProgress += g.CurrentAmount
	}
	if out.TotalTarget > 0 {
		pct := int(math.Round(out.TotalProgress / out.TotalTarget * 100))
		if pct < 0 {
			pct = 0
		}
		if pct > 100 {
			pct = 100
		}
		out.Percent = pct
	}
	return out
}

// MonthlyProgress reports the current month's income target alongside the
// signed project value counting toward it.
type MonthlyProgress struct {
	Target    float64 `json:"target"`
	Completed float64 `json:"completed"`
	Percent   int     `json:"percent"`
	Remaining float64 `json:"remaining"`
}

// MonthlyTarget returns this month's income target.
func (s *Service) MonthlyTarget(ctx context.Context) float64 {
	now := s.now()
	return s.repo.MonthlyTarget(ctx, now.Year(), int(now.Month()))
}

// SetMonthlyTarget stores this month's income target.
func (s *Service) SetMonthlyTarget(ctx context.Context, target float64) error {
	if target <= 0 {
		return fmt.Errorf("target must be positive")
	}
	now := s.now()
	s.repo.SetMonthlyTarget(ctx, now.Year(), int(now.Month()), target)
	return nil
}

// Progress measures the month's signed project value against the target.
// Every project signed this month counts regardless of payment status, and
// the percentage is clamped to [0, 100].
func (s *Service) Progress(ctx context.Context) MonthlyProgress {
	now := s.now()
	target := s.repo.MonthlyTarget(ctx, now.Year(), int(now.Month()))

	var completed float64
	for _, p := range s.projects.List(ctx) {
		signed := p.SignedTime()
		if signed.Year() == now.Year() && signed.Month() == now.Month() {
			completed += p.Compensation
		}
	}

	pct := int(math.Round(completed / math.Max(1, target) * 100))
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	remaining := target - completed
	if remaining < 0 {
		remaining = 0
	}
	return MonthlyProgress{Target: target, Completed: completed, Percent: pct, Remaining: remaining}
}
