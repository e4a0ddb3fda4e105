// Package sync keeps the earnings ledger consistent with the projects
// collection. The forward pass re-derives project earnings after every
// project mutation; the backward pass pushes user edits on a derived
// earning onto its source project.
package sync

import (
	"context"

	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/earnings/domain"
	"github.com/creatorclub/cc-backend/internal/earnings/repository"
	projdomain "github.com/creatorclub/cc-backend/internal/projects/domain"
	projrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
)

// Syncer owns the forward pass. It subscribes to the projects-changed
// topic at wiring time, so it runs synchronously inside every project
// mutation before the mutating call returns.
type Syncer struct {
	earnings *repository.Repository
	projects *projrepo.Repository
	log      *zap.Logger
}

// New creates a Syncer.
func New(earnings *repository.Repository, projects *projrepo.Repository, log *zap.Logger) *Syncer {
	return &Syncer{earnings: earnings, projects: projects, log: log}
}

// Rebuild runs the forward pass: derive one earning per project with
// positive compensation, keep the manual entries that do not collide with
// a derived one, and replace the stored ledger with the union. Stale
// derived entries do not survive the pass, and running it twice yields the
// same ledger since derived ids are a pure function of project ids.
func (s *Syncer) Rebuild(ctx context.Context) {
	projects := s.projects.List(ctx)

	derived := make([]domain.Earning, 0, len(projects))
	derivedProjects := make(map[string]struct{}, len(projects))
	for _, p := range projects {
		if p.Compensation <= 0 {
			continue
		}
		derived = append(derived, Derive(p))
		derivedProjects[p.ID] = struct{}{}
	}

	// Manual entries only; any previously derived entry is rebuilt above.
	// A manual entry pointing at a project that now has a derived earning
	// would double-count it, so it is dropped.
	merged := make([]domain.Earning, 0, len(derived))
	for _, e := range s.earnings.List(ctx) {
		if e.Derived() {
			continue
		}
		if e.ProjectID != "" {
			if _, taken := derivedProjects[e.ProjectID]; taken {
				continue
			}
		}
		merged = append(merged, e)
	}
	merged = append(merged, derived...)

	s.earnings.Replace(ctx, merged)
	s.log.Debug("earnings re-derived",
		zap.Int("derived", len(derived)),
		zap.Int("total", len(merged)))
}

// Derive maps a project onto its ledger entry.
func Derive(p projdomain.Project) domain.Earning {
	status := domain.StatusPending
	source := domain.SourceProject
	if p.PaymentStatus == projdomain.PaymentReceived {
		status = domain.StatusReceived
		source = domain.SourceDirectPayment
	}
	return domain.Earning{
		ID:          domain.DerivedIDPrefix + p.ID,
		ProjectID:   p.ID,
		ProjectName: p.Name,
		Amount:      p.Compensation,
		Date:        p.SignedDate,
		Status:      status,
		Source:      source,
	}
}
