package sync

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/earnings/domain"
	"github.com/creatorclub/cc-backend/internal/earnings/repository"
	projdomain "github.com/creatorclub/cc-backend/internal/projects/domain"
	projrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
	"github.com/creatorclub/cc-backend/internal/storage"
)

func setupSyncer(t *testing.T) (*Syncer, *projrepo.Repository, *repository.Repository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := storage.NewRedisStore(client)
	log := zap.NewNop()

	projects := projrepo.New(store, log)
	earnings := repository.New(store, log)
	return New(earnings, projects, log), projects, earnings
}

func TestSyncer_Rebuild(t *testing.T) {
	ctx := context.Background()

	t.Run("derives one entry per paying project", func(t *testing.T) {
		s, projects, earnings := setupSyncer(t)
		paid := projects.Create(ctx, projdomain.Project{Name: "Paid", Compensation: 800, SignedDate: "2024-01-10", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentReceived})
		projects.Create(ctx, projdomain.Project{Name: "Unpaid work", Compensation: 0, SignedDate: "2024-01-11", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})

		s.Rebuild(ctx)

		items := earnings.List(ctx)
		require.Len(t, items, 1)
		e := items[0]
		assert.Equal(t, domain.DerivedIDPrefix+paid.ID, e.ID)
		assert.Equal(t, paid.ID, e.ProjectID)
		assert.Equal(t, "Paid", e.ProjectName)
		assert.Equal(t, 800.0, e.Amount)
		assert.Equal(t, "2024-01-10", e.Date)
		assert.Equal(t, domain.StatusReceived, e.Status)
		assert.Equal(t, domain.SourceDirectPayment, e.Source)
	})

	t.Run("pending project maps to pending Project source", func(t *testing.T) {
		s, projects, earnings := setupSyncer(t)
		projects.Create(ctx, projdomain.Project{Name: "Pending", Compensation: 300, SignedDate: "2024-01-12", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})

		s.Rebuild(ctx)

		items := earnings.List(ctx)
		require.Len(t, items, 1)
		assert.Equal(t, domain.StatusPending, items[0].Status)
		assert.Equal(t, domain.SourceProject, items[0].Source)
	})

	t.Run("manual entries survive and derived ones are rebuilt", func(t *testing.T) {
		s, projects, earnings := setupSyncer(t)
		p := projects.Create(ctx, projdomain.Project{Name: "Deal", Compensation: 400, SignedDate: "2024-01-05", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})
		manual := earnings.Create(ctx, domain.Earning{ProjectName: "Workshop", Amount: 150, Date: "2024-01-02", Status: domain.StatusReceived, Source: domain.SourceManualEntry})

		s.Rebuild(ctx)
		s.Rebuild(ctx) // idempotent

		items := earnings.List(ctx)
		require.Len(t, items, 2)
		assert.Equal(t, manual.ID, items[0].ID)
		assert.Equal(t, domain.DerivedIDPrefix+p.ID, items[1].ID)
	})

	t.Run("manual entry colliding with a derived project is dropped", func(t *testing.T) {
		s, projects, earnings := setupSyncer(t)
		p := projects.Create(ctx, projdomain.Project{Name: "Deal", Compensation: 400, SignedDate: "2024-01-05", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})
		earnings.Create(ctx, domain.Earning{ProjectID: p.ID, ProjectName: "Stale copy", Amount: 999, Date: "2024-01-01", Status: domain.StatusReceived, Source: domain.SourceManualEntry})

		s.Rebuild(ctx)

		items := earnings.List(ctx)
		require.Len(t, items, 1)
		assert.Equal(t, domain.DerivedIDPrefix+p.ID, items[0].ID)
		assert.Equal(t, 400.0, items[0].Amount)
	})

	t.Run("deleting a project removes its derived entry on the next pass", func(t *testing.T) {
		s, projects, earnings := setupSyncer(t)
		p := projects.Create(ctx, projdomain.Project{Name: "Gone soon", Compensation: 250, SignedDate: "2024-01-08", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})
		s.Rebuild(ctx)
		require.Len(t, earnings.List(ctx), 1)

		require.NoError(t, projects.Delete(ctx, p.ID))
		s.Rebuild(ctx)
		assert.Empty(t, earnings.List(ctx))
	})

	t.Run("rebuild with no projects clears derived entries", func(t *testing.T) {
		s, _, earnings := setupSyncer(t)
		earnings.Replace(ctx, []domain.Earning{{ID: domain.DerivedIDPrefix + "ghost", Amount: 10}})

		s.Rebuild(ctx)
		assert.Empty(t, earnings.List(ctx))
	})
}
