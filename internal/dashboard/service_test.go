package dashboard

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	goalsrepo "github.com/creatorclub/cc-backend/internal/goals/repository"
	goalssvc "github.com/creatorclub/cc-backend/internal/goals/service"
	projdomain "github.com/creatorclub/cc-backend/internal/projects/domain"
	projrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
	"github.com/creatorclub/cc-backend/internal/storage"
	"github.com/creatorclub/cc-backend/internal/timeframe"
)

var fixedNow = time.Date(2024, time.February, 15, 10, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *projrepo.Repository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := storage.NewRedisStore(client)
	log := zap.NewNop()

	now := func() time.Time { return fixedNow }
	projects := projrepo.New(store, log)
	goals := goalssvc.New(goalsrepo.New(store, log), projects, now)
	return New(projects, goals, now), projects
}

func seedProjects(ctx context.Context, projects *projrepo.Repository) {
	// Two signed this month, one completed; one signed last month; one
	// overdue from January.
	projects.Create(ctx, projdomain.Project{Name: "Feb active", Compensation: 400, SignedDate: "2024-02-05", DueDate: "2024-03-01", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})
	projects.Create(ctx, projdomain.Project{Name: "Feb done", Compensation: 250, SignedDate: "2024-02-10", DueDate: "2024-02-12", Status: projdomain.StatusCompleted, PaymentStatus: projdomain.PaymentReceived})
	projects.Create(ctx, projdomain.Project{Name: "Jan overdue", Compensation: 300, SignedDate: "2024-01-08", DueDate: "2024-01-20", Status: projdomain.StatusToEdit, PaymentStatus: projdomain.PaymentPending})
}

func TestKPIsFor(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()
	seedProjects(ctx, projects)

	t.Run("this month against last month", func(t *testing.T) {
		kpis, err := svc.KPIsFor(ctx, timeframe.ThisMonth)
		require.NoError(t, err)

		assert.Equal(t, 2, kpis.Total.Value)
		assert.Equal(t, 1, kpis.Total.Delta) // 2 now vs 1 in January
		assert.Equal(t, 1, kpis.Active.Value)
		assert.Equal(t, 1, kpis.Completed.Value)
		assert.Equal(t, 1, kpis.Completed.Delta)
		assert.Equal(t, 1, kpis.Overdue)
	})

	t.Run("completed projects are never overdue", func(t *testing.T) {
		kpis, err := svc.KPIsFor(ctx, timeframe.ThisMonth)
		require.NoError(t, err)
		// "Feb done" is past its due date but completed.
		assert.Equal(t, 1, kpis.Overdue)
	})

	t.Run("unsupported period errors", func(t *testing.T) {
		_, err := svc.KPIsFor(ctx, timeframe.Last90Days)
		require.Error(t, err)
	})
}

func TestMonthlyChart(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()
	seedProjects(ctx, projects)
	// Same-day signing sums onto one point.
	projects.Create(ctx, projdomain.Project{Name: "Feb extra", Compensation: 100, SignedDate: "2024-02-05", Status: projdomain.StatusPlanFilm, PaymentStatus: projdomain.PaymentPending})

	chart := svc.MonthlyChart(ctx)
	assert.Equal(t, "February", chart.Month)
	require.Len(t, chart.Points, 29) // 2024 is a leap year
	assert.Equal(t, 500.0, chart.Points[4].Amount)
	assert.Equal(t, 250.0, chart.Points[9].Amount)
	assert.Equal(t, 0.0, chart.Points[0].Amount)
	assert.Equal(t, 750.0, chart.Total)
}

func TestOverview(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()
	seedProjects(ctx, projects)

	o := svc.Overview(ctx)
	assert.Equal(t, 2, o.KPIs.Total.Value)
	assert.Equal(t, 650.0, o.Chart.Total)
	assert.Equal(t, 1500.0, o.Goal.Target)
	assert.Equal(t, 650.0, o.Goal.Completed)
	assert.Equal(t, 43, o.Goal.Percent)
}
