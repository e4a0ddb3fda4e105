package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/creatorclub/cc-backend/internal/earnings/domain"
	"github.com/creatorclub/cc-backend/internal/earnings/repository"
	"github.com/creatorclub/cc-backend/internal/earnings/sync"
	"github.com/creatorclub/cc-backend/internal/events"
	projdomain "github.com/creatorclub/cc-backend/internal/projects/domain"
	projrepo "github.com/creatorclub/cc-backend/internal/projects/repository"
	projsvc "github.com/creatorclub/cc-backend/internal/projects/service"
	"github.com/creatorclub/cc-backend/internal/storage"
	"github.com/creatorclub/cc-backend/internal/timeframe"
)

// fixedNow keeps window filtering deterministic.
var fixedNow = time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC)

func setup(t *testing.T) (*Service, *projsvc.Service, *projrepo.Repository) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := storage.NewRedisStore(client)
	log := zap.NewNop()
	hub := events.NewHub()

	projectsRepo := projrepo.New(store, log)
	earningsRepo := repository.New(store, log)
	hub.Subscribe(events.TopicProjectsChanged, sync.New(earningsRepo, projectsRepo, log).Rebuild)

	svc := New(earningsRepo, projectsRepo, hub, log, func() time.Time { return fixedNow })
	return svc, projsvc.New(projectsRepo, hub), projectsRepo
}

func TestService_ProjectMutationsDriveTheLedger(t *testing.T) {
	svc, projects, _ := setup(t)
	ctx := context.Background()

	p, err := projects.Create(ctx, projsvc.CreateInput{Name: "Brand video", Compensation: 700, SignedDate: "2024-01-10"})
	require.NoError(t, err)

	t.Run("creating a paying project creates its ledger entry", func(t *testing.T) {
		items := svc.List(ctx, timeframe.AllTime)
		require.Len(t, items, 1)
		assert.Equal(t, domain.DerivedIDPrefix+p.ID, items[0].ID)
		assert.Equal(t, domain.StatusPending, items[0].Status)
	})

	t.Run("marking the project paid flips the entry", func(t *testing.T) {
		_, err := projects.SetPaymentStatus(ctx, p.ID, projdomain.PaymentReceived)
		require.NoError(t, err)

		items := svc.List(ctx, timeframe.AllTime)
		require.Len(t, items, 1)
		assert.Equal(t, domain.StatusReceived, items[0].Status)
		assert.Equal(t, domain.SourceDirectPayment, items[0].Source)
	})
}

func TestService_BackwardPass(t *testing.T) {
	svc, projects, projectsRepo := setup(t)
	ctx := context.Background()

	p, err := projects.Create(ctx, projsvc.CreateInput{Name: "Campaign", Compensation: 900, SignedDate: "2024-01-15"})
	require.NoError(t, err)
	derivedID := domain.DerivedIDPrefix + p.ID

	t.Run("receiving a derived entry marks the project paid", func(t *testing.T) {
		e, err := svc.SetStatus(ctx, derivedID, domain.StatusReceived)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusReceived, e.Status)

		proj, err := projectsRepo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, projdomain.PaymentReceived, proj.PaymentStatus)
	})

	t.Run("deleting a derived entry resets the project, never deletes it", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, derivedID))

		proj, err := projectsRepo.Get(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, projdomain.PaymentPending, proj.PaymentStatus)

		// The rebuild resurrects the entry as pending.
		e, err := svc.Get(ctx, derivedID)
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, e.Status)
	})
}

func TestService_ManualEntries(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	t.Run("manual create defaults and appends", func(t *testing.T) {
		e, err := svc.CreateManual(ctx, CreateInput{ProjectName: "Workshop", Amount: 200, Date: "2024-01-20"})
		require.NoError(t, err)
		assert.Equal(t, domain.StatusPending, e.Status)
		assert.Equal(t, domain.SourceManualEntry, e.Source)
		assert.False(t, e.Derived())
	})

	t.Run("manual create rejects bad input", func(t *testing.T) {
		_, err := svc.CreateManual(ctx, CreateInput{ProjectName: "", Amount: 100})
		require.Error(t, err)

		_, err = svc.CreateManual(ctx, CreateInput{ProjectName: "X", Amount: -5})
		require.Error(t, err)

		_, err = svc.CreateManual(ctx, CreateInput{ProjectName: "X", Amount: 5, Date: "20/01/2024"})
		require.Error(t, err)
	})

	t.Run("deleting a manual entry removes it", func(t *testing.T) {
		e, err := svc.CreateManual(ctx, CreateInput{ProjectName: "One-off", Amount: 50, Date: "2024-01-21"})
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, e.ID))
		_, err = svc.Get(ctx, e.ID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestService_WindowsAndSummary(t *testing.T) {
	svc, _, _ := setup(t)
	ctx := context.Background()

	mustCreate := func(name, date string, amount float64, status domain.Status) {
		t.Helper()
		_, err := svc.CreateManual(ctx, CreateInput{ProjectName: name, Amount: amount, Date: date, Status: status})
		require.NoError(t, err)
	}
	mustCreate("This month received", "2024-01-10", 100, domain.StatusReceived)
	mustCreate("This month pending", "2024-01-25", 40, domain.StatusPending)
	mustCreate("Last month", "2023-12-15", 60, domain.StatusReceived)
	mustCreate("Last year", "2023-01-15", 500, domain.StatusReceived)

	t.Run("this month filter", func(t *testing.T) {
		assert.Len(t, svc.List(ctx, timeframe.ThisMonth), 2)
	})

	t.Run("last month filter", func(t *testing.T) {
		items := svc.List(ctx, timeframe.LastMonth)
		require.Len(t, items, 1)
		assert.Equal(t, "Last month", items[0].ProjectName)
	})

	t.Run("all time includes everything", func(t *testing.T) {
		assert.Len(t, svc.List(ctx, timeframe.AllTime), 4)
	})

	t.Run("summary splits received and pending", func(t *testing.T) {
		sum := svc.Summarize(ctx, timeframe.ThisMonth)
		assert.Equal(t, 100.0, sum.Received)
		assert.Equal(t, 40.0, sum.Pending)
		assert.Equal(t, 140.0, sum.Total)
		assert.Equal(t, 2, sum.Count)
	})
}
